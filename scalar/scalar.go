// Package scalar provides ready-made modules for primitive element types.
// A module is both a guard and a comparator, so it can brand a sorted
// sequence, a typed sequence or either side of a typed map.
//
//	ints, err := typedseq.Make(scalar.Int, 3, 1, 2)
//	sorted := sortedseq.Make[int](scalar.Int, ints.ToSlice()...)
package scalar

import (
	"math"
	"math/big"

	"github.com/amp-labs/amp-collections/compare"
	"github.com/amp-labs/amp-collections/guard"
)

// Module pairs a guard with a comparator over the same type.
type Module[A any] struct {
	guard guard.Guard[A]
	cmp   compare.Comparator[A]
}

var (
	_ guard.Guard[int]        = Module[int]{}
	_ compare.Comparator[int] = Module[int]{}
)

// New builds a module from a guard and a comparator. Either may be nil, in
// which case the module rejects every value or treats all values as equal.
func New[A any](g guard.Guard[A], c compare.Comparator[A]) Module[A] {
	return Module[A]{guard: g, cmp: c}
}

// Guard implements guard.Predicate.
func (m Module[A]) Guard(value any) bool {
	return guard.Is(m.guard, value)
}

// Cast implements guard.Guard.
func (m Module[A]) Cast(value any) (A, bool) { //nolint:ireturn
	return guard.Cast(m.guard, value)
}

// Cmp implements compare.Comparator.
func (m Module[A]) Cmp(a, b A) int {
	if m.cmp == nil {
		return 0
	}

	return compare.Sign(m.cmp.Cmp(a, b))
}

// Refine returns a module accepting only the values of m that also satisfy
// predicate. The comparator is unchanged.
func (m Module[A]) Refine(predicate func(A) bool) Module[A] {
	return Module[A]{guard: guard.Refine(m.guard, predicate), cmp: m.cmp}
}

//nolint:gochecknoglobals
var (
	// Int accepts Go ints.
	Int = New(guard.Type[int](), compare.Ordered[int]())

	// Int64 accepts Go int64s.
	Int64 = New(guard.Type[int64](), compare.Ordered[int64]())

	// Float accepts float64 values, NaN included. NaN sorts first.
	Float = New(guard.Type[float64](), compare.Ordered[float64]())

	// Finite accepts float64 values that are neither NaN nor infinite.
	Finite = Float.Refine(func(f float64) bool {
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})

	// String accepts strings, ordered bytewise.
	String = New(guard.Type[string](), compare.Ordered[string]())

	// Natural accepts strings, ordered so that embedded numbers compare
	// numerically ("v2" before "v10").
	Natural = New(guard.Type[string](), compare.Natural())

	// Bool accepts bools; false sorts before true.
	Bool = New(guard.Type[bool](), compare.Func[bool](compareBool))

	// BigInt accepts non-nil *big.Int values, ordered numerically.
	BigInt = New(
		guard.Refine(guard.Type[*big.Int](), func(n *big.Int) bool { return n != nil }),
		compare.Func[*big.Int](func(a, b *big.Int) int { return a.Cmp(b) }),
	)
)

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
