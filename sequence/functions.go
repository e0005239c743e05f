package sequence

import (
	"github.com/amp-labs/amp-collections/compare"
)

// Mappable is anything that can transform an A into a B.
type Mappable[A, B any] interface {
	Map(value A) B
}

// MapFunc adapts a bare function to Mappable.
type MapFunc[A, B any] func(value A) B

// Map implements Mappable.
func (f MapFunc[A, B]) Map(value A) B { //nolint:ireturn
	return f(value)
}

var _ Mappable[int, string] = MapFunc[int, string](nil)

// Map applies fn to every element, preserving order.
func Map[A, B any](s Sequence[A], fn func(A) B) Sequence[B] {
	out := make([]B, len(s.elems))
	for i, e := range s.elems {
		out[i] = fn(e)
	}

	return Sequence[B]{elems: out}
}

// MapWith is Map driven by a Mappable.
func MapWith[A, B any](s Sequence[A], m Mappable[A, B]) Sequence[B] {
	return Map(s, m.Map)
}

// Fold reduces the sequence from the left, starting with initial.
func Fold[A, B any](s Sequence[A], initial B, fn func(acc B, value A) B) B { //nolint:ireturn
	acc := initial
	for _, e := range s.elems {
		acc = fn(acc, e)
	}

	return acc
}

// ToSet returns the distinct elements of s.
func ToSet[A comparable](s Sequence[A]) map[A]struct{} {
	out := make(map[A]struct{}, len(s.elems))
	for _, e := range s.elems {
		out[e] = struct{}{}
	}

	return out
}

// Equal reports whether a and b have the same length and pairwise equal
// elements under eq.
func Equal[A any](a, b Sequence[A], eq func(x, y A) bool) bool {
	if len(a.elems) != len(b.elems) {
		return false
	}

	for i := range a.elems {
		if !eq(a.elems[i], b.elems[i]) {
			return false
		}
	}

	return true
}

// Compare orders a and b lexicographically under c. A proper prefix sorts
// first.
func Compare[A any](a, b Sequence[A], c compare.Comparator[A]) int {
	return compare.Slices(c, a.elems, b.elems)
}
