// Package typedseq provides Sequence, an immutable sequence whose elements
// are all accepted by the guard it was built with. The guard is the brand:
// every operation that can introduce new elements validates them first and
// fails with an error wrapping errors.ErrWrongType, so a branded Sequence
// never holds an element its guard rejects.
//
// Sort, Filter and Slice only rearrange or drop elements that were already
// validated, so they don't re-run the guard.
package typedseq

import (
	"context"
	"fmt"
	"reflect"
	"slices"

	"github.com/amp-labs/amp-collections/compare"
	collerrors "github.com/amp-labs/amp-collections/errors"
	"github.com/amp-labs/amp-collections/guard"
	"github.com/amp-labs/amp-collections/logger"
	"github.com/amp-labs/amp-collections/sequence"
	"github.com/amp-labs/amp-collections/try"
	"github.com/amp-labs/amp-collections/validate"
)

// Sequence is a sequence.Sequence whose elements all satisfy guard.
// The zero value is empty and unbranded: Is rejects it and every insertion
// into it fails.
type Sequence[A any] struct {
	sequence.Sequence[A]

	guard guard.Guard[A]
}

var _ validate.HasValidateWithContext = Sequence[int]{}

// Make validates every element with g and returns the sequence, or an error
// listing every rejected element.
func Make[A any](g guard.Guard[A], elements ...A) (Sequence[A], error) {
	if err := check(g, opMake, 0, elements); err != nil {
		return Sequence[A]{}, err
	}

	return Sequence[A]{Sequence: sequence.Make(elements...), guard: g}, nil
}

// MustMake is like Make but panics on a rejected element.
func MustMake[A any](g guard.Guard[A], elements ...A) Sequence[A] {
	s, err := Make(g, elements...)
	if err != nil {
		panic(err)
	}

	return s
}

// Of builds a sequence from untyped values: each must be accepted by g and
// narrow to an A.
func Of[A any](g guard.Guard[A], values ...any) (Sequence[A], error) {
	var errs collerrors.Collection

	elems := make([]A, 0, len(values))

	for i, v := range values {
		typed, ok := guard.Cast(g, v)
		if !ok {
			errs.Add(rejection(g, opOf, i, v))

			continue
		}

		elems = append(elems, typed)
	}

	if errs.HasError() {
		return Sequence[A]{}, errs.GetError()
	}

	return Sequence[A]{Sequence: sequence.Make(elems...), guard: g}, nil
}

// Guard returns the guard that brands s.
func (s Sequence[A]) Guard() guard.Guard[A] { //nolint:ireturn
	return s.guard
}

// Append returns a new sequence with elems added at the end.
func (s Sequence[A]) Append(elems ...A) (Sequence[A], error) {
	return s.appendFrom(opAppend, elems)
}

// Prepend returns a new sequence with elems added at the front.
func (s Sequence[A]) Prepend(elems ...A) (Sequence[A], error) {
	if err := check(s.guard, opPrepend, 0, elems); err != nil {
		return Sequence[A]{}, err
	}

	return s.derive(append(slices.Clone(elems), s.ToSlice()...)), nil
}

// Concat appends every element of other. other's elements are validated
// against s's guard even when other is itself a typed sequence, since it may
// carry a different guard.
func (s Sequence[A]) Concat(other sequence.Source[A]) (Sequence[A], error) {
	return s.appendFrom(opConcat, sequence.Collect(other).ToSlice())
}

func (s Sequence[A]) appendFrom(op string, elems []A) (Sequence[A], error) {
	if err := check(s.guard, op, s.Len(), elems); err != nil {
		return Sequence[A]{}, err
	}

	return s.derive(append(s.ToSlice(), elems...)), nil
}

// Map applies fn to every element and validates the results against s's
// guard.
func (s Sequence[A]) Map(fn func(A) A) (Sequence[A], error) {
	mapped := sequence.Map(s.Sequence, fn).ToSlice()

	if err := check(s.guard, opMap, 0, mapped); err != nil {
		return Sequence[A]{}, err
	}

	return s.derive(mapped), nil
}

// MapTo maps s into a sequence branded by g.
func MapTo[A, B any](s Sequence[A], g guard.Guard[B], fn func(A) B) (Sequence[B], error) {
	return Make(g, sequence.Map(s.Sequence, fn).ToSlice()...)
}

// Sort returns the elements stably sorted by cmp.
func (s Sequence[A]) Sort(cmp compare.Comparator[A]) Sequence[A] {
	elems := s.ToSlice()
	slices.SortStableFunc(elems, cmp.Cmp)

	return s.derive(elems)
}

// Filter keeps the elements satisfying predicate, in order.
func (s Sequence[A]) Filter(predicate func(A) bool) Sequence[A] {
	return s.derive(s.Sequence.Filter(predicate).ToSlice())
}

// Slice returns the elements in [start, end), failing like
// sequence.Sequence.Slice on bad bounds.
func (s Sequence[A]) Slice(start, end int) try.Try[Sequence[A]] {
	return try.Map(s.Sequence.Slice(start, end), func(sub sequence.Sequence[A]) (Sequence[A], error) {
		return Sequence[A]{Sequence: sub, guard: s.guard}, nil
	})
}

// Validate re-checks every element against the guard, logging each
// violation. All violations are reported unless ctx asks to fail fast
// (see validate.WithFailFast). An unbranded sequence always fails.
func (s Sequence[A]) Validate(ctx context.Context) error {
	if s.guard == nil {
		return fmt.Errorf("%w: sequence carries no guard", collerrors.ErrWrongType)
	}

	log := logger.Get(ctx)
	failFast := validate.FailFast(ctx)

	var errs collerrors.Collection

	for i, e := range s.Enumerate() {
		if guard.Is(s.guard, e) {
			continue
		}

		err := rejection(s.guard, opValidate, i, e)
		log.WarnContext(ctx, "typed sequence holds a rejected element", "error", err)
		errs.Add(err)

		if failFast {
			break
		}
	}

	return errs.GetError()
}

func (s Sequence[A]) derive(elems []A) Sequence[A] {
	return Sequence[A]{Sequence: sequence.Make(elems...), guard: s.guard}
}

// check validates elems, numbering them from offset in error messages.
func check[A any](g guard.Guard[A], op string, offset int, elems []A) error {
	var errs collerrors.Collection

	for i, e := range elems {
		if !guard.Is(g, e) {
			errs.Add(rejection(g, op, offset+i, e))
		}
	}

	return errs.GetError()
}

func rejection[A any](g guard.Guard[A], op string, index int, value any) error {
	rejectionsTotal.WithLabelValues(op).Inc()

	err := guard.Explain(g, value)
	if err == nil {
		// accepted by the guard but not an A
		err = fmt.Errorf("%w: %T is not a %s", collerrors.ErrWrongType, value, reflect.TypeFor[A]())
	}

	return logger.AnnotateError(
		fmt.Errorf("element %d: %w", index, err),
		"operation", op,
		"index", index,
		"type", fmt.Sprintf("%T", value),
	)
}
