// Package sortedseq provides Sequence, an immutable sequence kept in
// non-decreasing order by the comparator it was built with. The comparator
// doubles as the sequence's brand: Is recognizes sorted sequences at runtime,
// and every derivation keeps the same comparator and re-establishes order.
//
// Every read operation of sequence.Sequence is available through embedding.
// Sortedness is asserted after every derivation unless the module is built
// with the assertions_disabled tag.
package sortedseq

import (
	"slices"
	"sort"

	"github.com/amp-labs/amp-collections/assert"
	"github.com/amp-labs/amp-collections/compare"
	"github.com/amp-labs/amp-collections/optional"
	"github.com/amp-labs/amp-collections/sequence"
	"github.com/amp-labs/amp-collections/try"
)

// Sequence is a sequence.Sequence whose elements are sorted by cmp.
// The zero value is empty and carries no comparator, so Is rejects it.
type Sequence[A any] struct {
	sequence.Sequence[A]

	cmp compare.Comparator[A]
}

// Make stably sorts a copy of elements by cmp and returns the result.
// Elements that compare equal keep their relative input order.
// Make panics if cmp is nil, including a nil compare.Func.
func Make[A any](cmp compare.Comparator[A], elements ...A) Sequence[A] {
	if fn, isFunc := cmp.(compare.Func[A]); cmp == nil || (isFunc && fn == nil) {
		panic("sortedseq: nil comparator")
	}

	sorted := slices.Clone(elements)
	slices.SortStableFunc(sorted, cmp.Cmp)

	return build(cmp, sorted)
}

func build[A any](cmp compare.Comparator[A], sorted []A) Sequence[A] {
	assert.SortedFunc(sorted, cmp.Cmp, "sortedseq: elements out of order")

	return Sequence[A]{
		Sequence: sequence.Make(sorted...),
		cmp:      cmp,
	}
}

// Comparator returns the comparator that orders (and brands) s.
func (s Sequence[A]) Comparator() compare.Comparator[A] { //nolint:ireturn
	return s.cmp
}

// Add returns a new sequence with elem inserted after any elements equal to it.
func (s Sequence[A]) Add(elem A) Sequence[A] {
	elems := s.ToSlice()
	at := s.upperBound(elem)

	return build(s.mustCmp(), slices.Insert(elems, at, elem))
}

// AddAll returns a new sequence with every element of elems merged in.
// Existing elements stay ahead of equal newcomers.
func (s Sequence[A]) AddAll(elems ...A) Sequence[A] {
	cmp := s.mustCmp()

	merged := append(s.ToSlice(), elems...)
	slices.SortStableFunc(merged, cmp.Cmp)

	return build(cmp, merged)
}

// Concat merges every element of other into s, ordered by s's comparator.
// other may be any source, sorted or not.
func (s Sequence[A]) Concat(other sequence.Source[A]) Sequence[A] {
	return s.AddAll(sequence.Collect(other).ToSlice()...)
}

// Map applies fn to every element and re-sorts the results with s's
// comparator. Keeping the element type lets the brand survive; use MapTo to
// change it.
func (s Sequence[A]) Map(fn func(A) A) Sequence[A] {
	cmp := s.mustCmp()

	mapped := sequence.Map(s.Sequence, fn).ToSlice()
	slices.SortStableFunc(mapped, cmp.Cmp)

	return build(cmp, mapped)
}

// Filter keeps the elements satisfying predicate. A subsequence of a sorted
// sequence is sorted, so nothing is re-ordered.
func (s Sequence[A]) Filter(predicate func(A) bool) Sequence[A] {
	return build(s.mustCmp(), s.Sequence.Filter(predicate).ToSlice())
}

// Slice returns the elements in [start, end), failing like
// sequence.Sequence.Slice on bad bounds.
func (s Sequence[A]) Slice(start, end int) try.Try[Sequence[A]] {
	return try.Map(s.Sequence.Slice(start, end), func(sub sequence.Sequence[A]) (Sequence[A], error) {
		return build(s.mustCmp(), sub.ToSlice()), nil
	})
}

// Search returns the index of the first element equal to x under the
// comparator, or None. It runs in logarithmic time.
func (s Sequence[A]) Search(x A) optional.Value[int] {
	cmp := s.mustCmp()
	at := s.lowerBound(x)

	if at < s.Len() && cmp.Cmp(s.at(at), x) == 0 {
		return optional.Some(at)
	}

	return optional.None[int]()
}

// Compare orders s and other lexicographically under s's comparator.
func (s Sequence[A]) Compare(other Sequence[A]) int {
	return sequence.Compare(s.Sequence, other.Sequence, s.mustCmp())
}

// Equals reports whether s and other hold pairwise equivalent elements.
func (s Sequence[A]) Equals(other Sequence[A]) bool {
	return s.Compare(other) == 0
}

// MapTo maps s into a sequence sorted by a different comparator.
func MapTo[A, B any](s Sequence[A], cmp compare.Comparator[B], fn func(A) B) Sequence[B] {
	return Make(cmp, sequence.Map(s.Sequence, fn).ToSlice()...)
}

func (s Sequence[A]) at(i int) A { //nolint:ireturn
	return s.Get(i).Value
}

func (s Sequence[A]) lowerBound(x A) int {
	cmp := s.mustCmp()

	return sort.Search(s.Len(), func(i int) bool {
		return cmp.Cmp(s.at(i), x) >= 0
	})
}

func (s Sequence[A]) upperBound(x A) int {
	cmp := s.mustCmp()

	return sort.Search(s.Len(), func(i int) bool {
		return cmp.Cmp(s.at(i), x) > 0
	})
}

// mustCmp guards derivations on a zero Sequence, which has no order to keep.
func (s Sequence[A]) mustCmp() compare.Comparator[A] { //nolint:ireturn
	if s.cmp == nil {
		panic("sortedseq: zero Sequence has no comparator")
	}

	return s.cmp
}
