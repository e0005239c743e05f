// Package sequence provides Sequence, an immutable ordered collection with
// safe indexed access. Sequences are values: every derivation returns a new
// Sequence and never touches the receiver or the slice it was built from.
//
// Lookups that can miss return sentinels instead of panicking. Get and Slice
// return a try.Try whose failure carries an *errors.IndexOutOfBoundsError,
// and First and Last return an optional.Value.
//
//	seq := sequence.Make(1, 2, 3)
//	seq.Get(5).Error // Index out of bounds 5 for length 3
//	doubled := sequence.Map(seq, func(n int) int { return n * 2 })
package sequence

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"

	collerrors "github.com/amp-labs/amp-collections/errors"
	"github.com/amp-labs/amp-collections/optional"
	"github.com/amp-labs/amp-collections/try"
	"gopkg.in/yaml.v3"
)

// Sequence is an immutable ordered collection. The zero value is an empty
// sequence ready to use.
type Sequence[A any] struct {
	elems []A
}

var (
	_ json.Marshaler = Sequence[int]{}
	_ yaml.Marshaler = Sequence[int]{}
	_ fmt.Stringer   = Sequence[int]{}
)

// Source is anything that can be walked as a series of A values. Every
// sequence kind in this module is a Source, and so is optional.Value.
type Source[A any] interface {
	All() iter.Seq[A]
}

var _ Source[int] = Sequence[int]{}

// Collect drains src into a new sequence.
func Collect[A any](src Source[A]) Sequence[A] {
	if seq, ok := src.(Sequence[A]); ok {
		return seq
	}

	return Sequence[A]{elems: slices.Collect(src.All())}
}

// Make returns a sequence holding a copy of elements, in order.
func Make[A any](elements ...A) Sequence[A] {
	return Sequence[A]{elems: slices.Clone(elements)}
}

// Get returns the element at index i, or a failure wrapping
// errors.ErrIndexOutOfBounds when i is outside [0, Len()).
func (s Sequence[A]) Get(i int) try.Try[A] {
	if i < 0 || i >= len(s.elems) {
		return try.Failure[A](collerrors.IndexOutOfBounds(i, len(s.elems)))
	}

	return try.Success(s.elems[i])
}

// First returns the first element, or None if the sequence is empty.
func (s Sequence[A]) First() optional.Value[A] {
	if len(s.elems) == 0 {
		return optional.None[A]()
	}

	return optional.Some(s.elems[0])
}

// Last returns the last element, or None if the sequence is empty.
func (s Sequence[A]) Last() optional.Value[A] {
	if len(s.elems) == 0 {
		return optional.None[A]()
	}

	return optional.Some(s.elems[len(s.elems)-1])
}

// Count returns how many elements satisfy predicate.
func (s Sequence[A]) Count(predicate func(A) bool) int {
	n := 0

	for _, e := range s.elems {
		if predicate(e) {
			n++
		}
	}

	return n
}

func (s Sequence[A]) Len() int {
	return len(s.elems)
}

func (s Sequence[A]) Empty() bool {
	return len(s.elems) == 0
}

func (s Sequence[A]) Populated() bool {
	return len(s.elems) > 0
}

// ToSlice returns a fresh copy of the elements. It is never nil.
func (s Sequence[A]) ToSlice() []A {
	out := make([]A, len(s.elems))
	copy(out, s.elems)

	return out
}

// ToMap returns the elements keyed by their index. Keys stay ints; callers
// that need string keys (for a JSON object, say) convert with strconv.Itoa.
func (s Sequence[A]) ToMap() map[int]A {
	out := make(map[int]A, len(s.elems))
	for i, e := range s.elems {
		out[i] = e
	}

	return out
}

// ToJSON returns the plain value a JSON encoder should see: a slice of the
// elements with no trace of the sequence wrapper.
func (s Sequence[A]) ToJSON() []A {
	return s.ToSlice()
}

// MarshalJSON encodes the sequence as a JSON array. An empty sequence is [].
func (s Sequence[A]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.ToJSON())
}

// MarshalYAML encodes the sequence as a YAML sequence.
func (s Sequence[A]) MarshalYAML() (any, error) {
	return s.ToJSON(), nil
}

func (s Sequence[A]) String() string {
	return fmt.Sprint(s.elems)
}

// All returns an iterator over the elements in order. Every call starts a
// fresh pass.
func (s Sequence[A]) All() iter.Seq[A] {
	return slices.Values(s.elems)
}

// Enumerate returns an iterator over index/element pairs.
func (s Sequence[A]) Enumerate() iter.Seq2[int, A] {
	return slices.All(s.elems)
}

// Backward iterates from the last element to the first.
func (s Sequence[A]) Backward() iter.Seq2[int, A] {
	return slices.Backward(s.elems)
}

// Filter returns the elements satisfying predicate, in their original order.
func (s Sequence[A]) Filter(predicate func(A) bool) Sequence[A] {
	out := make([]A, 0, len(s.elems))

	for _, e := range s.elems {
		if predicate(e) {
			out = append(out, e)
		}
	}

	return Sequence[A]{elems: out}
}

// Slice returns the elements in [start, end). It fails with an
// *errors.IndexOutOfBoundsError naming start when start is outside
// [0, Len()], or naming end when end is outside [start, Len()].
func (s Sequence[A]) Slice(start, end int) try.Try[Sequence[A]] {
	if start < 0 || start > len(s.elems) {
		return try.Failure[Sequence[A]](collerrors.IndexOutOfBounds(start, len(s.elems)))
	}

	if end < start || end > len(s.elems) {
		return try.Failure[Sequence[A]](collerrors.IndexOutOfBounds(end, len(s.elems)))
	}

	return try.Success(Make(s.elems[start:end]...))
}
