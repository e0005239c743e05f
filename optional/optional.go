// Package optional provides the absent-or-present sentinel returned by every
// lookup that may legitimately find nothing (First/Last on an empty sequence,
// a missing map key, an unsuccessful search).
//
// Absence is tracked by a flag, never by a reserved value, so the zero value of
// T is a perfectly valid present value.
package optional

import (
	"encoding/json"
	"fmt"
	"iter"
)

// Value holds either nothing or a single value of type T.
// The zero Value is None.
type Value[T any] struct {
	value T
	isSet bool
}

// Some marks value as present.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None is the absent Value of T.
func None[T any]() Value[T] {
	return Value[T]{}
}

// FromPair converts the comma-ok idiom into a Value.
//
//	v, ok := m[key]
//	opt := optional.FromPair(v, ok)
func FromPair[T any](value T, ok bool) Value[T] {
	if !ok {
		return None[T]()
	}

	return Some(value)
}

// All yields the value if present. Each call starts a fresh iteration.
func (o Value[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.isSet {
			yield(o.value)
		}
	}
}

// NonEmpty reports presence.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty reports absence.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// Get mirrors the comma-ok idiom.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOrPanic returns the value, panicking on None.
func (o Value[T]) GetOrPanic() T {
	if !o.isSet {
		panic("called GetOrPanic on None")
	}

	return o.value
}

// GetOrElse falls back to fallback when o is None.
func (o Value[T]) GetOrElse(fallback T) T {
	if !o.isSet {
		return fallback
	}

	return o.value
}

// GetOrElseFunc is GetOrElse with a lazily computed default.
func (o Value[T]) GetOrElseFunc(fallback func() T) T {
	if !o.isSet {
		return fallback()
	}

	return o.value
}

// OrElse picks the first present of o and other.
func (o Value[T]) OrElse(other Value[T]) Value[T] {
	if !o.isSet {
		return other
	}

	return o
}

// Filter drops a present value that fails keep.
func (o Value[T]) Filter(keep func(T) bool) Value[T] {
	if o.isSet && keep(o.value) {
		return o
	}

	return None[T]()
}

// Equals reports whether both are None, or both hold values equal under eq.
func (o Value[T]) Equals(other Value[T], eq func(T, T) bool) bool {
	if o.isSet != other.isSet {
		return false
	}

	if !o.isSet {
		return true
	}

	return eq(o.value, other.value)
}

// String returns "Some(value)" or "None".
func (o Value[T]) String() string {
	if o.isSet {
		return fmt.Sprintf("Some(%v)", o.value)
	}

	return "None"
}

// Map applies fn under Some and propagates None.
func Map[T, U any](o Value[T], fn func(T) U) Value[U] {
	if v, ok := o.Get(); ok {
		return Some(fn(v))
	}

	return None[U]()
}

// FlatMap is Map for functions that may themselves find nothing.
func FlatMap[T, U any](o Value[T], fn func(T) Value[U]) Value[U] {
	if v, ok := o.Get(); ok {
		return fn(v)
	}

	return None[U]()
}

// MarshalJSON writes None as null and Some(v) as the encoding of v.
func (o Value[T]) MarshalJSON() ([]byte, error) {
	if !o.isSet {
		return []byte("null"), nil
	}

	return json.Marshal(o.value)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (o *Value[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = None[T]()

		return nil
	}

	var decoded T
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	*o = Some(decoded)

	return nil
}
