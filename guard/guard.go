// Package guard provides runtime type guards: total predicates over arbitrary
// values that decide whether a value belongs to a type.
//
// Anything with a Guard(value any) bool method is a Predicate. A Guard[A] is
// a predicate that can also narrow an accepted value to A, which is what the
// typed collections need to tie their element type to their brand. Bare
// predicates are adapted by Func, the scalar modules are guards in their own
// right, and Of, ArrayOf and Tuple compile structural guards.
//
//	isName := guard.Refine(guard.Type[string](), func(s string) bool { return s != "" })
//	person := guard.MustOf(guard.Shape{
//	    "name": isName,
//	    "age":  scalar.Int,
//	    "address": guard.Shape{
//	        "city": guard.Type[string](),
//	    },
//	})
//
//	person.Guard(map[string]any{"name": "Ada", "age": 36, "address": map[string]any{"city": "London"}}) // true
package guard

import (
	"reflect"

	"github.com/amp-labs/amp-collections/assert"
)

// Predicate decides at runtime whether a value belongs to some type.
type Predicate interface {
	Guard(value any) bool
}

// Guard is a Predicate for the type A. Cast reports whether the value is
// accepted and, if so, returns it as an A.
type Guard[A any] interface {
	Predicate

	Cast(value any) (A, bool)
}

// Func adapts a bare predicate to Guard. A nil Func rejects everything.
type Func[A any] func(value any) bool

var _ Guard[int] = Func[int](nil)

// Guard implements Predicate.
func (f Func[A]) Guard(value any) bool {
	return f != nil && f(value)
}

// Cast implements Guard. A predicate that accepts something that isn't
// actually an A still yields false.
func (f Func[A]) Cast(value any) (A, bool) { //nolint:ireturn
	var zero A

	if !f.Guard(value) {
		return zero, false
	}

	if value == nil {
		return zero, nilable[A]()
	}

	typed, err := assert.Type[A](value)
	if err != nil {
		return zero, false
	}

	return typed, true
}

func nilable[A any]() bool {
	switch reflect.TypeFor[A]().Kind() { //nolint:exhaustive
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}

// From treats any predicate as a guard for A.
func From[A any](p Predicate) Func[A] {
	if p == nil {
		return nil
	}

	return p.Guard
}

// Is applies p to value. A nil predicate rejects everything.
func Is(p Predicate, value any) bool {
	if p == nil {
		return false
	}

	return p.Guard(value)
}

// Cast applies g and, if it accepts, returns value as an A.
func Cast[A any](g Guard[A], value any) (A, bool) { //nolint:ireturn
	if g == nil {
		var zero A

		return zero, false
	}

	return g.Cast(value)
}

// Type accepts exactly the values whose dynamic type is A (or implements A,
// when A is an interface). A nil value is never an A.
func Type[A any]() Func[A] {
	return func(value any) bool {
		_, ok := value.(A)

		return ok
	}
}

// Any accepts every value, including nil.
func Any() Func[any] {
	return func(any) bool {
		return true
	}
}

// Nil accepts only the untyped nil.
func Nil() Func[any] {
	return func(value any) bool {
		return value == nil
	}
}

// Literal accepts values equal to want (same dynamic type, ==).
func Literal[A comparable](want A) Func[A] {
	return func(value any) bool {
		v, ok := value.(A)

		return ok && v == want
	}
}

// Refine narrows g with a predicate over the typed value.
func Refine[A any](g Guard[A], predicate func(A) bool) Func[A] {
	return func(value any) bool {
		typed, ok := Cast(g, value)

		return ok && predicate(typed)
	}
}

// Not inverts p.
func Not(p Predicate) Func[any] {
	return func(value any) bool {
		return !Is(p, value)
	}
}

// And accepts values accepted by g and every one of more.
func And[A any](g Guard[A], more ...Predicate) Func[A] {
	return func(value any) bool {
		if !Is(g, value) {
			return false
		}

		for _, p := range more {
			if !Is(p, value) {
				return false
			}
		}

		return true
	}
}

// Or accepts values accepted by at least one predicate. With none it rejects
// everything.
func Or(preds ...Predicate) Func[any] {
	return func(value any) bool {
		for _, p := range preds {
			if Is(p, value) {
				return true
			}
		}

		return false
	}
}

// Optional accepts nil in addition to whatever g accepts.
func Optional[A any](g Guard[A]) Func[A] {
	return func(value any) bool {
		return value == nil || Is(g, value)
	}
}
