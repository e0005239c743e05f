// Package try provides the success-or-error sentinel used by fallible lookups
// such as indexed access. A Try is a failure exactly when its Error is non-nil.
package try

import (
	"fmt"

	"github.com/amp-labs/amp-collections/optional"
)

// Try holds the outcome of a computation that may fail.
type Try[A any] struct {
	Value A
	Error error
}

// Success wraps a present value.
func Success[A any](value A) Try[A] {
	return Try[A]{Value: value}
}

// Failure wraps an error. A nil error yields a success holding the zero A.
func Failure[A any](err error) Try[A] {
	return Try[A]{Error: err}
}

// Of classifies value by its shape: if it is a non-nil error it becomes a
// failure, otherwise a success. Callers must not use Of for values that are
// legitimately error-shaped successes.
func Of[A any](value A) Try[A] {
	if err, ok := any(value).(error); ok && err != nil {
		return Failure[A](err)
	}

	return Success(value)
}

// IsSuccess reports a nil Error.
func (t Try[A]) IsSuccess() bool {
	return t.Error == nil
}

func (t Try[A]) IsFailure() bool {
	return t.Error != nil
}

// Get unpacks t into the usual value/error pair.
func (t Try[A]) Get() (A, error) { //nolint:ireturn
	if t.Error == nil {
		return t.Value, nil
	}

	var zero A

	return zero, t.Error
}

func (t Try[A]) GetOrElse(fallback A) A { //nolint:ireturn
	if t.Error != nil {
		return fallback
	}

	return t.Value
}

// GetOrPanic returns the value or panics with the failure.
func (t Try[A]) GetOrPanic() A { //nolint:ireturn
	if t.IsFailure() {
		panic(t.Error)
	}

	return t.Value
}

// ToOption drops the error: failures become None.
func (t Try[A]) ToOption() optional.Value[A] {
	if t.IsFailure() {
		return optional.None[A]()
	}

	return optional.Some(t.Value)
}

func (t Try[A]) String() string {
	if t.IsFailure() {
		return fmt.Sprintf("Failure(%v)", t.Error)
	}

	return fmt.Sprintf("Success(%v)", t.Value)
}

// Map runs fn on a success; failures pass through with their error.
func Map[A, B any](t Try[A], fn func(A) (B, error)) Try[B] {
	if t.Error != nil {
		return Failure[B](t.Error)
	}

	out, err := fn(t.Value)
	if err != nil {
		return Failure[B](err)
	}

	return Success(out)
}

// FromOption turns None into a failure carrying err.
func FromOption[A any](o optional.Value[A], err error) Try[A] {
	if v, ok := o.Get(); ok {
		return Success(v)
	}

	return Failure[A](err)
}
