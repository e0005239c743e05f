// Package errors holds the sentinel errors shared by the collection packages,
// plus a small accumulator for reporting several violations at once.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrWrongType is the fail-fast error for a value rejected by a guard:
	// heterogeneous initial elements, an insertion that violates a typed
	// collection's invariant, or a wrong-typed key passed to Has/Delete.
	ErrWrongType = errors.New("wrong type")

	// ErrIndexOutOfBounds is matched by every IndexOutOfBoundsError.
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrInvalidShape is returned when a shape description can't be compiled
	// into a guard (not a map, or a field descriptor that is neither a guard,
	// a predicate, nor a nested shape).
	ErrInvalidShape = errors.New("invalid shape")

	// ErrCyclicShape is returned when a shape description contains itself.
	ErrCyclicShape = errors.New("cyclic shape")
)

// IndexOutOfBoundsError reports an index outside [0, Length).
// Its message is stable and callers may match on it.
type IndexOutOfBoundsError struct {
	Index  int
	Length int
}

// IndexOutOfBounds returns an *IndexOutOfBoundsError for the given index and length.
func IndexOutOfBounds(index, length int) error {
	return &IndexOutOfBoundsError{Index: index, Length: length}
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("Index out of bounds %d for length %d", e.Index, e.Length)
}

// Is makes errors.Is(err, ErrIndexOutOfBounds) hold.
func (e *IndexOutOfBoundsError) Is(target error) bool {
	return target == ErrIndexOutOfBounds //nolint:errorlint
}

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Typed constructors use it to report every rejected element, not just the first.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns nil for an empty collection, the single error when there is
// exactly one, or an errors.Join of all of them.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
