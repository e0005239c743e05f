// Package assert provides type assertions that return errors, and invariant
// assertions that panic. The panicking assertions compile to no-ops under the
// assertions_disabled build tag.
package assert

import (
	"fmt"

	"github.com/amp-labs/amp-collections/errors"
)

// Type asserts that the given value is of the expected type T.
// If the assertion fails, it returns an error wrapping errors.ErrWrongType.
//
//nolint:ireturn
func Type[T any](val any) (T, error) {
	of, ok := val.(T)
	if !ok {
		return of, fmt.Errorf("%w: expected type %T, but received %T", errors.ErrWrongType, of, val)
	}

	return of, nil
}

func fail(args []any) {
	if len(args) == 0 {
		panic("assertion failed")
	}

	if format, ok := args[0].(string); ok {
		panic(fmt.Sprintf(format, args[1:]...))
	}

	panic(fmt.Sprintf("assertion failed: %v", args))
}
