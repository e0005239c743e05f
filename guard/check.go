package guard

import (
	"context"
	"fmt"

	collerrors "github.com/amp-labs/amp-collections/errors"
	"github.com/amp-labs/amp-collections/logger"
)

// Explainer is implemented by guards that can say why they rejected a value.
type Explainer interface {
	Explain(value any) error
}

// Explain returns nil if p accepts value. Otherwise it returns the guard's own
// explanation when it has one, or a generic error naming the value's type.
// The error always wraps errors.ErrWrongType.
func Explain(p Predicate, value any) error {
	if Is(p, value) {
		return nil
	}

	if ex, ok := p.(Explainer); ok {
		if err := ex.Explain(value); err != nil {
			return err
		}
	}

	return fmt.Errorf("%w: rejected value of type %T", collerrors.ErrWrongType, value)
}

// Check is Is with a debug log line for every rejection.
func Check(ctx context.Context, p Predicate, value any) bool {
	err := Explain(p, value)
	if err == nil {
		return true
	}

	logger.Get(ctx).DebugContext(ctx, "guard rejected value", "error", err)

	return false
}
