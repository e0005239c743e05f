// Package validate runs deep validation over values that know how to check
// themselves. Branded collections implement HasValidateWithContext: their
// brand proves they were built through validated operations, and Validate
// re-checks every element against the guard when that proof isn't enough
// (for example after data arrives through reflection or unsafe code).
package validate

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/amp-labs/amp-collections/logger"
)

// HasValidate is implemented by values that validate without a context.
type HasValidate interface {
	Validate() error
}

// HasValidateWithContext is implemented by values whose validation logs or
// honors cancellation.
type HasValidateWithContext interface {
	Validate(ctx context.Context) error
}

// Validate validates value if it implements HasValidate or
// HasValidateWithContext. Each call is traced as a "validate" span (see
// WithTracer) and recorded in the validation metrics. Nil values and values
// implementing neither interface pass.
func Validate(ctx context.Context, value any) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if isNilish(value) {
		return nil
	}

	typeName := fmt.Sprintf("%T", value)

	withCtx, isWithCtx := value.(HasValidateWithContext)
	plain, isPlain := value.(HasValidate)

	if !isWithCtx && !isPlain {
		logger.Get(ctx).WarnContext(ctx, "Validate called on unsupported type", "type", typeName)
		validationsTotal.WithLabelValues("false", "false").Inc()

		return nil
	}

	ctx, span := startSpan(ctx, typeName)
	start := time.Now()

	var err error
	if isWithCtx {
		err = withCtx.Validate(ctx)
	} else {
		err = plain.Validate()
	}

	endSpan(span, err)

	hasError := strconv.FormatBool(err != nil)

	validationsTotal.WithLabelValues("true", hasError).Inc()
	validationTime.WithLabelValues(typeName, hasError).
		Observe(float64(time.Since(start).Microseconds()) / 1000.0) //nolint:mnd

	return err
}

func isNilish(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() { //nolint:exhaustive
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
