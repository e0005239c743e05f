package validate

import "context"

type contextKey string

const failFastKey contextKey = "failFast"

// WithFailFast controls whether collection validation stops at the first
// violation. By default every violation is collected and reported.
func WithFailFast(ctx context.Context, failFast bool) context.Context {
	return context.WithValue(ctx, failFastKey, failFast)
}

// FailFast reports whether ctx asks validators to stop at the first violation.
func FailFast(ctx context.Context) bool {
	if ctx == nil {
		return false
	}

	v, ok := ctx.Value(failFastKey).(bool)

	return ok && v
}
