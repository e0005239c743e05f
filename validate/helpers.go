package validate

import "context"

// Func adapts a validation function to HasValidate. A nil function passes.
func Func(f func() error) HasValidate {
	return validateFunc(f)
}

// FuncWithContext adapts a context-aware validation function to
// HasValidateWithContext. A nil function passes.
func FuncWithContext(f func(ctx context.Context) error) HasValidateWithContext {
	return validateFuncWithContext(f)
}

type validateFunc func() error

func (f validateFunc) Validate() error {
	if f == nil {
		return nil
	}

	return f()
}

type validateFuncWithContext func(ctx context.Context) error

func (f validateFuncWithContext) Validate(ctx context.Context) error {
	if f == nil {
		return nil
	}

	return f(ctx)
}
