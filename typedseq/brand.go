package typedseq

import "github.com/amp-labs/amp-collections/guard"

// Is reports whether x is a typed sequence of A carrying a guard. It checks
// the brand only; use Validate for a deep check.
func Is[A any](x any) bool {
	s, ok := x.(Sequence[A])

	return ok && s.guard != nil
}

// Guard returns Is as a guard, so typed sequences can appear in shapes.
func Guard[A any]() guard.Func[Sequence[A]] {
	return Is[A]
}
