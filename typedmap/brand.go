package typedmap

import "github.com/amp-labs/amp-collections/guard"

// Is reports whether x is a typed map from K to V carrying both guards. It
// checks the brand only; use IsOf or Validate for a deep check.
func Is[K comparable, V any](x any) bool {
	m, ok := x.(Map[K, V])

	return ok && m.keyGuard != nil && m.valueGuard != nil
}

// IsOf is Is plus a check that every key satisfies keys and every value
// satisfies values.
func IsOf[K comparable, V any](x any, keys, values guard.Predicate) bool {
	if !Is[K, V](x) {
		return false
	}

	for k, v := range x.(Map[K, V]).Seq() { //nolint:forcetypeassert
		if !guard.Is(keys, k) || !guard.Is(values, v) {
			return false
		}
	}

	return true
}

// Guard returns Is as a guard, so typed maps can appear in shapes.
func Guard[K comparable, V any]() guard.Func[Map[K, V]] {
	return Is[K, V]
}

// GuardOf returns IsOf(_, keys, values) as a guard.
func GuardOf[K comparable, V any](keys, values guard.Predicate) guard.Func[Map[K, V]] {
	return func(x any) bool {
		return IsOf[K, V](x, keys, values)
	}
}
