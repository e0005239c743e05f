package sortedseq

import (
	"github.com/amp-labs/amp-collections/guard"
)

// Is reports whether x is a sorted sequence of A carrying a comparator.
func Is[A any](x any) bool {
	s, ok := x.(Sequence[A])

	return ok && s.cmp != nil
}

// IsOf is Is plus a check that every element satisfies elem.
func IsOf[A any](x any, elem guard.Predicate) bool {
	s, ok := x.(Sequence[A])
	if !ok || s.cmp == nil {
		return false
	}

	for e := range s.All() {
		if !guard.Is(elem, e) {
			return false
		}
	}

	return true
}

// Guard returns Is as a guard, so sorted sequences can appear in shapes.
func Guard[A any]() guard.Func[Sequence[A]] {
	return Is[A]
}

// GuardOf returns IsOf(_, elem) as a guard.
func GuardOf[A any](elem guard.Predicate) guard.Func[Sequence[A]] {
	return func(x any) bool {
		return IsOf[A](x, elem)
	}
}
