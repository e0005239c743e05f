package sortable

import (
	"github.com/amp-labs/amp-collections/compare"
)

type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare orders two Sortable values, returning -1, 0 or 1.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case a.Equals(b):
		return 0
	default:
		return 1
	}
}

// Comparator returns the compare.Comparator induced by T's LessThan/Equals.
func Comparator[T Sortable[T]]() compare.Comparator[T] {
	return compare.Func[T](Compare[T])
}
