package compare

import "cmp"

// Comparator imposes a total order on T. Cmp returns -1 if a sorts before b,
// 1 if after, and 0 if they are equivalent.
type Comparator[T any] interface {
	Cmp(a, b T) int
}

// Func adapts a bare comparison function to Comparator. Any negative result
// is reported as -1 and any positive one as 1.
type Func[T any] func(a, b T) int

// Cmp implements Comparator.
func (f Func[T]) Cmp(a, b T) int {
	return Sign(f(a, b))
}

var _ Comparator[int] = Func[int](nil)

// Sign normalizes an arbitrary comparison result to -1, 0 or 1.
func Sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// Ordered returns the natural Comparator for an ordered type.
// NaN sorts before every other float, as with cmp.Compare.
func Ordered[T cmp.Ordered]() Comparator[T] {
	return Func[T](cmp.Compare[T])
}

// FromLess builds a Comparator from a strict less-than function.
func FromLess[T any](less func(a, b T) bool) Comparator[T] {
	return Func[T](func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	})
}

// Reverse inverts the order imposed by c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return Func[T](func(a, b T) int {
		return c.Cmp(b, a)
	})
}

// By orders values of T by a key extracted with key, using keyCmp.
func By[T, K any](key func(T) K, keyCmp Comparator[K]) Comparator[T] {
	return Func[T](func(a, b T) int {
		return keyCmp.Cmp(key(a), key(b))
	})
}

// Then orders by first, breaking ties with second.
func Then[T any](first, second Comparator[T]) Comparator[T] {
	return Func[T](func(a, b T) int {
		if c := first.Cmp(a, b); c != 0 {
			return c
		}

		return second.Cmp(a, b)
	})
}

// Slices compares a and b lexicographically under c: the first differing
// element decides, and a proper prefix sorts before the longer slice.
func Slices[T any](c Comparator[T], a, b []T) int {
	for i := range min(len(a), len(b)) {
		if r := c.Cmp(a[i], b[i]); r != 0 {
			return Sign(r)
		}
	}

	return Sign(cmp.Compare(len(a), len(b)))
}
