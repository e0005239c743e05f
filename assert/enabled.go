//go:build !assertions_disabled

package assert

// True panics unless value is true.
// If the first arg is a string it is used as a format string for the remaining args.
func True(value bool, args ...any) {
	if !value {
		fail(args)
	}
}

// False panics unless value is false.
func False(value bool, args ...any) {
	True(!value, args...)
}

// SortedFunc panics unless slice is non-decreasing under cmp.
func SortedFunc[T any](slice []T, cmp func(a, b T) int, args ...any) {
	for i := 1; i < len(slice); i++ {
		if cmp(slice[i-1], slice[i]) > 0 {
			fail(args)
		}
	}
}
