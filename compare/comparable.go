// Package compare provides equality and ordering capabilities for values.
//
// Comparable is the equality capability (an Equals method). Comparator is the
// ordering capability (a Cmp method returning -1, 0 or 1). Sorted collections
// accept any Comparator, so a module value exposing Cmp and a bare function
// wrapped in Func are interchangeable.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}
