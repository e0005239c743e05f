package sortable

import "cmp"

// Float is a sortable wrapper type for float64. NaN equals NaN and sorts
// before every other value, so the order stays total.
type Float float64

var _ Sortable[Float] = (*Float)(nil)

func (f Float) Equals(other Float) bool {
	return cmp.Compare(f, other) == 0
}

func (f Float) LessThan(other Float) bool {
	return cmp.Less(f, other)
}
