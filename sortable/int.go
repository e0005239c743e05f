package sortable

// Int is a sortable wrapper type for the built-in int type.
//
//	var s sortable.Int = 42
//	regularInt := int(s)
type Int int

var _ Sortable[Int] = (*Int)(nil)

func (i Int) Equals(other Int) bool {
	return i == other
}

func (i Int) LessThan(other Int) bool {
	return i < other
}
