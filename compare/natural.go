package compare

import "facette.io/natsort"

// Natural orders strings so that embedded numbers compare numerically:
// "file2" sorts before "file10".
func Natural() Comparator[string] {
	return FromLess(natsort.Compare)
}
