package typedmap

import (
	"cmp"

	"github.com/amp-labs/amp-collections/compare"
)

// Compare orders two maps: the smaller map sorts first, and maps of equal
// size are compared entry by entry in insertion order, key before value.
func Compare[K comparable, V any](
	keyCmp compare.Comparator[K],
	valueCmp compare.Comparator[V],
	a, b Map[K, V],
) int {
	if c := cmp.Compare(a.Size(), b.Size()); c != 0 {
		return c
	}

	bEntries := b.Entries()
	i := 0

	for ka, va := range a.Seq() {
		kb, vb := bEntries[i].Values()
		i++

		if c := keyCmp.Cmp(ka, kb); c != 0 {
			return compare.Sign(c)
		}

		if c := valueCmp.Cmp(va, vb); c != 0 {
			return compare.Sign(c)
		}
	}

	return 0
}

// Equal reports whether Compare(keyCmp, valueCmp, a, b) == 0.
func Equal[K comparable, V any](
	keyCmp compare.Comparator[K],
	valueCmp compare.Comparator[V],
	a, b Map[K, V],
) bool {
	return Compare(keyCmp, valueCmp, a, b) == 0
}
