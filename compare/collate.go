package compare

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collate orders strings by the collation rules of the given language, the
// way a human reader of that language would expect (accents, case, and so on).
// The returned Comparator is safe to share between collections.
func Collate(tag language.Tag, opts ...collate.Option) Comparator[string] {
	c := &collator{coll: collate.New(tag, opts...)}

	return Func[string](c.compare)
}

// collator serializes access to the collate.Collator, which reuses internal
// buffers between calls.
type collator struct {
	mu   sync.Mutex
	coll *collate.Collator
}

func (c *collator) compare(a, b string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.coll.CompareString(a, b)
}
