package sortable

import (
	"facette.io/natsort"
	"golang.org/x/text/cases"
)

// String orders strings bytewise.
type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return s == other
}

func (s String) LessThan(other String) bool {
	return s < other
}

// Natural orders strings so that embedded numbers compare numerically:
// "v2" sorts before "v10".
type Natural string

var _ Sortable[Natural] = (*Natural)(nil)

func (n Natural) Equals(other Natural) bool {
	return n == other
}

func (n Natural) LessThan(other Natural) bool {
	return natsort.Compare(string(n), string(other))
}

// Fold orders strings by their Unicode case folding. "Go" and "GO" are
// equal, and so are "ſ" and "S".
type Fold string

var _ Sortable[Fold] = (*Fold)(nil)

func (f Fold) Equals(other Fold) bool {
	return f.folded() == other.folded()
}

func (f Fold) LessThan(other Fold) bool {
	return f.folded() < other.folded()
}

// A Caser carries state, so each call gets its own.
func (f Fold) folded() string {
	return cases.Fold().String(string(f))
}
