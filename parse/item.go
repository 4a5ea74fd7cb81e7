package parse

import (
	"fmt"
	"strings"

	"github.com/sophia00000000/Arbol-de-sintactico-parser-tree/lex"
)

// Backref records how one symbol before an item's dot was matched: either a
// scanned token, or a completed item addressed by its chart coordinates.
// Items created later only ever reference items created earlier, so
// back-references by (set, slot) index can never form a cycle.
type Backref struct {
	Token *lex.Token // non-nil for a scanned terminal
	Set   int        // chart position of the completed item
	Slot  int        // insertion index within that item set
}

func tokenRef(tok lex.Token) Backref {
	return Backref{Token: &tok}
}

func itemRef(set, slot int) Backref {
	return Backref{Set: set, Slot: slot}
}

// IsToken reports whether this back-reference points at a scanned token.
func (b Backref) IsToken() bool {
	return b.Token != nil
}

// Item is an Earley item: a dotted production with an origin position.
// Identity for deduplication covers the production, the dot and the origin;
// the back-reference list is carried alongside and never consulted for
// identity, so the first derivation recorded for an item wins.
type Item struct {
	Lhs      string
	Rhs      []string
	Dot      int
	Origin   int
	Backrefs []Backref
}

// Complete reports whether the dot has reached the end of the production.
func (it *Item) Complete() bool {
	return it.Dot >= len(it.Rhs)
}

// NextSymbol returns the symbol after the dot, or ok=false for a complete
// item.
func (it *Item) NextSymbol() (string, bool) {
	if it.Complete() {
		return "", false
	}
	return it.Rhs[it.Dot], true
}

// advance returns a copy of the item with the dot moved past one matched
// symbol, recording how that symbol was matched.
func (it *Item) advance(ref Backref) *Item {
	refs := make([]Backref, len(it.Backrefs)+1)
	copy(refs, it.Backrefs)
	refs[len(it.Backrefs)] = ref
	return &Item{
		Lhs:      it.Lhs,
		Rhs:      it.Rhs,
		Dot:      it.Dot + 1,
		Origin:   it.Origin,
		Backrefs: refs,
	}
}

// key is the deduplication identity of the item.
func (it *Item) key() string {
	return fmt.Sprintf("%s→%s:%d:%d", it.Lhs, strings.Join(it.Rhs, " "), it.Dot, it.Origin)
}

func (it *Item) String() string {
	parts := make([]string, 0, len(it.Rhs)+1)
	parts = append(parts, it.Rhs[:it.Dot]...)
	parts = append(parts, "•")
	parts = append(parts, it.Rhs[it.Dot:]...)
	return fmt.Sprintf("%s → %s [%d]", it.Lhs, strings.Join(parts, " "), it.Origin)
}
