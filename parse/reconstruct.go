package parse

import (
	"errors"
	"fmt"

	"github.com/sophia00000000/Arbol-de-sintactico-parser-tree/grammar"
	"github.com/sophia00000000/Arbol-de-sintactico-parser-tree/lex"
	"github.com/sophia00000000/Arbol-de-sintactico-parser-tree/tree"
)

// ErrInternal marks a corrupted chart: a back-reference list whose length
// does not match its item's dot, an item whose origin lies past its end
// position, or coordinates that resolve to nothing.
var ErrInternal = errors.New("internal invariant violation")

// BuildTree materializes one derivation tree from the filled chart. It
// returns (nil, nil) when recognition did not accept. Recognize is run
// first if it has not been already.
//
// The derivation is the one recorded by the first accepting item in
// insertion order: each interior node is a completed item, each leaf a
// scanned token, children ordered as the production's right-hand side.
func (p *Parser) BuildTree() (*tree.Tree, error) {
	if p.chart == nil {
		p.Recognize()
	}
	ref, ok := p.root()
	if !ok {
		return nil, nil
	}
	b := tree.NewBuilder()
	root, err := p.materialize(b, p.chart.item(ref))
	if err != nil {
		return nil, err
	}
	return b.Build(root)
}

func (p *Parser) materialize(b *tree.Builder, it *Item) (int, error) {
	if len(it.Backrefs) != it.Dot {
		return 0, fmt.Errorf("%w: item %s carries %d back-references", ErrInternal, it, len(it.Backrefs))
	}
	id := b.Add(it.Lhs, tree.Nonterminal)
	for _, ref := range it.Backrefs {
		if ref.IsToken() {
			leaf := b.Add(ref.Token.Literal, tree.Terminal)
			b.Attach(id, leaf)
			continue
		}
		child := p.chart.item(ref)
		if child == nil {
			return 0, fmt.Errorf("%w: dangling back-reference C[%d][%d] in item %s", ErrInternal, ref.Set, ref.Slot, it)
		}
		if child.Origin > ref.Set {
			return 0, fmt.Errorf("%w: item %s in C[%d] has its origin past its end", ErrInternal, child, ref.Set)
		}
		childID, err := p.materialize(b, child)
		if err != nil {
			return 0, err
		}
		b.Attach(id, childID)
	}
	return id, nil
}

// ParseTokens recognizes tokens under g and, on acceptance, reconstructs
// the derivation tree. The tree is nil and accepted false on rejection; a
// non-nil error only ever reports a corrupted chart.
func ParseTokens(g *grammar.Grammar, tokens []lex.Token) (*tree.Tree, bool, error) {
	p := NewParser(g, tokens)
	if !p.Recognize() {
		return nil, false, nil
	}
	t, err := p.BuildTree()
	if err != nil {
		return nil, true, err
	}
	return t, true, nil
}
