// Package grammar defines the context-free grammar model consumed by the
// Earley engine: ordered productions, terminal/non-terminal classification
// and a start symbol. Grammars are immutable after construction and safe to
// share between concurrent parses.
package grammar

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadGrammar is wrapped by every error reported during grammar
// construction or loading.
var ErrBadGrammar = errors.New("bad grammar")

// Production is a single rule A → α. The right-hand side always contains at
// least one symbol; ε-productions are not supported.
type Production struct {
	LHS string
	RHS []string
}

func (p Production) String() string {
	return p.LHS + " → " + strings.Join(p.RHS, " ")
}

// equal reports whether two productions are the same rule.
func (p Production) equal(q Production) bool {
	if p.LHS != q.LHS || len(p.RHS) != len(q.RHS) {
		return false
	}
	for i := range p.RHS {
		if p.RHS[i] != q.RHS[i] {
			return false
		}
	}
	return true
}

// Grammar is the four-tuple (N, T, P, S). A symbol is a non-terminal iff it
// appears as the left-hand side of at least one production; every other
// symbol on a right-hand side is a terminal (a token kind).
type Grammar struct {
	prods map[string][]Production
	order []string // non-terminals in first-appearance order
	start string
}

// Build constructs a grammar from an ordered list of productions. It fails
// if the list is empty, any right-hand side is empty, or the start symbol
// has no productions.
func Build(prods []Production, start string) (*Grammar, error) {
	if len(prods) == 0 {
		return nil, fmt.Errorf("%w: no productions", ErrBadGrammar)
	}
	g := &Grammar{
		prods: make(map[string][]Production),
		start: start,
	}
	for _, p := range prods {
		if p.LHS == "" {
			return nil, fmt.Errorf("%w: production with empty left-hand side", ErrBadGrammar)
		}
		if len(p.RHS) == 0 {
			return nil, fmt.Errorf("%w: empty right-hand side for %s", ErrBadGrammar, p.LHS)
		}
		for _, sym := range p.RHS {
			if sym == "" {
				return nil, fmt.Errorf("%w: empty symbol in production for %s", ErrBadGrammar, p.LHS)
			}
		}
		if _, seen := g.prods[p.LHS]; !seen {
			g.order = append(g.order, p.LHS)
		}
		g.prods[p.LHS] = append(g.prods[p.LHS], p)
	}
	if _, ok := g.prods[start]; !ok {
		return nil, fmt.Errorf("%w: start symbol %q has no productions", ErrBadGrammar, start)
	}
	return g, nil
}

// Start returns the start symbol.
func (g *Grammar) Start() string {
	return g.start
}

// IsNonterminal reports whether sym has productions in this grammar.
func (g *Grammar) IsNonterminal(sym string) bool {
	_, ok := g.prods[sym]
	return ok
}

// ProductionsOf returns the productions of a non-terminal in source order.
// The returned slice must not be modified.
func (g *Grammar) ProductionsOf(name string) []Production {
	return g.prods[name]
}

// Nonterminals returns the non-terminal names in first-appearance order.
func (g *Grammar) Nonterminals() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Terminals returns the terminal symbols in order of first appearance on a
// right-hand side, scanning the productions in the order Productions returns
// them (grouped by non-terminal).
func (g *Grammar) Terminals() []string {
	var out []string
	seen := make(map[string]bool)
	for _, lhs := range g.order {
		for _, p := range g.prods[lhs] {
			for _, sym := range p.RHS {
				if g.IsNonterminal(sym) || seen[sym] {
					continue
				}
				seen[sym] = true
				out = append(out, sym)
			}
		}
	}
	return out
}

// Productions returns every production in source order: grouped by
// non-terminal in first-appearance order, then by position within the group.
func (g *Grammar) Productions() []Production {
	var out []Production
	for _, lhs := range g.order {
		out = append(out, g.prods[lhs]...)
	}
	return out
}

// Equal reports whether two grammars have the same start symbol and the same
// productions in the same order.
func (g *Grammar) Equal(h *Grammar) bool {
	if g.start != h.start || len(g.order) != len(h.order) {
		return false
	}
	for i, lhs := range g.order {
		if h.order[i] != lhs {
			return false
		}
		gp, hp := g.prods[lhs], h.prods[lhs]
		if len(gp) != len(hp) {
			return false
		}
		for j := range gp {
			if !gp[j].equal(hp[j]) {
				return false
			}
		}
	}
	return true
}

func (g *Grammar) String() string {
	var sb strings.Builder
	for i, p := range g.Productions() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(p.String())
	}
	return sb.String()
}
