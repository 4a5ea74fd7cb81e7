// Package parse implements Earley recognition over a context-free grammar
// and reconstruction of one derivation tree from the completed chart. The
// recognizer handles left recursion, right recursion and ambiguity in
// worst-case cubic time; ambiguous inputs resolve to the first derivation
// in chart insertion order.
package parse

import (
	"github.com/sophia00000000/Arbol-de-sintactico-parser-tree/grammar"
	"github.com/sophia00000000/Arbol-de-sintactico-parser-tree/lex"
)

// Parser runs Earley recognition for one token sequence. A Parser is
// single-use: the chart it fills is scoped to one Recognize/BuildTree pair.
// The grammar may be shared between parsers; the chart may not.
type Parser struct {
	grammar *grammar.Grammar
	tokens  []lex.Token
	chart   *Chart
}

// NewParser prepares a parse of tokens under g.
func NewParser(g *grammar.Grammar, tokens []lex.Token) *Parser {
	return &Parser{grammar: g, tokens: tokens}
}

// Recognize drives predict, scan and complete to a fixed point over every
// chart position and reports whether the token sequence is in the grammar's
// language. Rejection is a value: mismatched tokens simply block scans and
// leave C[n] without an accepting item.
func (p *Parser) Recognize() bool {
	n := len(p.tokens)
	p.chart = newChart(n)

	for _, prod := range p.grammar.ProductionsOf(p.grammar.Start()) {
		p.chart.Add(0, &Item{Lhs: prod.LHS, Rhs: prod.RHS})
	}

	for i := 0; i <= n; i++ {
		set := p.chart.Set(i)
		// The set grows while being visited; Len is re-read each step so
		// appended items are processed in the same sweep.
		for j := 0; j < set.Len(); j++ {
			it := set.At(j)
			if it.Complete() {
				p.complete(i, j, it)
				continue
			}
			sym, _ := it.NextSymbol()
			if p.grammar.IsNonterminal(sym) {
				p.predict(i, sym)
			} else {
				p.scan(i, it, sym)
			}
		}
	}

	_, ok := p.root()
	return ok
}

// predict seeds C[i] with every production of the expected non-terminal,
// in grammar order.
func (p *Parser) predict(i int, name string) {
	for _, prod := range p.grammar.ProductionsOf(name) {
		p.chart.Add(i, &Item{Lhs: prod.LHS, Rhs: prod.RHS, Origin: i})
	}
}

// scan advances an item over the current token when its kind matches the
// expected terminal.
func (p *Parser) scan(i int, it *Item, kind string) {
	if i >= len(p.tokens) || p.tokens[i].Kind != kind {
		return
	}
	p.chart.Add(i+1, it.advance(tokenRef(p.tokens[i])))
}

// complete advances every item at the completed item's origin that was
// waiting for its left-hand side, recording the completed item's chart
// coordinates as the back-reference.
func (p *Parser) complete(i, slot int, completed *Item) {
	ref := itemRef(i, slot)
	origin := p.chart.Set(completed.Origin)
	for j := 0; j < origin.Len(); j++ {
		waiting := origin.At(j)
		sym, ok := waiting.NextSymbol()
		if !ok || sym != completed.Lhs {
			continue
		}
		p.chart.Add(i, waiting.advance(ref))
	}
}

// root locates the accepting item: the first complete start-symbol item in
// C[n] with origin 0, by insertion order.
func (p *Parser) root() (Backref, bool) {
	if p.chart == nil {
		return Backref{}, false
	}
	n := p.chart.Len() - 1
	set := p.chart.Set(n)
	for j := 0; j < set.Len(); j++ {
		it := set.At(j)
		if it.Lhs == p.grammar.Start() && it.Origin == 0 && it.Complete() {
			return itemRef(n, j), true
		}
	}
	return Backref{}, false
}

// Chart exposes the filled chart after Recognize, for diagnostics and tree
// reconstruction.
func (p *Parser) Chart() *Chart {
	return p.chart
}

// FurthestPosition returns the highest chart index holding an item that
// expects a terminal — the position of the longest prefix the recognizer
// could still extend. It approximates where a rejected input went wrong.
func (p *Parser) FurthestPosition() int {
	if p.chart == nil {
		return 0
	}
	for i := p.chart.Len() - 1; i >= 0; i-- {
		for _, it := range p.chart.Set(i).Items() {
			sym, ok := it.NextSymbol()
			if ok && !p.grammar.IsNonterminal(sym) {
				return i
			}
		}
	}
	return 0
}

// Recognize is a convenience wrapper deciding membership of tokens in the
// language of g, returning the filled chart alongside the verdict.
func Recognize(g *grammar.Grammar, tokens []lex.Token) (bool, *Chart) {
	p := NewParser(g, tokens)
	accepted := p.Recognize()
	return accepted, p.Chart()
}
