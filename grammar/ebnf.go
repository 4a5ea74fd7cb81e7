package grammar

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/ebnf"
)

// FromEBNF converts a restricted EBNF grammar into the engine's production
// model. Only sequences, alternatives, names and quoted tokens are accepted;
// options, repetitions, groups and ranges have no counterpart in the plain
// CFG model and are reported as a BadGrammar error naming the production.
//
// If start is empty, the production that appears first in the EBNF source
// becomes the start symbol.
func FromEBNF(src ebnf.Grammar, start string) (*Grammar, error) {
	names := make([]string, 0, len(src))
	for name, prod := range src {
		if prod.Expr == nil {
			continue
		}
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return src[names[i]].Pos().Offset < src[names[j]].Pos().Offset
	})
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no productions", ErrBadGrammar)
	}
	if start == "" {
		start = names[0]
	}

	var prods []Production
	for _, name := range names {
		alts, err := alternativesOf(name, src[name].Expr)
		if err != nil {
			return nil, err
		}
		for _, rhs := range alts {
			prods = append(prods, Production{LHS: name, RHS: rhs})
		}
	}
	return Build(prods, start)
}

// alternativesOf flattens a production body into one symbol sequence per
// alternative.
func alternativesOf(name string, expr ebnf.Expression) ([][]string, error) {
	if alt, ok := expr.(ebnf.Alternative); ok {
		out := make([][]string, 0, len(alt))
		for _, e := range alt {
			rhs, err := sequenceOf(name, e)
			if err != nil {
				return nil, err
			}
			out = append(out, rhs)
		}
		return out, nil
	}
	rhs, err := sequenceOf(name, expr)
	if err != nil {
		return nil, err
	}
	return [][]string{rhs}, nil
}

func sequenceOf(name string, expr ebnf.Expression) ([]string, error) {
	if seq, ok := expr.(ebnf.Sequence); ok {
		out := make([]string, 0, len(seq))
		for _, e := range seq {
			sym, err := symbolOf(name, e)
			if err != nil {
				return nil, err
			}
			out = append(out, sym)
		}
		return out, nil
	}
	sym, err := symbolOf(name, expr)
	if err != nil {
		return nil, err
	}
	return []string{sym}, nil
}

func symbolOf(name string, expr ebnf.Expression) (string, error) {
	switch e := expr.(type) {
	case *ebnf.Name:
		return e.String, nil
	case *ebnf.Token:
		return strings.Trim(e.String, "\""), nil
	default:
		return "", fmt.Errorf("%w: production %s uses an EBNF construct (%T) that has no CFG equivalent", ErrBadGrammar, name, expr)
	}
}
