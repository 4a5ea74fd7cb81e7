package grammar

import (
	"errors"
	"testing"
)

func TestBuild(t *testing.T) {
	prods := []Production{
		{LHS: "E", RHS: []string{"E", "op_suma", "T"}},
		{LHS: "E", RHS: []string{"T"}},
		{LHS: "T", RHS: []string{"num"}},
	}
	g, err := Build(prods, "E")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if g.Start() != "E" {
		t.Errorf("start = %q, want E", g.Start())
	}
	if !g.IsNonterminal("E") || !g.IsNonterminal("T") {
		t.Error("E and T should be non-terminals")
	}
	if g.IsNonterminal("num") || g.IsNonterminal("op_suma") {
		t.Error("num and op_suma should be terminals")
	}
	if got := len(g.ProductionsOf("E")); got != 2 {
		t.Errorf("E has %d productions, want 2", got)
	}
	if got := g.ProductionsOf("E")[0].RHS; len(got) != 3 {
		t.Errorf("first E production has %d symbols, want 3", len(got))
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name  string
		prods []Production
		start string
	}{
		{"no productions", nil, "E"},
		{"empty rhs", []Production{{LHS: "E", RHS: nil}}, "E"},
		{"empty lhs", []Production{{LHS: "", RHS: []string{"x"}}}, "E"},
		{"empty symbol", []Production{{LHS: "E", RHS: []string{"x", ""}}}, "E"},
		{"unknown start", []Production{{LHS: "E", RHS: []string{"x"}}}, "S"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.prods, tt.start)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrBadGrammar) {
				t.Errorf("error %v does not wrap ErrBadGrammar", err)
			}
		})
	}
}

func TestSymbolSets(t *testing.T) {
	g, err := Build([]Production{
		{LHS: "E", RHS: []string{"E", "op_suma", "T"}},
		{LHS: "E", RHS: []string{"T"}},
		{LHS: "T", RHS: []string{"T", "op_mul", "F"}},
		{LHS: "T", RHS: []string{"F"}},
		{LHS: "F", RHS: []string{"num"}},
		{LHS: "F", RHS: []string{"pari", "E", "pard"}},
	}, "E")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	wantN := []string{"E", "T", "F"}
	gotN := g.Nonterminals()
	if len(gotN) != len(wantN) {
		t.Fatalf("non-terminals = %v, want %v", gotN, wantN)
	}
	for i := range wantN {
		if gotN[i] != wantN[i] {
			t.Errorf("non-terminal %d = %q, want %q", i, gotN[i], wantN[i])
		}
	}

	wantT := []string{"op_suma", "op_mul", "num", "pari", "pard"}
	gotT := g.Terminals()
	if len(gotT) != len(wantT) {
		t.Fatalf("terminals = %v, want %v", gotT, wantT)
	}
	for i := range wantT {
		if gotT[i] != wantT[i] {
			t.Errorf("terminal %d = %q, want %q", i, gotT[i], wantT[i])
		}
	}
}

func TestProductionsOrder(t *testing.T) {
	g, err := Build([]Production{
		{LHS: "A", RHS: []string{"x"}},
		{LHS: "B", RHS: []string{"y"}},
		{LHS: "A", RHS: []string{"z"}},
	}, "A")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	all := g.Productions()
	want := []string{"A → x", "A → z", "B → y"}
	if len(all) != len(want) {
		t.Fatalf("got %d productions, want %d", len(all), len(want))
	}
	for i := range want {
		if all[i].String() != want[i] {
			t.Errorf("production %d = %q, want %q", i, all[i], want[i])
		}
	}
}

func TestEqual(t *testing.T) {
	build := func() *Grammar {
		g, err := Build([]Production{
			{LHS: "E", RHS: []string{"E", "op_suma", "T"}},
			{LHS: "E", RHS: []string{"T"}},
			{LHS: "T", RHS: []string{"num"}},
		}, "E")
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		return g
	}

	if !build().Equal(build()) {
		t.Error("identical grammars should be equal")
	}

	other, err := Build([]Production{
		{LHS: "E", RHS: []string{"T"}},
		{LHS: "T", RHS: []string{"num"}},
	}, "E")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if build().Equal(other) {
		t.Error("different grammars should not be equal")
	}
}
