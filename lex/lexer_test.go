package lex

import "testing"

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		kinds []string
		lits  []string
	}{
		{"3", []string{KindNum}, []string{"3"}},
		{"42 7", []string{KindNum, KindNum}, []string{"42", "7"}},
		{"1+2", []string{KindNum, KindOpSuma, KindNum}, []string{"1", "+", "2"}},
		{"2*3+4", []string{KindNum, KindOpMul, KindNum, KindOpSuma, KindNum}, []string{"2", "*", "3", "+", "4"}},
		{"(1+2)*3", []string{KindParI, KindNum, KindOpSuma, KindNum, KindParD, KindOpMul, KindNum}, []string{"(", "1", "+", "2", ")", "*", "3"}},
		{"a-b", []string{KindID, KindOpSuma, KindID}, []string{"a", "-", "b"}},
		{"x/y", []string{KindID, KindOpMul, KindID}, []string{"x", "/", "y"}},
		{"foo_1 + 9", []string{KindID, KindOpSuma, KindNum}, []string{"foo_1", "+", "9"}},
		{"", nil, nil},
		{"   ", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := Tokenize(tt.input)
			if len(tokens) != len(tt.kinds) {
				t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(tt.kinds), tokens)
			}
			for i, tok := range tokens {
				if tok.Kind != tt.kinds[i] {
					t.Errorf("token %d kind = %q, want %q", i, tok.Kind, tt.kinds[i])
				}
				if tok.Literal != tt.lits[i] {
					t.Errorf("token %d literal = %q, want %q", i, tok.Literal, tt.lits[i])
				}
			}
		})
	}
}

func TestTokenizeSkipsUnknownRunes(t *testing.T) {
	tests := []struct {
		input string
		kinds []string
	}{
		{"3 @ 4", []string{KindNum, KindNum}},
		{"¿1+2?", []string{KindNum, KindOpSuma, KindNum}},
		{"%&$", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := Tokenize(tt.input)
			if len(tokens) != len(tt.kinds) {
				t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(tt.kinds), tokens)
			}
			for i, tok := range tokens {
				if tok.Kind != tt.kinds[i] {
					t.Errorf("token %d kind = %q, want %q", i, tok.Kind, tt.kinds[i])
				}
			}
		})
	}
}

func TestMinusAndSlashFold(t *testing.T) {
	// '-' shares op_suma with '+', '/' shares op_mul with '*'.
	tokens := Tokenize("1-2/3")
	want := []string{KindNum, KindOpSuma, KindNum, KindOpMul, KindNum}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, tok := range tokens {
		if tok.Kind != want[i] {
			t.Errorf("token %d kind = %q, want %q", i, tok.Kind, want[i])
		}
	}
}

func TestPositions(t *testing.T) {
	tokens := Tokenize("12 + x")
	if len(tokens) != 3 {
		t.Fatalf("got %d tokens, want 3", len(tokens))
	}
	if tokens[0].Position.Offset != 0 {
		t.Errorf("first token offset = %d, want 0", tokens[0].Position.Offset)
	}
	if tokens[1].Position.Offset != 3 {
		t.Errorf("second token offset = %d, want 3", tokens[1].Position.Offset)
	}
	if tokens[2].Position.Offset != 5 {
		t.Errorf("third token offset = %d, want 5", tokens[2].Position.Offset)
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: KindNum, Literal: "42"}
	if got := tok.String(); got != `(num, "42")` {
		t.Errorf("String() = %q", got)
	}
}
