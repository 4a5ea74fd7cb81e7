package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sophia00000000/Arbol-de-sintactico-parser-tree/tree"
)

func sampleTree(t *testing.T) *tree.Tree {
	t.Helper()
	b := tree.NewBuilder()
	root := b.Add("E", tree.Nonterminal)
	left := b.Add("T", tree.Nonterminal)
	leaf := b.Add("1", tree.Terminal)
	op := b.Add("+", tree.Terminal)
	b.Attach(root, left)
	b.Attach(left, leaf)
	b.Attach(root, op)
	tr, err := b.Build(root)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return tr
}

func TestTextEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewTextEncoder(&buf)
	enc.SetColor(false)
	if err := enc.Encode(sampleTree(t)); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	want := strings.Join([]string{
		"E",
		"├── T",
		"│   └── 1",
		"└── +",
		"",
	}, "\n")
	if buf.String() != want {
		t.Errorf("output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestJSONEncoder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(sampleTree(t)); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var decoded struct {
		Root  int `json:"root"`
		Nodes []struct {
			ID       int    `json:"id"`
			Label    string `json:"label"`
			Kind     string `json:"kind"`
			Children []int  `json:"children"`
		} `json:"nodes"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if decoded.Root != 0 {
		t.Errorf("root = %d, want 0", decoded.Root)
	}
	if len(decoded.Nodes) != 4 {
		t.Fatalf("got %d nodes, want 4", len(decoded.Nodes))
	}
	if decoded.Nodes[0].Label != "E" || decoded.Nodes[0].Kind != "nonterminal" {
		t.Errorf("node 0 = %s/%s", decoded.Nodes[0].Label, decoded.Nodes[0].Kind)
	}
	if decoded.Nodes[2].Label != "1" || decoded.Nodes[2].Kind != "terminal" {
		t.Errorf("node 2 = %s/%s", decoded.Nodes[2].Label, decoded.Nodes[2].Kind)
	}
	if got := decoded.Nodes[0].Children; len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("root children = %v, want [1 3]", got)
	}
}
