package render

import (
	"encoding/json"
	"io"

	"github.com/sophia00000000/Arbol-de-sintactico-parser-tree/tree"
)

// JSONEncoder emits the tree's node table: ids, labels, kinds and child
// ids, with the root id alongside.
type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

type jsonTree struct {
	Root  int        `json:"root"`
	Nodes []jsonNode `json:"nodes"`
}

type jsonNode struct {
	ID       int    `json:"id"`
	Label    string `json:"label"`
	Kind     string `json:"kind"`
	Children []int  `json:"children,omitempty"`
}

func (e *JSONEncoder) Encode(t *tree.Tree) error {
	out := jsonTree{Root: t.Root().ID}
	for _, n := range t.Nodes() {
		out.Nodes = append(out.Nodes, jsonNode{
			ID:       n.ID,
			Label:    n.Label,
			Kind:     n.Kind.String(),
			Children: n.Children,
		})
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = e.w.Write(data)
	return err
}
