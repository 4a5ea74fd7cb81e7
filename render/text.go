package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/sophia00000000/Arbol-de-sintactico-parser-tree/tree"
)

var (
	nonterminalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("210")) // light coral
	terminalStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("117")) // light blue
)

// TextEncoder writes a tree as indented ASCII art with box-drawing
// connectors. Non-terminals and terminal leaves get distinct colors unless
// color is disabled.
type TextEncoder struct {
	w     io.Writer
	color bool
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w, color: true}
}

// SetColor toggles lipgloss styling; plain output is used for tests and
// non-terminal destinations.
func (e *TextEncoder) SetColor(on bool) {
	e.color = on
}

func (e *TextEncoder) Encode(t *tree.Tree) error {
	root := t.Root()
	if _, err := fmt.Fprintln(e.w, e.label(root)); err != nil {
		return err
	}
	return e.children(t, root, "")
}

func (e *TextEncoder) children(t *tree.Tree, n tree.Node, prefix string) error {
	for i, id := range n.Children {
		child, ok := t.Node(id)
		if !ok {
			return fmt.Errorf("render: unknown node id %d", id)
		}
		connector, extension := "├── ", "│   "
		if i == len(n.Children)-1 {
			connector, extension = "└── ", "    "
		}
		if _, err := fmt.Fprintln(e.w, prefix+connector+e.label(child)); err != nil {
			return err
		}
		if err := e.children(t, child, prefix+extension); err != nil {
			return err
		}
	}
	return nil
}

func (e *TextEncoder) label(n tree.Node) string {
	if !e.color {
		return n.Label
	}
	if n.Kind == tree.Terminal {
		return terminalStyle.Render(n.Label)
	}
	return nonterminalStyle.Render(n.Label)
}
