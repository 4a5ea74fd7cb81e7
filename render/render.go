// Package render draws derivation trees for terminal output and encodes
// them for tooling.
package render

import (
	"github.com/sophia00000000/Arbol-de-sintactico-parser-tree/tree"
)

// Encoder writes a derivation tree to some output medium.
type Encoder interface {
	Encode(t *tree.Tree) error
}
