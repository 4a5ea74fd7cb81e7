package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/sophia00000000/Arbol-de-sintactico-parser-tree/config"
	"github.com/sophia00000000/Arbol-de-sintactico-parser-tree/grammar"
	"github.com/sophia00000000/Arbol-de-sintactico-parser-tree/lex"
	"github.com/sophia00000000/Arbol-de-sintactico-parser-tree/parse"
	"github.com/sophia00000000/Arbol-de-sintactico-parser-tree/render"
)

// The example grammar written to gra.txt on first run: the canonical
// left-recursive arithmetic grammar.
const defaultGrammar = `E → E op_suma T
E → T
T → T op_mul F
T → F
F → id
F → num
F → pari E pard
`

var replLog = commonlog.GetLogger("arbol.repl")

func newReplCmd() *cobra.Command {
	var grammarPath string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Read expressions interactively and print their derivation trees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(grammarPath)
		},
	}

	cmd.Flags().StringVarP(&grammarPath, "grammar", "g", "", "grammar file (default taken from config, then gra.txt)")

	return cmd
}

func runRepl(grammarPath string) error {
	g, path, err := loadGrammar(grammarPath)
	if err != nil {
		return err
	}

	fmt.Printf("Grammar (%s):\n%s\n", path, g)
	fmt.Printf("\nStart symbol: %s\n", g.Start())
	fmt.Printf("Non-terminals: %s\n", strings.Join(g.Nonterminals(), " "))
	fmt.Printf("Terminals: %s\n", strings.Join(g.Terminals(), " "))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nexpr> ")
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		parseLine(g, line, os.Stdout)
	}
	return scanner.Err()
}

// parseLine tokenizes one input line, decides membership and, on
// acceptance, prints the derivation tree.
func parseLine(g *grammar.Grammar, line string, w io.Writer) {
	id := uuid.NewString()
	tokens := lex.Tokenize(line)

	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.String()
	}
	fmt.Fprintf(w, "Tokens: [%s]\n", strings.Join(parts, " "))

	p := parse.NewParser(g, tokens)
	accepted := p.Recognize()
	replLog.Infof("parse %s: %q accepted=%v", id, line, accepted)

	if !accepted {
		fmt.Fprintln(w, "NO ACEPTA")
		fmt.Fprintf(w, "furthest position: %d\n", p.FurthestPosition())
		return
	}

	fmt.Fprintln(w, "ACEPTA")
	t, err := p.BuildTree()
	if err != nil {
		replLog.Errorf("parse %s: %v", id, err)
		fmt.Fprintln(w, err)
		return
	}
	if err := render.NewTextEncoder(w).Encode(t); err != nil {
		fmt.Fprintln(w, err)
		return
	}
	fmt.Fprintf(w, "Nodes: %d\n", t.Len())
}

// loadGrammar resolves the grammar path from the flag, the config file and
// the built-in default, materializing the example grammar when the default
// file does not exist yet.
func loadGrammar(path string) (*grammar.Grammar, string, error) {
	cfg, _, err := config.Discover(".")
	if err != nil {
		return nil, "", err
	}
	if path == "" {
		path = cfg.Grammar
	}
	if err := ensureDefaultGrammar(path); err != nil {
		return nil, "", err
	}
	g, err := grammar.ParseFile(path)
	if err != nil {
		return nil, "", err
	}
	return g, path, nil
}

// ensureDefaultGrammar writes the example grammar to the conventional file
// name when it is missing. Other paths are left alone so a typo'd --grammar
// fails loudly instead of being shadowed by a fresh example file.
func ensureDefaultGrammar(path string) error {
	if path != config.Default().Grammar {
		return nil
	}
	if _, err := os.Stat(path); err == nil || !os.IsNotExist(err) {
		return err
	}
	fmt.Printf("creating %s with the example grammar\n", path)
	return os.WriteFile(path, []byte(defaultGrammar), 0o644)
}
