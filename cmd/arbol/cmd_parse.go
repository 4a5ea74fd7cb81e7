package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sophia00000000/Arbol-de-sintactico-parser-tree/config"
	"github.com/sophia00000000/Arbol-de-sintactico-parser-tree/lex"
	"github.com/sophia00000000/Arbol-de-sintactico-parser-tree/parse"
	"github.com/sophia00000000/Arbol-de-sintactico-parser-tree/render"
)

func newParseCmd() *cobra.Command {
	var grammarPath string
	var outputFormat string
	var showTree bool

	cmd := &cobra.Command{
		Use:   "parse <expr>",
		Short: "Parse a single expression and print the verdict",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := config.Discover(".")
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("tree") {
				showTree = cfg.Tree
			}
			if outputFormat == "" {
				outputFormat = cfg.Format
			}

			g, _, err := loadGrammar(grammarPath)
			if err != nil {
				return err
			}

			expr := strings.Join(args, " ")
			tokens := lex.Tokenize(expr)
			p := parse.NewParser(g, tokens)

			// Rejection is a verdict, not a process failure: exit 0 either way.
			if !p.Recognize() {
				fmt.Println("NO ACEPTA")
				fmt.Printf("furthest position: %d\n", p.FurthestPosition())
				return nil
			}
			fmt.Println("ACEPTA")
			if !showTree {
				return nil
			}

			t, err := p.BuildTree()
			if err != nil {
				return err
			}

			var enc render.Encoder
			switch outputFormat {
			case "text":
				enc = render.NewTextEncoder(os.Stdout)
			case "json":
				enc = render.NewJSONEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			return enc.Encode(t)
		},
	}

	cmd.Flags().StringVarP(&grammarPath, "grammar", "g", "", "grammar file (default taken from config, then gra.txt)")
	cmd.Flags().BoolVarP(&showTree, "tree", "t", true, "print the derivation tree on acceptance")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "", "tree output format (text, json)")

	return cmd
}
