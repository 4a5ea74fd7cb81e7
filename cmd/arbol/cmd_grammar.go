package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/ebnf"

	"github.com/sophia00000000/Arbol-de-sintactico-parser-tree/grammar"
)

func newGrammarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "grammar",
		Short:         "Grammar file tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newGrammarCheckCmd())
	cmd.AddCommand(newGrammarShowCmd())

	return cmd
}

func newGrammarCheckCmd() *cobra.Command {
	var fromEBNF bool
	var startSymbol string

	cmd := &cobra.Command{
		Use:           "check <file>",
		Short:         "Load a grammar file and report errors",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := loadGrammarFile(args[0], fromEBNF, startSymbol)
			if err != nil {
				fmt.Println(err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromEBNF, "ebnf", false, "treat the file as a restricted EBNF grammar")
	cmd.Flags().StringVar(&startSymbol, "start", "", "start symbol for EBNF grammars (default: first production)")

	return cmd
}

func newGrammarShowCmd() *cobra.Command {
	var fromEBNF bool
	var startSymbol string

	cmd := &cobra.Command{
		Use:           "show <file>",
		Short:         "Print a grammar's productions, start symbol and symbol sets",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGrammarFile(args[0], fromEBNF, startSymbol)
			if err != nil {
				fmt.Println(err)
				return err
			}
			fmt.Println(g)
			fmt.Printf("\nStart symbol: %s\n", g.Start())
			fmt.Printf("Non-terminals: %s\n", strings.Join(g.Nonterminals(), " "))
			fmt.Printf("Terminals: %s\n", strings.Join(g.Terminals(), " "))
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromEBNF, "ebnf", false, "treat the file as a restricted EBNF grammar")
	cmd.Flags().StringVar(&startSymbol, "start", "", "start symbol for EBNF grammars (default: first production)")

	return cmd
}

func loadGrammarFile(path string, fromEBNF bool, start string) (*grammar.Grammar, error) {
	if !fromEBNF {
		return grammar.ParseFile(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()
	src, err := ebnf.Parse(path, f)
	if err != nil {
		return nil, fmt.Errorf("parse ebnf: %w", err)
	}
	return grammar.FromEBNF(src, start)
}
