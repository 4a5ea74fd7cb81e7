package main

import (
	"github.com/spf13/cobra"

	"github.com/sophia00000000/Arbol-de-sintactico-parser-tree/lsp"
)

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Run a language server for grammar files on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return lsp.NewServer(version).RunStdio()
		},
	}
}
