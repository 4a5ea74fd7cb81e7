// Package lsp provides a small stdio language server for grammar files: it
// re-parses a document on every change and publishes the load error, if
// any, as a diagnostic.
package lsp

import (
	"strings"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/sophia00000000/Arbol-de-sintactico-parser-tree/grammar"
)

const lsName = "arbol"

var log = commonlog.GetLogger("arbol.lsp")

// Server serves grammar diagnostics over stdio.
type Server struct {
	handler protocol.Handler
	server  *server.Server
	version string
}

// NewServer wires the protocol handlers.
func NewServer(version string) *Server {
	s := &Server{
		version: version,
	}

	s.handler = protocol.Handler{
		Initialize:            s.initialize,
		Initialized:           s.initialized,
		Shutdown:              s.shutdown,
		SetTrace:              s.setTrace,
		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
		TextDocumentDidClose:  s.textDocumentDidClose,
	}

	s.server = server.NewServer(&s.handler, lsName, false)

	return s
}

// RunStdio blocks serving the LSP session on stdin/stdout.
func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.publish(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		s.publish(ctx, params.TextDocument.URI, whole.Text)
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	// Clear diagnostics for the closed document.
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (s *Server) publish(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	diagnostics := []protocol.Diagnostic{}
	if problem := Check(text); problem != nil {
		log.Infof("diagnostic for %s: line %d: %s", uri, problem.Line, problem.Msg)
		severity := protocol.DiagnosticSeverityError
		source := lsName
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    lineRange(text, problem.Line),
			Severity: &severity,
			Source:   &source,
			Message:  problem.Msg,
		})
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

// Problem is one grammar load failure located by source line.
type Problem struct {
	Line int // 1-based; 0 when the failure has no line
	Msg  string
}

// Check loads the grammar text and reports the first failure, or nil when
// the text is a valid grammar.
func Check(text string) *Problem {
	_, err := grammar.Parse("", strings.NewReader(text))
	if err == nil {
		return nil
	}
	if synErr, ok := err.(*grammar.SyntaxError); ok {
		return &Problem{Line: synErr.Line, Msg: synErr.Msg}
	}
	return &Problem{Msg: err.Error()}
}

// lineRange spans the whole 1-based source line, or the document start when
// the problem has no line.
func lineRange(text string, line int) protocol.Range {
	if line < 1 {
		return protocol.Range{}
	}
	lines := strings.Split(text, "\n")
	length := 0
	if line <= len(lines) {
		length = len(lines[line-1])
	}
	return protocol.Range{
		Start: protocol.Position{Line: protocol.UInteger(line - 1)},
		End:   protocol.Position{Line: protocol.UInteger(line - 1), Character: protocol.UInteger(length)},
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
