package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/N-Adkins/lang/internal/lsp"
)

const lsName = "lang" // Name identifier for the language server

var (
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	langHandler := lsp.NewLangHandler()

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:                     langHandler.Initialize,
		Initialized:                    langHandler.Initialized,
		Shutdown:                       langHandler.Shutdown,
		TextDocumentDidOpen:            langHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           langHandler.TextDocumentDidClose,
		TextDocumentDidChange:          langHandler.TextDocumentDidChange,
		TextDocumentSemanticTokensFull: langHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting Lang LSP server...")

	// Serve over standard input/output, the transport editors use for LSP
	err := s.RunStdio()
	if err != nil {
		log.Println("Error starting Lang LSP server:", err)
		os.Exit(1)
	}
}
