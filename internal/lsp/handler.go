package lsp

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/N-Adkins/lang/internal/lexer"
)

// Define the set of supported semantic token types (as required by the LSP spec)
var SemanticTokenTypes = []string{
	"variable",
	"number",
	"operator",
}

// Define the set of supported semantic token modifiers
var SemanticTokenModifiers = []string{
	"declaration",
}

// LangHandler implements the LSP server handlers for the language.
// There is no parser stage yet: diagnostics and semantic tokens both
// come straight from the tokenizer.
type LangHandler struct {
	mu      sync.RWMutex
	content map[string]string
	tokens  map[string][]lexer.Token
}

// NewLangHandler creates and returns a new LangHandler instance
func NewLangHandler() *LangHandler {
	return &LangHandler{
		content: make(map[string]string),
		tokens:  make(map[string][]lexer.Token),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *LangHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true), // notify on open/close events
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true), // support full-document semantic token requests
			},
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *LangHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("Lang LSP Initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *LangHandler) Shutdown(ctx *glsp.Context) error {
	log.Println("Lang LSP Shutdown")
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *LangHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("Opened file: %s\n", params.TextDocument.URI)

	diagnostics, err := h.updateTokens(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to tokenize: %w", err)
	}

	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *LangHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("Closed file: %s\n", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, path)
	delete(h.tokens, path)

	return nil
}

// TextDocumentDidChange handles file change notifications from the editor
func (h *LangHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("Changed file: %s\n", params.TextDocument.URI)

	diagnostics, err := h.updateTokens(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to tokenize: %w", err)
	}

	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *LangHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	log.Println("TextDocumentSemanticTokensFull called for:", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.RLock()
	source, ok := h.content[path]
	tokens := h.tokens[path]
	h.mu.RUnlock()

	if !ok {
		if _, err := h.updateTokens(params.TextDocument.URI); err != nil {
			return nil, err
		}
		h.mu.RLock()
		source = h.content[path]
		tokens = h.tokens[path]
		h.mu.RUnlock()
	}

	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(collectSemanticTokens(source, tokens)),
	}, nil
}

// updateTokens re-reads and re-tokenizes a document, caching the token
// stream. A scan failure is not an error here: whatever tokens were
// produced before the bad character still get cached so highlighting
// keeps working, and the failure comes back as a diagnostic.
func (h *LangHandler) updateTokens(rawURI protocol.DocumentUri) ([]protocol.Diagnostic, error) {
	path, err := uriToPath(rawURI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	source := string(content)
	tokenizer := lexer.New(source)
	scanErr := tokenizer.Process()

	var tokens []lexer.Token
	for {
		tok, ok := tokenizer.Next()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}

	h.mu.Lock()
	h.content[path] = source
	h.tokens[path] = tokens
	h.mu.Unlock()

	if scanErr != nil {
		if unrecognized, ok := scanErr.(*lexer.UnrecognizedCharError); ok {
			return ConvertScanError(source, unrecognized), nil
		}
		return nil, scanErr
	}

	return nil, nil
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) → C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	// Normalize to platform-specific separators
	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	log.Printf("Sending %d diagnostics for %s\n", len(diagnostics), uri)

	// An empty list clears previously published diagnostics.
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
