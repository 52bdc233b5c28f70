package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/N-Adkins/lang/internal/errors"
	"github.com/N-Adkins/lang/internal/lexer"
)

// ConvertScanError transforms the tokenizer's unrecognized-character
// failure into an LSP diagnostic covering the offending rune.
func ConvertScanError(source string, scanErr *lexer.UnrecognizedCharError) []protocol.Diagnostic {
	if scanErr == nil {
		return nil
	}

	line, column := errors.Position(source, scanErr.Offset)

	return []protocol.Diagnostic{{
		Range: protocol.Range{
			Start: protocol.Position{
				Line:      uint32(line - 1),   // Convert to 0-based indexing
				Character: uint32(column - 1), // Convert to 0-based indexing
			},
			End: protocol.Position{
				Line:      uint32(line - 1),
				Character: uint32(column), // one rune wide
			},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("lang-lexer"),
		Message:  scanErr.Error(),
	}}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
