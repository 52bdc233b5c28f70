package lsp

import (
	"github.com/N-Adkins/lang/internal/errors"
	"github.com/N-Adkins/lang/internal/lexer"
)

// SemanticToken represents a single LSP semantic token entry.
// Line and StartChar are 0-based positions; TokenType is an index into
// SemanticTokenTypes and TokenModifiers a bitmask over
// SemanticTokenModifiers.
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

// collectSemanticTokens maps the lexical token stream straight onto
// semantic tokens. There is no syntax tree yet, so the mapping is by
// token kind alone: numbers, identifiers, and punctuation.
func collectSemanticTokens(source string, tokens []lexer.Token) []SemanticToken {
	var out []SemanticToken

	for _, tok := range tokens {
		line, column := errors.Position(source, tok.Start)
		out = append(out, SemanticToken{
			Line:      uint32(line - 1),   // LSP uses 0-based line numbers
			StartChar: uint32(column - 1), // LSP uses 0-based column numbers
			Length:    uint32(tok.End - tok.Start),
			TokenType: indexOf(semanticTypeFor(tok.Kind), SemanticTokenTypes),
		})
	}

	return out
}

func semanticTypeFor(kind lexer.TokenKind) string {
	switch kind {
	case lexer.NUMBER:
		return "number"
	case lexer.IDENTIFIER:
		return "variable"
	default:
		return "operator"
	}
}

// encodeSemanticTokens packs tokens into the LSP wire format using
// delta-line, delta-start compression.
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	var data []uint32
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return data
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
