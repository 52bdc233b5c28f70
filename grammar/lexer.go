// Package grammar holds a declarative lexer definition for the
// language, kept in lockstep with the hand-written tokenizer in
// internal/lexer. The hand tokenizer is the production scanner; this
// definition documents the token alphabet as regular expressions and
// backs the differential tests that pin the two against each other.
package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var LangLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Identifiers: letters and underscore only, digits excluded
	{Name: "Ident", Pattern: `[\p{L}_]+`},

	// Integer literals: plain decimal digit runs
	{Name: "Number", Pattern: `\p{Nd}+`},

	// Punctuation
	{Name: "Punct", Pattern: `[(){},;]`},

	// Whitespace
	{Name: "Whitespace", Pattern: `\s+`},
})
