package lexer

// TokenKind is the closed set of lexical categories the tokenizer
// produces. Adding a kind requires updating every consumer that
// switches on it.
type TokenKind int

const (
	// Literals + identifiers
	NUMBER TokenKind = iota
	IDENTIFIER

	// Brackets
	LPAREN
	RPAREN
	LCURLY
	RCURLY

	// Separators
	COMMA
	SEMICOLON
)

var tokenKindNames = [...]string{
	NUMBER:     "NUMBER",
	IDENTIFIER: "IDENTIFIER",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	LCURLY:     "LCURLY",
	RCURLY:     "RCURLY",
	COMMA:      "COMMA",
	SEMICOLON:  "SEMICOLON",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return "UNKNOWN"
	}
	return tokenKindNames[k]
}

// Token is an immutable classified fragment of the source text. Raw is
// a slice of the original source string, not a copy; Start and End are
// the half-open rune offsets it spans.
type Token struct {
	Kind  TokenKind
	Raw   string
	Start int
	End   int
}
