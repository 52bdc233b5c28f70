// Package lexer turns raw source text into the stream of tokens the
// parser consumes. Scanning is cursor-driven with single-character
// lookahead: whitespace is skipped, then the next rune picks one of
// three maximal-run scan routines. Produced tokens queue up in FIFO
// order and are drained through Peek/Next.
package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

type Tokenizer struct {
	source  string
	cursor  int // rune index of the next unread character
	offset  int // byte index matching cursor
	pending []Token
	head    int
}

// UnrecognizedCharError is the only way scanning can fail: a rune that
// is not whitespace, a digit, an identifier rune, or mapped
// punctuation. Offset is the rune index of the offending character.
type UnrecognizedCharError struct {
	Char   rune
	Offset int
}

func (e *UnrecognizedCharError) Error() string {
	return fmt.Sprintf("unrecognized character %q at offset %d", e.Char, e.Offset)
}

// New binds a tokenizer to one immutable source text. Empty input is
// legal and yields zero tokens.
func New(source string) *Tokenizer {
	return &Tokenizer{source: source}
}

// Peek returns the front of the pending queue without consuming it, or
// nil when the queue is empty.
func (t *Tokenizer) Peek() *Token {
	if t.head >= len(t.pending) {
		return nil
	}
	return &t.pending[t.head]
}

// Next removes and returns the front of the pending queue. The second
// return is false when the queue is empty; exhaustion is the only end
// signal, there is no sentinel token.
func (t *Tokenizer) Next() (Token, bool) {
	if t.head >= len(t.pending) {
		return Token{}, false
	}
	tok := t.pending[t.head]
	t.head++
	return tok, true
}

// Cursor reports the rune index of the next unread character. After a
// successful Process it equals the rune length of the source; after a
// failed one it equals the offset of the unrecognized character.
func (t *Tokenizer) Cursor() int {
	return t.cursor
}

// Process scans the entire remaining input, appending one token per
// iteration to the pending queue. It stops at the first unrecognized
// character, leaving the cursor on it; tokens produced before the
// failure stay available through Peek/Next.
func (t *Tokenizer) Process() error {
	for {
		t.scanWhile(unicode.IsSpace)
		r, ok := t.peekChar()
		if !ok {
			return nil
		}
		switch classify(r) {
		case classDigit:
			t.scanNumber()
		case classIdentStart:
			t.scanIdentifier()
		case classPunct:
			t.scanSpecial()
		default:
			return &UnrecognizedCharError{Char: r, Offset: t.cursor}
		}
	}
}

func (t *Tokenizer) scanNumber() {
	start, end, raw := t.scanWhile(unicode.IsDigit)
	t.append(NUMBER, raw, start, end)
}

func (t *Tokenizer) scanIdentifier() {
	start, end, raw := t.scanWhile(isIdentRune)
	t.append(IDENTIFIER, raw, start, end)
}

// scanSpecial consumes exactly one rune. The caller has already
// classified it as mapped punctuation.
func (t *Tokenizer) scanSpecial() {
	start, startByte := t.cursor, t.offset
	r, _ := t.eatChar()
	t.append(punctKinds[r], t.source[startByte:t.offset], start, t.cursor)
}

// scanWhile consumes the maximal run of runes satisfying pred and
// returns its rune span plus the matching slice of the source.
func (t *Tokenizer) scanWhile(pred func(rune) bool) (int, int, string) {
	start, startByte := t.cursor, t.offset
	for {
		r, ok := t.peekChar()
		if !ok || !pred(r) {
			break
		}
		t.eatChar()
	}
	return start, t.cursor, t.source[startByte:t.offset]
}

func (t *Tokenizer) append(kind TokenKind, raw string, start, end int) {
	t.pending = append(t.pending, Token{Kind: kind, Raw: raw, Start: start, End: end})
}

func (t *Tokenizer) peekChar() (rune, bool) {
	if t.offset >= len(t.source) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(t.source[t.offset:])
	return r, true
}

func (t *Tokenizer) eatChar() (rune, bool) {
	if t.offset >= len(t.source) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(t.source[t.offset:])
	t.offset += size
	t.cursor++
	return r, true
}
