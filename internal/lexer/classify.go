package lexer

import "unicode"

// charClass partitions the input alphabet for the dispatch in Process.
type charClass int

const (
	classWhitespace charClass = iota
	classDigit
	classIdentStart
	classPunct
	classOther
)

var punctKinds = map[rune]TokenKind{
	'(': LPAREN,
	')': RPAREN,
	'{': LCURLY,
	'}': RCURLY,
	',': COMMA,
	';': SEMICOLON,
}

func classify(r rune) charClass {
	switch {
	case unicode.IsSpace(r):
		return classWhitespace
	case unicode.IsDigit(r):
		return classDigit
	case isIdentRune(r):
		return classIdentStart
	}
	if _, ok := punctKinds[r]; ok {
		return classPunct
	}
	return classOther
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}
