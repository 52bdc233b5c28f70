package lexer

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenize(t *testing.T, input string) []Token {
	t.Helper()
	tk := New(input)
	require.NoError(t, tk.Process())

	var tokens []Token
	for {
		tok, ok := tk.Next()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func TestEmptyInput(t *testing.T) {
	tk := New("")
	require.NoError(t, tk.Process())
	assert.Nil(t, tk.Peek())

	_, ok := tk.Next()
	assert.False(t, ok)
	assert.Equal(t, 0, tk.Cursor())
}

func TestWhitespaceOnlyInput(t *testing.T) {
	inputs := []string{" ", "   ", "\t", "\n\n", " \t\r\n ", " "}
	for _, input := range inputs {
		tokens := tokenize(t, input)
		assert.Empty(t, tokens, "input %q", input)
	}
}

func TestNumbers(t *testing.T) {
	tokens := tokenize(t, "42 0 12345")

	require.Len(t, tokens, 3)
	expected := []string{"42", "0", "12345"}
	for i, raw := range expected {
		assert.Equal(t, NUMBER, tokens[i].Kind)
		assert.Equal(t, raw, tokens[i].Raw)
	}
}

func TestMaximalDigitRunIsOneToken(t *testing.T) {
	tokens := tokenize(t, "1234567890")

	require.Len(t, tokens, 1)
	assert.Equal(t, NUMBER, tokens[0].Kind)
	assert.Equal(t, "1234567890", tokens[0].Raw)
	assert.Equal(t, 0, tokens[0].Start)
	assert.Equal(t, 10, tokens[0].End)
}

// Identifier runs must come out tagged IDENTIFIER, not NUMBER.
func TestIdentifierKind(t *testing.T) {
	tokens := tokenize(t, "abc _x foo_bar _")

	require.Len(t, tokens, 4)
	expected := []string{"abc", "_x", "foo_bar", "_"}
	for i, raw := range expected {
		assert.Equal(t, IDENTIFIER, tokens[i].Kind, "token %d", i)
		assert.Equal(t, raw, tokens[i].Raw)
	}
}

// Digits end an identifier run: identifier runes are letters and
// underscore only.
func TestIdentifierStopsAtDigit(t *testing.T) {
	tokens := tokenize(t, "ab1cd")

	require.Len(t, tokens, 3)
	assert.Equal(t, IDENTIFIER, tokens[0].Kind)
	assert.Equal(t, "ab", tokens[0].Raw)
	assert.Equal(t, NUMBER, tokens[1].Kind)
	assert.Equal(t, "1", tokens[1].Raw)
	assert.Equal(t, IDENTIFIER, tokens[2].Kind)
	assert.Equal(t, "cd", tokens[2].Raw)
}

func TestPunctuation(t *testing.T) {
	tokens := tokenize(t, "( ) { } , ;")

	expected := []TokenKind{LPAREN, RPAREN, LCURLY, RCURLY, COMMA, SEMICOLON}
	expectedRaw := []string{"(", ")", "{", "}", ",", ";"}

	require.Len(t, tokens, len(expected))
	for i, kind := range expected {
		assert.Equal(t, kind, tokens[i].Kind)
		assert.Equal(t, expectedRaw[i], tokens[i].Raw)
	}
}

func TestMixedInput(t *testing.T) {
	tokens := tokenize(t, "ab 12 (cd)")

	expected := []struct {
		kind TokenKind
		raw  string
	}{
		{IDENTIFIER, "ab"},
		{NUMBER, "12"},
		{LPAREN, "("},
		{IDENTIFIER, "cd"},
		{RPAREN, ")"},
	}

	require.Len(t, tokens, len(expected))
	for i, exp := range expected {
		assert.Equal(t, exp.kind, tokens[i].Kind, "token %d", i)
		assert.Equal(t, exp.raw, tokens[i].Raw, "token %d", i)
	}
}

func TestNoWhitespaceBetweenTokens(t *testing.T) {
	tokens := tokenize(t, "foo(1,2);")

	expected := []TokenKind{IDENTIFIER, LPAREN, NUMBER, COMMA, NUMBER, RPAREN, SEMICOLON}
	require.Len(t, tokens, len(expected))
	for i, kind := range expected {
		assert.Equal(t, kind, tokens[i].Kind, "token %d", i)
	}
}

func TestCursorAfterProcess(t *testing.T) {
	input := "ab 12 (cd)  "
	tk := New(input)
	require.NoError(t, tk.Process())
	assert.Equal(t, utf8.RuneCountInString(input), tk.Cursor())
}

func TestUnicodeOffsets(t *testing.T) {
	// Two-byte runes; spans count scalar values, not bytes.
	tokens := tokenize(t, "αβ 42")

	require.Len(t, tokens, 2)
	assert.Equal(t, IDENTIFIER, tokens[0].Kind)
	assert.Equal(t, "αβ", tokens[0].Raw)
	assert.Equal(t, 0, tokens[0].Start)
	assert.Equal(t, 2, tokens[0].End)

	assert.Equal(t, NUMBER, tokens[1].Kind)
	assert.Equal(t, "42", tokens[1].Raw)
	assert.Equal(t, 3, tokens[1].Start)
	assert.Equal(t, 5, tokens[1].End)
}

func TestPeekDoesNotConsume(t *testing.T) {
	tk := New("ab 12")
	require.NoError(t, tk.Process())

	first := tk.Peek()
	require.NotNil(t, first)
	for i := 0; i < 5; i++ {
		again := tk.Peek()
		require.NotNil(t, again)
		assert.Equal(t, *first, *again)
	}

	tok, ok := tk.Next()
	require.True(t, ok)
	assert.Equal(t, *first, tok)

	next := tk.Peek()
	require.NotNil(t, next)
	assert.Equal(t, "12", next.Raw)
}

func TestNextDrainsInOrder(t *testing.T) {
	tk := New("a b c")
	require.NoError(t, tk.Process())

	var raws []string
	for {
		tok, ok := tk.Next()
		if !ok {
			break
		}
		raws = append(raws, tok.Raw)
	}
	assert.Equal(t, []string{"a", "b", "c"}, raws)

	// Exhausted queue keeps yielding nothing.
	_, ok := tk.Next()
	assert.False(t, ok)
	assert.Nil(t, tk.Peek())
}

func TestUnrecognizedCharacter(t *testing.T) {
	tk := New("ab #")
	err := tk.Process()

	require.Error(t, err)
	var scanErr *UnrecognizedCharError
	require.ErrorAs(t, err, &scanErr)
	assert.Equal(t, '#', scanErr.Char)
	assert.Equal(t, 3, scanErr.Offset)

	// Cursor stops on the offending rune, which is never consumed.
	assert.Equal(t, 3, tk.Cursor())

	// Tokens produced before the failure stay retrievable.
	tok, ok := tk.Next()
	require.True(t, ok)
	assert.Equal(t, IDENTIFIER, tok.Kind)
	assert.Equal(t, "ab", tok.Raw)

	_, ok = tk.Next()
	assert.False(t, ok)
}

func TestUnrecognizedCharacterMessage(t *testing.T) {
	err := (&UnrecognizedCharError{Char: '#', Offset: 7}).Error()
	assert.Equal(t, `unrecognized character '#' at offset 7`, err)
}

// Concatenating token spans with the skipped whitespace reinserted
// must reproduce the source exactly: every rune is covered once.
func TestSpanCoverage(t *testing.T) {
	inputs := []string{
		"ab 12 (cd)",
		"  foo ( bar , baz ) { 1 ; 2 }  ",
		"αβ\t42\nγ_δ",
		"",
	}

	for _, input := range inputs {
		tk := New(input)
		require.NoError(t, tk.Process(), "input %q", input)

		runes := []rune(input)
		var sb strings.Builder
		pos := 0
		for {
			tok, ok := tk.Next()
			if !ok {
				break
			}
			require.LessOrEqual(t, pos, tok.Start, "input %q", input)
			for _, r := range runes[pos:tok.Start] {
				assert.True(t, unicode.IsSpace(r), "gap rune %q in %q", r, input)
				sb.WriteRune(r)
			}
			assert.Equal(t, string(runes[tok.Start:tok.End]), tok.Raw, "input %q", input)
			sb.WriteString(tok.Raw)
			pos = tok.End
		}
		sb.WriteString(string(runes[pos:]))
		assert.Equal(t, input, sb.String())
	}
}

func TestTokenKindString(t *testing.T) {
	assert.Equal(t, "NUMBER", NUMBER.String())
	assert.Equal(t, "IDENTIFIER", IDENTIFIER.String())
	assert.Equal(t, "SEMICOLON", SEMICOLON.String())
	assert.Equal(t, "UNKNOWN", TokenKind(99).String())
}

func TestClassify(t *testing.T) {
	cases := []struct {
		r    rune
		want charClass
	}{
		{' ', classWhitespace},
		{'\n', classWhitespace},
		{'7', classDigit},
		{'a', classIdentStart},
		{'Z', classIdentStart},
		{'_', classIdentStart},
		{'λ', classIdentStart},
		{'(', classPunct},
		{';', classPunct},
		{'#', classOther},
		{'+', classOther},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, classify(c.r), "rune %q", c.r)
	}
}
