package repl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplTokenizesLine(t *testing.T) {
	in := strings.NewReader("ab 12 (cd)\n")
	var out strings.Builder

	Start(in, &out)

	got := out.String()
	assert.Contains(t, got, PROMPT)
	assert.Contains(t, got, `IDENTIFIER "ab"`)
	assert.Contains(t, got, `NUMBER "12"`)
	assert.Contains(t, got, `LPAREN "("`)
	assert.Contains(t, got, `IDENTIFIER "cd"`)
	assert.Contains(t, got, `RPAREN ")"`)
}

func TestReplReportsScanError(t *testing.T) {
	in := strings.NewReader("ab #\n")
	var out strings.Builder

	Start(in, &out)

	got := out.String()
	assert.Contains(t, got, `IDENTIFIER "ab"`)
	assert.Contains(t, got, "error: unrecognized character '#' at offset 3")
}
