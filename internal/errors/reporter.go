// Package errors renders scan failures as caret-style diagnostics.
// The tokenizer itself only reports the offending rune and its offset;
// everything presentational (line/column lookup, source excerpt,
// coloring) lives here.
package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/N-Adkins/lang/internal/lexer"
)

// Reporter formats errors against one source file.
type Reporter struct {
	filename string
	source   string
	lines    []string
}

func NewReporter(filename, source string) *Reporter {
	return &Reporter{
		filename: filename,
		source:   source,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatScanError renders an unrecognized-character failure with the
// source line and a caret under the offending rune.
func (r *Reporter) FormatScanError(err *lexer.UnrecognizedCharError) string {
	line, column := Position(r.source, err.Offset)

	red := color.New(color.FgRed, color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	var result strings.Builder
	result.WriteString(fmt.Sprintf("%s: %s\n", red("error"), err.Error()))

	width := lineNumberWidth(line)
	indent := strings.Repeat(" ", width)

	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
		indent, dim("-->"), r.filename, line, column))
	result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

	var lineContent string
	if line-1 < len(r.lines) {
		lineContent = r.lines[line-1]
	}
	result.WriteString(fmt.Sprintf("%s %s %s\n",
		bold(fmt.Sprintf("%*d", width, line)), dim("│"), lineContent))

	marker := strings.Repeat(" ", column-1) + red("^")
	result.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("│"), marker))

	return result.String()
}

func lineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3 // minimum width for visual alignment
	}
	return width
}
