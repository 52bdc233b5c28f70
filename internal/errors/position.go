package errors

// Position converts a rune offset into a 1-based line/column pair. The
// tokenizer tracks offsets only; line/column exist purely for human
// and editor-facing diagnostics, so they are derived here on demand.
func Position(source string, offset int) (line, column int) {
	line, column = 1, 1
	i := 0
	for _, r := range source {
		if i >= offset {
			break
		}
		if r == '\n' {
			line++
			column = 1
		} else {
			column++
		}
		i++
	}
	return line, column
}
