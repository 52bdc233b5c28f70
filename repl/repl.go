// Package repl is a line-at-a-time harness around the tokenizer: each
// line is scanned and its token stream printed back.
package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/N-Adkins/lang/internal/lexer"
)

const PROMPT = ">> "

func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, PROMPT)
		scanned := scanner.Scan()
		if !scanned {
			return
		}

		line := scanner.Text()
		tokenizer := lexer.New(line)
		err := tokenizer.Process()

		for {
			tok, ok := tokenizer.Next()
			if !ok {
				break
			}
			fmt.Fprintf(out, "%s %q\n", tok.Kind, tok.Raw)
		}

		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
}
