package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	langerrors "github.com/N-Adkins/lang/internal/errors"
	"github.com/N-Adkins/lang/internal/lexer"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: lang <file.ln>")
		os.Exit(1)
	}

	startTime := time.Now()
	path := os.Args[1]

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	tokenizer := lexer.New(string(source))
	scanErr := tokenizer.Process()

	// Tokens scanned before a failure are still worth showing.
	count := 0
	for {
		tok, ok := tokenizer.Next()
		if !ok {
			break
		}
		fmt.Printf("%-10s %q [%d..%d)\n", tok.Kind, tok.Raw, tok.Start, tok.End)
		count++
	}

	duration := time.Since(startTime)

	if scanErr != nil {
		if unrecognized, ok := scanErr.(*lexer.UnrecognizedCharError); ok {
			reporter := langerrors.NewReporter(path, string(source))
			fmt.Print(reporter.FormatScanError(unrecognized))
		} else {
			fmt.Fprintf(os.Stderr, "scan failed: %v\n", scanErr)
		}
		color.Red("Tokenization failed after %s", formatDuration(duration))
		os.Exit(1)
	}

	color.Green("Produced %d tokens from %s in %s", count, path, formatDuration(duration))
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
