// Package observability provides formatted console output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

// Printer handles formatted output for the interactive session
type Printer struct {
	out     io.Writer
	verbose bool
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer, verbose bool) *Printer {
	return &Printer{out: out, verbose: verbose}
}

// Successf prints a confirmation line for a written artifact.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Successf(format string, args ...any) {
	fmt.Fprintf(p.out, "✅ "+format+"\n", args...)
}

// Warnf prints a non-fatal warning line.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Warnf(format string, args ...any) {
	fmt.Fprintf(p.out, "❌ "+format+"\n", args...)
}

// Verbosef prints a detail line only when verbose mode is on.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Verbosef(format string, args ...any) {
	if !p.verbose {
		return
	}
	fmt.Fprintf(p.out, format+"\n", args...)
}

// PrintBanner prints the startup box listing supported output formats.
func (p *Printer) PrintBanner() {
	p.printBox("docagent", strings.Join([]string{
		"Turns a task description into generated files.",
		"",
		"Supported: Articles, Notes, Q&A, Excel,",
		"Word Docs, PDF, PPT.",
	}, "\n"))
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}
