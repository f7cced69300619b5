package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinter_Successf(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.Successf("Saved %s", "outputs/notes.txt")

	assert.Contains(t, buf.String(), "Saved outputs/notes.txt")
}

func TestPrinter_Verbosef(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		want    bool
	}{
		{name: "Verbose on", verbose: true, want: true},
		{name: "Verbose off", verbose: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			p := NewPrinter(&buf, tt.verbose)

			p.Verbosef("task %s routed to %s", "abc", "notes")

			if tt.want {
				assert.Contains(t, buf.String(), "routed to notes")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestPrinter_PrintBanner(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.PrintBanner()

	out := buf.String()
	assert.Contains(t, out, "docagent")
	assert.Contains(t, out, "Word Docs, PDF, PPT.")
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "└")
}
