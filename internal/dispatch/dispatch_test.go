package dispatch

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docagent/internal/handlers"
	"docagent/internal/observability"
)

// stubClient is a canned llm.Client for dispatch tests.
type stubClient struct {
	response string
}

func (s *stubClient) Generate(_ context.Context, _ string) (string, error) {
	return s.response, nil
}

func (s *stubClient) Close() error { return nil }

// firstMatch returns the name of the first route matching the task.
func firstMatch(task string) string {
	lower := strings.ToLower(task)
	for _, route := range Routes() {
		if route.Match(lower) {
			return route.Name
		}
	}
	return ""
}

func TestRouting(t *testing.T) {
	tests := []struct {
		name     string
		task     string
		expected string
	}{
		{
			name:     "Article keyword",
			task:     "Write an article on microservices",
			expected: "articles",
		},
		{
			name:     "Note keyword",
			task:     "study notes below",
			expected: "notes",
		},
		{
			name:     "Article wins over note",
			task:     "article with notes",
			expected: "articles",
		},
		{
			// "q" and "a" are tested as independent substrings, so this
			// matches even though "excel" and "pdf" are absent.
			name:     "Independent q and a letters",
			task:     "Generate 5 question and answer pairs",
			expected: "qna",
		},
		{
			// The q+a rule shadows the spreadsheet rule whenever both
			// letters appear anywhere in the task.
			name:     "QnA shadows spreadsheet",
			task:     "quarterly spreadsheet data",
			expected: "qna",
		},
		{
			name:     "Spreadsheet without q",
			task:     "excel sheet for 7 self-employed persons",
			expected: "spreadsheet",
		},
		{
			// No "a" or "q" anywhere, so the shadowing rule stays quiet.
			name:     "Word document",
			task:     "word doc on entropy",
			expected: "document",
		},
		{
			name:     "PDF report",
			task:     "pdf of the report",
			expected: "report",
		},
		{
			name:     "Slides",
			task:     "six slides then stop",
			expected: "slides",
		},
		{
			name:     "Unsupported",
			task:     "💡",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, firstMatch(tt.task))
		})
	}
}

func TestDispatch_EndToEndNotes(t *testing.T) {
	dir := t.TempDir()
	deps := handlers.Deps{
		LLM:     &stubClient{response: "Entropy always increases."},
		Printer: observability.NewPrinter(io.Discard, false),
	}

	// "Write study notes on thermodynamics" contains "note" before the
	// q+a rule is consulted.
	err := Dispatch(context.Background(), deps, "Write study notes on thermodynamics", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "notes.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Entropy always increases.", string(data))
}

func TestDispatch_UnsupportedTask(t *testing.T) {
	deps := handlers.Deps{Printer: observability.NewPrinter(io.Discard, false)}

	err := Dispatch(context.Background(), deps, "░░░", t.TempDir())
	require.Error(t, err)
	assert.True(t, IsUnsupported(err))

	var ute *UnsupportedTaskError
	require.ErrorAs(t, err, &ute)
	assert.Equal(t, "░░░", ute.Task)
}

func TestIsUnsupported_OtherErrors(t *testing.T) {
	assert.False(t, IsUnsupported(assert.AnError))
	assert.False(t, IsUnsupported(nil))
}
