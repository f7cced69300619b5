package handlers

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotes_WritesResponseVerbatim(t *testing.T) {
	dir := t.TempDir()
	response := "Thermodynamics\n\n1. First law: energy is conserved.\n2. Second law: entropy increases."
	client := &stubClient{response: response}

	err := Notes(context.Background(), testDeps(client), "Write study notes on thermodynamics", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "notes.txt"))
	require.NoError(t, err)
	assert.Equal(t, response, string(data))

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "thermodynamics")
}

func TestNotes_FenceOpeningResponseKeptVerbatim(t *testing.T) {
	dir := t.TempDir()
	response := "```\nNotes the model wrapped in a code fence.\n```"
	client := &stubClient{response: response}

	err := Notes(context.Background(), testDeps(client), "notes on fences", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "notes.txt"))
	require.NoError(t, err)
	assert.Equal(t, response, string(data))
}

func TestNotes_CreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "outputs")
	client := &stubClient{response: "notes"}

	err := Notes(context.Background(), testDeps(client), "notes on Go", dir)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "notes.txt"))
	assert.NoError(t, err)
}

func TestNotes_ServiceFailurePropagates(t *testing.T) {
	client := &stubClient{err: errors.New("service unavailable")}

	err := Notes(context.Background(), testDeps(client), "notes", t.TempDir())
	assert.ErrorContains(t, err, "service unavailable")
}

func TestQnA_WritesResponseVerbatim(t *testing.T) {
	dir := t.TempDir()
	response := "Q: What is Go?\nA: A programming language.\nQ: Who made it?\nA: Google."
	client := &stubClient{response: response}

	err := QnA(context.Background(), testDeps(client), "q and a on Go", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "QnA.txt"))
	require.NoError(t, err)
	assert.Equal(t, response, string(data))
}
