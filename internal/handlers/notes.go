package handlers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"docagent/internal/prompts"
)

// Notes requests structured study notes and writes the trimmed
// response verbatim to notes.txt.
func Notes(ctx context.Context, deps Deps, task, outDir string) error {
	if err := ensureDir(outDir); err != nil {
		return err
	}

	prompt := prompts.Format(prompts.MustGet(promptFile, "notes"), map[string]string{"Task": task})
	resp, err := deps.LLM.Generate(ctx, prompt)
	if err != nil {
		return fmt.Errorf("notes generation failed: %w", err)
	}

	path := filepath.Join(outDir, "notes.txt")
	if err := os.WriteFile(path, []byte(strings.TrimSpace(resp)), 0644); err != nil {
		return &WriteError{Path: path, Cause: err}
	}
	deps.Printer.Successf("Notes saved at %s", path)
	return nil
}
