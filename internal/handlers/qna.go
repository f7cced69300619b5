package handlers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"docagent/internal/prompts"
)

// QnA requests ten Q:/A: pairs and writes the trimmed response
// verbatim to QnA.txt. The pair count and format are a prompt
// constraint, not an enforced invariant; the response is not validated.
func QnA(ctx context.Context, deps Deps, task, outDir string) error {
	if err := ensureDir(outDir); err != nil {
		return err
	}

	prompt := prompts.Format(prompts.MustGet(promptFile, "qna"), map[string]string{"Task": task})
	resp, err := deps.LLM.Generate(ctx, prompt)
	if err != nil {
		return fmt.Errorf("Q&A generation failed: %w", err)
	}

	path := filepath.Join(outDir, "QnA.txt")
	if err := os.WriteFile(path, []byte(strings.TrimSpace(resp)), 0644); err != nil {
		return &WriteError{Path: path, Cause: err}
	}
	deps.Printer.Successf("Q&A saved at %s", path)
	return nil
}
