package handlers

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/gomutex/godocx"

	"docagent/internal/llm"
	"docagent/internal/prompts"
)

// WordDoc requests a structured document and writes document.docx with
// the task as a level-1 heading followed by one paragraph holding the
// full response.
func WordDoc(ctx context.Context, deps Deps, task, outDir string) error {
	if err := ensureDir(outDir); err != nil {
		return err
	}

	prompt := prompts.Format(prompts.MustGet(promptFile, "document"), map[string]string{"Task": task})
	resp, err := deps.LLM.Generate(ctx, prompt)
	if err != nil {
		return fmt.Errorf("document generation failed: %w", err)
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	if _, err := doc.AddHeading(task, 1); err != nil {
		return fmt.Errorf("failed to add heading: %w", err)
	}
	doc.AddParagraph(llm.Normalize(resp))

	path := filepath.Join(outDir, "document.docx")
	if err := doc.SaveTo(path); err != nil {
		return &WriteError{Path: path, Cause: err}
	}
	deps.Printer.Successf("Word document saved at %s", path)
	return nil
}
