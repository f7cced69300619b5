package handlers

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"

	"docagent/internal/llm"
	"docagent/internal/prompts"
)

// PDF requests a detailed report and writes report.pdf with the task as
// heading and one paragraph block per newline-delimited response line.
func PDF(ctx context.Context, deps Deps, task, outDir string) error {
	if err := ensureDir(outDir); err != nil {
		return err
	}

	prompt := prompts.Format(prompts.MustGet(promptFile, "report"), map[string]string{"Task": task})
	resp, err := deps.LLM.Generate(ctx, prompt)
	if err != nil {
		return fmt.Errorf("report generation failed: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; translate so generated text with typographic
	// punctuation does not come out garbled.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 8, tr(task), "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range strings.Split(llm.Normalize(resp), "\n") {
		pdf.MultiCell(0, 6, tr(line), "", "L", false)
		pdf.Ln(2)
	}

	path := filepath.Join(outDir, "report.pdf")
	if err := pdf.OutputFileAndClose(path); err != nil {
		return &WriteError{Path: path, Cause: err}
	}
	deps.Printer.Successf("PDF saved at %s", path)
	return nil
}
