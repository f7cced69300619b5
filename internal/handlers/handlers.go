// Package handlers implements the seven output-format handlers. Each
// handler takes a task description and an output directory, issues at
// most one generation request, parses the response by its format's
// convention, and writes the result to disk.
package handlers

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"docagent/internal/llm"
	"docagent/internal/observability"
)

// promptFile is the embedded template file all handlers draw from.
const promptFile = "generation.json"

// Handler produces one output format from a task.
type Handler func(ctx context.Context, deps Deps, task, outDir string) error

// Deps carries the collaborators handlers need. The LLM client is
// injected so tests can substitute a stub.
type Deps struct {
	LLM     llm.Client
	Printer *observability.Printer
	Rand    *rand.Rand
}

var defaultRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// rng returns the injected random source, or a process-wide default.
func (d Deps) rng() *rand.Rand {
	if d.Rand != nil {
		return d.Rand
	}
	return defaultRand
}

// ensureDir creates the output directory, intermediate directories
// included. Called by every handler before writing.
func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}
