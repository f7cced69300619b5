package handlers

import (
	"context"
	"io"
	"math/rand"

	"docagent/internal/llm"
	"docagent/internal/observability"
)

// stubClient is a canned llm.Client for handler tests.
type stubClient struct {
	response string
	err      error
	prompts  []string
}

func (s *stubClient) Generate(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubClient) Close() error { return nil }

func testDeps(c llm.Client) Deps {
	return Deps{
		LLM:     c,
		Printer: observability.NewPrinter(io.Discard, false),
		Rand:    rand.New(rand.NewSource(1)),
	}
}
