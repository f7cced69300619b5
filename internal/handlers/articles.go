package handlers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"docagent/internal/naming"
	"docagent/internal/prompts"
)

// articlePattern matches one delimited article group. Non-greedy so
// multiple groups in one response are split correctly.
var articlePattern = regexp.MustCompile(`(?s)ARTICLE START\n(.*?)\n(.*?)\nARTICLE END`)

// Article is one parsed unit of the articles response.
type Article struct {
	Title   string
	Content string
}

// ParseArticles extracts all delimited article groups from generated
// text. Returns an empty slice when no group matches; the caller
// decides the fallback.
func ParseArticles(text string) []Article {
	matches := articlePattern.FindAllStringSubmatch(text, -1)
	articles := make([]Article, 0, len(matches))
	for _, m := range matches {
		articles = append(articles, Article{
			Title:   strings.TrimSpace(m[1]),
			Content: strings.TrimSpace(m[2]),
		})
	}
	return articles
}

// Articles requests multiple delimited articles in one call and writes
// one text file per parsed article, named from the sanitized title.
func Articles(ctx context.Context, deps Deps, task, outDir string) error {
	if err := ensureDir(outDir); err != nil {
		return err
	}

	prompt := prompts.Format(prompts.MustGet(promptFile, "articles"), map[string]string{"Task": task})
	resp, err := deps.LLM.Generate(ctx, prompt)
	if err != nil {
		return fmt.Errorf("article generation failed: %w", err)
	}
	// The delimiter parse and its fallback both see the trimmed
	// response exactly as the service returned it.
	text := strings.TrimSpace(resp)

	articles := ParseArticles(text)
	if len(articles) == 0 {
		// Parse-miss fallback: the whole response is one untitled article.
		articles = []Article{{Title: "Generated_Article", Content: text}}
	}

	for i, article := range articles {
		name := naming.Sanitize(article.Title)
		if name == "" {
			name = fmt.Sprintf("Article_%d", i+1)
		}
		path := filepath.Join(outDir, name+".txt")

		body := fmt.Sprintf("%s\n%s\n\n%s",
			article.Title,
			strings.Repeat("=", len(article.Title)),
			article.Content)
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			return &WriteError{Path: path, Cause: err}
		}
		deps.Printer.Successf("Saved %s", path)
	}
	return nil
}
