package handlers

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"docagent/internal/llm"
	"docagent/internal/pptx"
	"docagent/internal/prompts"
)

// slideHeaderPattern matches one "SLIDE <n>: <Title>" header. Not
// line-anchored, and the title must end in a newline, so a header with
// no trailing newline at end of text does not parse.
var slideHeaderPattern = regexp.MustCompile(`SLIDE\s*\d+:\s*(.*?)\n`)

// Slide is one parsed unit of the slides response.
type Slide struct {
	Title   string
	Bullets []string
}

// ParseSlides extracts slide blocks from generated text. A slide's
// body runs from its header to the next occurrence of "SLIDE" (even
// mid-line) or end of text. Bullets are the body lines beginning with
// "-", leading marker and surrounding whitespace stripped. Returns an
// empty slice when no header matches.
func ParseSlides(text string) []Slide {
	locs := slideHeaderPattern.FindAllStringSubmatchIndex(text, -1)
	slides := make([]Slide, 0, len(locs))

	for _, loc := range locs {
		title := strings.TrimSpace(text[loc[2]:loc[3]])

		bodyEnd := len(text)
		if idx := strings.Index(text[loc[1]:], "SLIDE"); idx >= 0 {
			bodyEnd = loc[1] + idx
		}
		body := text[loc[1]:bodyEnd]

		var bullets []string
		for _, line := range strings.Split(body, "\n") {
			line = strings.TrimSpace(line)
			if strings.HasPrefix(line, "-") {
				bullets = append(bullets, strings.TrimSpace(strings.TrimPrefix(line, "-")))
			}
		}
		slides = append(slides, Slide{Title: title, Bullets: bullets})
	}
	return slides
}

// Slides requests bullet content for five slides and writes slides.pptx.
// When no slide block parses, a single fallback slide carries the task
// as title and the raw response as body text.
func Slides(ctx context.Context, deps Deps, task, outDir string) error {
	if err := ensureDir(outDir); err != nil {
		return err
	}

	prompt := prompts.Format(prompts.MustGet(promptFile, "slides"), map[string]string{"Task": task})
	resp, err := deps.LLM.Generate(ctx, prompt)
	if err != nil {
		return fmt.Errorf("slide generation failed: %w", err)
	}

	deck := pptx.NewDeck()
	parsed := ParseSlides(resp)
	if len(parsed) == 0 {
		deck.AddTextSlide(task, llm.Normalize(resp))
	} else {
		for _, s := range parsed {
			deck.AddSlide(s.Title, s.Bullets)
		}
	}

	path := filepath.Join(outDir, "slides.pptx")
	if err := deck.SaveTo(path); err != nil {
		return &WriteError{Path: path, Cause: err}
	}
	deps.Printer.Successf("PPT saved at %s", path)
	return nil
}
