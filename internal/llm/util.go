// Package llm - util.go provides shared utilities for response processing.
package llm

import "strings"

// Normalize trims whitespace and strips a surrounding markdown code
// fence. Models occasionally wrap plain-text output in ``` blocks even
// when the instruction asks for raw text. Only for responses that get
// re-rendered into a document; handlers that write the response
// verbatim trim whitespace and nothing else.
func Normalize(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip a potential language identifier on the first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	return text
}
