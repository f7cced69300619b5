// Package dispatch routes a free-text task to exactly one format
// handler by case-insensitive substring tests evaluated in a fixed
// priority order.
package dispatch

import (
	"context"
	"strings"

	"docagent/internal/handlers"
)

// Route pairs a predicate with the handler it selects. Routes are
// evaluated in order; the first match wins.
type Route struct {
	Name  string
	Match func(task string) bool
	Run   handlers.Handler
}

// containsAny reports whether the task contains any of the substrings.
func containsAny(subs ...string) func(string) bool {
	return func(task string) bool {
		for _, s := range subs {
			if strings.Contains(task, s) {
				return true
			}
		}
		return false
	}
}

// Routes returns the routing table. The q+a rule tests the two letters
// as independent substrings, which matches phrasings like "Q&A" and
// "Q and A" but also shadows later rules whenever both letters happen
// to appear anywhere in the task. Kept as-is; changing it would change
// observed routing for many real task strings.
func Routes() []Route {
	return []Route{
		{Name: "articles", Match: containsAny("article"), Run: handlers.Articles},
		{Name: "notes", Match: containsAny("note"), Run: handlers.Notes},
		{Name: "qna", Match: func(t string) bool {
			return strings.Contains(t, "q") && strings.Contains(t, "a")
		}, Run: handlers.QnA},
		{Name: "spreadsheet", Match: containsAny("excel", "spreadsheet"), Run: handlers.Spreadsheet},
		{Name: "document", Match: containsAny("doc", "word"), Run: handlers.WordDoc},
		{Name: "report", Match: containsAny("pdf"), Run: handlers.PDF},
		{Name: "slides", Match: containsAny("ppt", "presentation", "slides"), Run: handlers.Slides},
	}
}

// Dispatch routes the task to the first matching handler. A task no
// rule matches returns an *UnsupportedTaskError; the caller reports it
// and carries on.
func Dispatch(ctx context.Context, deps handlers.Deps, task, outDir string) error {
	lower := strings.ToLower(task)
	for _, route := range Routes() {
		if route.Match(lower) {
			deps.Printer.Verbosef("task routed to %s handler", route.Name)
			return route.Run(ctx, deps, task, outDir)
		}
	}
	return &UnsupportedTaskError{Task: task}
}
