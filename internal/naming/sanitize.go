// Package naming derives safe file names from generated text.
package naming

import "strings"

// maxFilenameLen caps sanitized names so derived file names stay portable.
const maxFilenameLen = 50

// Sanitize converts arbitrary text into a safe filename fragment.
// Every rune outside [A-Za-z0-9_-] is replaced with a single '_' and
// the result is truncated to 50 characters. Total over all inputs;
// empty in, empty out.
func Sanitize(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))

	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '_', r == '-':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}

	// The replaced string is pure ASCII, so byte and character counts
	// coincide.
	s := sb.String()
	if len(s) > maxFilenameLen {
		s = s[:maxFilenameLen]
	}
	return s
}
