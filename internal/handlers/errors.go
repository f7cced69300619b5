package handlers

import "fmt"

// WriteError represents a failure writing an output file. Earlier files
// written by the same handler invocation remain on disk; there is no
// rollback.
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Cause)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}
