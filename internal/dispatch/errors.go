package dispatch

import (
	"errors"
	"fmt"
)

// UnsupportedTaskError reports a task no routing rule matched.
type UnsupportedTaskError struct {
	Task string
}

func (e *UnsupportedTaskError) Error() string {
	return fmt.Sprintf("no handler for task %q", e.Task)
}

// IsUnsupported reports whether err is an UnsupportedTaskError.
func IsUnsupported(err error) bool {
	var ute *UnsupportedTaskError
	return errors.As(err, &ute)
}
