package shell

import (
	"errors"
	"fmt"
)

// ExitError is returned by Shell.Run when the app stops with a non-zero
// exit code.
type ExitError struct {
	ExitCode int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("shell exited with %d", e.ExitCode)
}

func NewExitError(exitCode int) *ExitError {
	return &ExitError{ExitCode: exitCode}
}

// ExitCode maps the result of Shell.Run to a process exit code: 0 for nil,
// the carried code for an ExitError, 1 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode
	}

	return 1
}
