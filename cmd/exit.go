package cmd

import (
	"errors"
	"io"

	"github.com/magnhaug/rp/pkg/prompt"
)

// Exit codes.
const (
	ExitSuccess = 0
	ExitFailure = 1 // An input could not be read or the output could not be written.
	ExitUsage   = 2 // Bad flags or configuration.
)

// ExitError carries the process exit code for err. Silent means the error
// was already reported, or must not be.
type ExitError struct {
	Code   int
	Err    error
	Silent bool
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode maps an error returned by the root command to an exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUsage
}

// reportUnhandled prints errors that runPrompt did not report itself, such
// as flag parsing failures.
func reportUnhandled(w io.Writer, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Silent {
		return
	}
	prompt.NewReporter(w, false).Error(err)
}
