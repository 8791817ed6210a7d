package cli

import (
	stderrors "errors"
	"fmt"

	"github.com/bjpop/cicheck/internal/errors"
)

// Exit codes for the cicheck CLI.
// These codes support programmatic composition and CI integration.
const (
	// ExitSuccess indicates every check passed
	ExitSuccess = 0

	// ExitChecksFailed indicates at least one check step failed
	ExitChecksFailed = 1

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 2

	// ExitMissingTool indicates a required tool or input path is missing
	ExitMissingTool = 3
)

// ChecksFailedError reports how many check steps failed. The summary line
// has already been printed when this error surfaces.
type ChecksFailedError struct {
	Count int
}

// Error implements the error interface.
func (e *ChecksFailedError) Error() string {
	return fmt.Sprintf("%d check step(s) failed", e.Count)
}

// isChecksFailed reports whether err is a checks-failed outcome.
func isChecksFailed(err error) bool {
	var cf *ChecksFailedError
	return stderrors.As(err, &cf)
}

// ExitCodeFor maps an Execute result to the process exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if isChecksFailed(err) {
		return ExitChecksFailed
	}
	if cliErr := errors.AsCLIError(err); cliErr != nil {
		switch cliErr.Category {
		case errors.Argument:
			return ExitInvalidArguments
		case errors.Prerequisite:
			return ExitMissingTool
		}
	}
	return ExitChecksFailed
}
