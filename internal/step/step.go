// Package step defines the external check step model and the subprocess
// runner that executes steps. A step is a single external command invocation
// whose outcome is its process exit code.
package step

import (
	"strings"
	"time"
)

// Step describes one external command invocation.
type Step struct {
	// Name is the short step identifier shown in headers (e.g. "test", "lint").
	Name string
	// Command is the executable to invoke (resolved via PATH).
	Command string
	// Args are the arguments passed to Command.
	Args []string
	// Dir is the working directory for the invocation (empty = current).
	Dir string
}

// CommandLine returns the full command line for display and diagnostics.
func (s Step) CommandLine() string {
	if len(s.Args) == 0 {
		return s.Command
	}
	return s.Command + " " + strings.Join(s.Args, " ")
}

// Result is the transient outcome of one executed step.
type Result struct {
	// Step is the step that was executed.
	Step Step
	// ExitCode is the subprocess exit code. -1 when the process could not
	// be started at all (e.g. command not found).
	ExitCode int
	// Err is set when the process could not be started; it is nil for a
	// process that ran and exited non-zero.
	Err error
	// Duration is the wall-clock time the step took.
	Duration time.Duration
}

// Failed reports whether the step counts as a failure.
func (r Result) Failed() bool {
	return r.ExitCode != 0 || r.Err != nil
}
