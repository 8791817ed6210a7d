package step

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"time"
)

// CommandRunner executes a single step and reports its outcome.
// It is an interface to enable fake runners in aggregator tests.
type CommandRunner interface {
	Run(ctx context.Context, s Step) Result
}

// ExecRunner runs steps as real subprocesses via os/exec.
// Step output streams through to Stdout/Stderr unmodified so test and lint
// output reaches the user exactly as the tools produced it.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner creates an ExecRunner wired to the process stdout/stderr.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run executes the step and blocks until the subprocess exits.
// No deadline is applied to ctx; cancellation kills the subprocess.
func (r *ExecRunner) Run(ctx context.Context, s Step) Result {
	start := time.Now()

	cmd := exec.CommandContext(ctx, s.Command, s.Args...)
	cmd.Dir = s.Dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	cmd.Stdin = os.Stdin

	err := cmd.Run()
	result := Result{
		Step:     s,
		Duration: time.Since(start),
	}

	if err == nil {
		return result
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// Process ran and exited non-zero: the exit code is the outcome.
		result.ExitCode = exitErr.ExitCode()
		return result
	}

	// Process never started (command not found, permission denied, ...).
	result.ExitCode = -1
	result.Err = err
	return result
}
