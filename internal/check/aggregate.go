package check

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/bjpop/cicheck/internal/output"
	"github.com/bjpop/cicheck/internal/progress"
	"github.com/bjpop/cicheck/internal/step"
)

// Summary is the aggregate outcome of one check run.
type Summary struct {
	// Results holds one entry per executed step, in execution order.
	Results []step.Result
	// FailureCount is the number of steps that exited non-zero. It always
	// equals the number of failed entries in Results.
	FailureCount int
}

// Passed reports whether every step succeeded.
func (s Summary) Passed() bool {
	return s.FailureCount == 0
}

// Aggregator runs check steps strictly in order and accumulates failures.
// Every step always runs: a failing test step never short-circuits the lint
// step, so one run reports complete diagnostics.
type Aggregator struct {
	// Runner executes individual steps.
	Runner step.CommandRunner
	// Out receives headers, diagnostics, and the summary line.
	Out io.Writer
	// Progress is the optional spinner controller (nil-safe).
	Progress *progress.Controller
	// Quiet suppresses headers, command echo, and pass lines. Failure
	// diagnostics and the summary are always printed.
	Quiet bool
}

// Run executes all steps sequentially and prints the final summary line.
// The failure count is threaded through locally; there is no shared state
// between runs.
func (a *Aggregator) Run(ctx context.Context, steps []step.Step) Summary {
	summary := Summary{Results: make([]step.Result, 0, len(steps))}

	for i, s := range steps {
		if !a.Quiet {
			output.PrintStepHeader(a.Out, i+1, len(steps), s.Name)
			output.PrintExecutingCommand(a.Out, s.CommandLine())
		}

		a.Progress.Start(s.Name)
		result := a.Runner.Run(ctx, s)
		a.Progress.Stop()

		summary.Results = append(summary.Results, result)
		if result.Failed() {
			summary.FailureCount++
			output.PrintStepFail(a.Out, s.CommandLine())
			if result.Err != nil {
				dim := color.New(color.Faint).SprintFunc()
				fmt.Fprintf(a.Out, "  %s\n", dim(result.Err.Error()))
			}
		} else if !a.Quiet {
			output.PrintStepPass(a.Out, s.Name, result.Duration)
		}
	}

	output.PrintSummary(a.Out, summary.FailureCount)
	return summary
}
