// Package check builds the test and lint steps for a package and runs them
// through the sequential aggregator.
package check

import (
	"path/filepath"

	"github.com/bjpop/cicheck/internal/config"
	"github.com/bjpop/cicheck/internal/step"
)

// Step names, also used as the single-step command names in the CLI.
const (
	StepTest = "test"
	StepLint = "lint"
)

// NewTestStep builds the step that invokes the package's unit-test entry point.
// The entry point is invoked with no extra arguments.
func NewTestStep(cfg *config.Configuration) step.Step {
	return step.Step{
		Name:    StepTest,
		Command: cfg.TestCommand,
		Args:    []string{filepath.Join(cfg.PackageDir, cfg.TestEntryFile())},
	}
}

// NewLintStep builds the step that runs the linter over every source file
// matching source_glob under the package directory.
//
// When the glob matches nothing (or is malformed) the literal pattern is
// passed through, so the linter fails on the nonexistent path. This mirrors
// running the tool with an unexpanded shell glob and keeps "nothing to
// analyze" a normal step failure instead of a separate error path.
func NewLintStep(cfg *config.Configuration) step.Step {
	pattern := filepath.Join(cfg.PackageDir, cfg.SourceGlob)

	files, err := filepath.Glob(pattern)
	if err != nil || len(files) == 0 {
		files = []string{pattern}
	}

	args := make([]string, 0, len(cfg.LintArgs)+len(files))
	args = append(args, cfg.LintArgs...)
	args = append(args, files...)

	return step.Step{
		Name:    StepLint,
		Command: cfg.LintCommand,
		Args:    args,
	}
}

// AllSteps returns the full check sequence: test first, then lint.
func AllSteps(cfg *config.Configuration) []step.Step {
	return []step.Step{NewTestStep(cfg), NewLintStep(cfg)}
}
