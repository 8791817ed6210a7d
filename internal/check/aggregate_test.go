package check

import (
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/bjpop/cicheck/internal/config"
	"github.com/bjpop/cicheck/internal/step"
)

// fakeRunner returns canned exit codes per step name and records the
// invocation order.
type fakeRunner struct {
	exitCodes map[string]int
	invoked   []string
}

func (f *fakeRunner) Run(_ context.Context, s step.Step) step.Result {
	f.invoked = append(f.invoked, s.Name)
	return step.Result{Step: s, ExitCode: f.exitCodes[s.Name]}
}

func testConfig() *config.Configuration {
	return &config.Configuration{
		PackageDir:  "tcga_rppa_sig",
		TestCommand: "python",
		LintCommand: "pylint",
		LintArgs:    []string{"-E"},
		SourceGlob:  "*.py",
	}
}

func TestAggregatorExitCombinations(t *testing.T) {
	color.NoColor = true

	tests := map[string]struct {
		testExit         int
		lintExit         int
		wantFailureCount int
		wantPassed       bool
		wantSummary      string
	}{
		"both pass": {
			testExit:         0,
			lintExit:         0,
			wantFailureCount: 0,
			wantPassed:       true,
			wantSummary:      "Ok : all checks passed",
		},
		"test fails lint passes": {
			testExit:         1,
			lintExit:         0,
			wantFailureCount: 1,
			wantPassed:       false,
			wantSummary:      "There were 1 errors found",
		},
		"test passes lint fails": {
			testExit:         0,
			lintExit:         1,
			wantFailureCount: 1,
			wantPassed:       false,
			wantSummary:      "There were 1 errors found",
		},
		"both fail": {
			testExit:         1,
			lintExit:         1,
			wantFailureCount: 2,
			wantPassed:       false,
			wantSummary:      "There were 2 errors found",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			runner := &fakeRunner{exitCodes: map[string]int{
				StepTest: tt.testExit,
				StepLint: tt.lintExit,
			}}
			var out strings.Builder
			agg := &Aggregator{Runner: runner, Out: &out}

			summary := agg.Run(context.Background(), AllSteps(testConfig()))

			require.Equal(t, tt.wantFailureCount, summary.FailureCount)
			require.Equal(t, tt.wantPassed, summary.Passed())
			require.Contains(t, out.String(), tt.wantSummary)
			require.Len(t, summary.Results, 2)

			// FailureCount must equal the number of failed results.
			failed := 0
			for _, r := range summary.Results {
				if r.Failed() {
					failed++
				}
			}
			require.Equal(t, summary.FailureCount, failed)
		})
	}
}

func TestAggregatorNeverShortCircuits(t *testing.T) {
	color.NoColor = true

	runner := &fakeRunner{exitCodes: map[string]int{StepTest: 1, StepLint: 1}}
	var out strings.Builder
	agg := &Aggregator{Runner: runner, Out: &out}

	agg.Run(context.Background(), AllSteps(testConfig()))

	require.Equal(t, []string{StepTest, StepLint}, runner.invoked,
		"lint must run even when the test step failed")
}

func TestAggregatorFailureDiagnostics(t *testing.T) {
	color.NoColor = true

	cfg := testConfig()
	runner := &fakeRunner{exitCodes: map[string]int{StepTest: 1, StepLint: 1}}
	var out strings.Builder
	agg := &Aggregator{Runner: runner, Out: &out}

	agg.Run(context.Background(), AllSteps(cfg))

	got := out.String()
	require.Contains(t, got, NewTestStep(cfg).CommandLine()+" failed")
	require.Contains(t, got, NewLintStep(cfg).CommandLine()+" failed")
}

func TestAggregatorQuietKeepsDiagnosticsAndSummary(t *testing.T) {
	color.NoColor = true

	cfg := testConfig()
	runner := &fakeRunner{exitCodes: map[string]int{StepTest: 1}}
	var out strings.Builder
	agg := &Aggregator{Runner: runner, Out: &out, Quiet: true}

	agg.Run(context.Background(), AllSteps(cfg))

	got := out.String()
	require.NotContains(t, got, "[1/2]", "quiet mode suppresses headers")
	require.Contains(t, got, NewTestStep(cfg).CommandLine()+" failed")
	require.Contains(t, got, "There were 1 errors found")
}
