package cli

import (
	"github.com/spf13/cobra"

	"github.com/bjpop/cicheck/internal/check"
	"github.com/bjpop/cicheck/internal/config"
	"github.com/bjpop/cicheck/internal/errors"
	"github.com/bjpop/cicheck/internal/progress"
	"github.com/bjpop/cicheck/internal/step"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run all checks: tests first, then lint",
	Long: `Run the full check sequence for the configured package.

The test step invokes the package's unit-test entry point. The lint step
runs the configured linter over every matching source file, restricted to
error-severity findings. Both steps always run; the exit code is 0 only
when both pass.`,
	Example: `  # Run all checks with the default configuration
  cicheck run

  # Check a different package directory
  cicheck run --package-dir mypackage

  # Show a spinner while each step runs
  cicheck run --progress`,
	Args: noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChecks(cmd, check.AllSteps)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	addStepFlags(runCmd)
}

// addStepFlags registers the flags shared by run, test, lint, and watch.
func addStepFlags(cmd *cobra.Command) {
	cmd.Flags().String("package-dir", "", "Package directory to check (overrides config)")
	cmd.Flags().Bool("progress", false, "Show a spinner while a step runs")
}

// loadStepConfig loads configuration and applies step command flag overrides.
func loadStepConfig(cmd *cobra.Command) (*config.Configuration, error) {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return nil, errors.WrapWithMessage(err, errors.Configuration, "loading configuration",
			"Check the syntax of .cicheck/config.yml",
			"Run 'cicheck config init' to create a fresh config")
	}

	if cmd.Flags().Changed("package-dir") {
		cfg.PackageDir, _ = cmd.Flags().GetString("package-dir")
	}
	if cmd.Flags().Changed("progress") {
		cfg.Progress, _ = cmd.Flags().GetBool("progress")
	}
	if flagQuiet {
		cfg.Quiet = true
	}

	if err := config.Validate(cfg); err != nil {
		return nil, errors.WrapWithMessage(err, errors.Configuration, "invalid configuration")
	}
	return cfg, nil
}

// newAggregator builds the aggregator for one check run.
func newAggregator(cmd *cobra.Command, cfg *config.Configuration) *check.Aggregator {
	var prog *progress.Controller
	if cfg.Progress && !cfg.Quiet {
		prog = progress.NewController()
	}
	return &check.Aggregator{
		Runner:   step.NewExecRunner(),
		Out:      cmd.OutOrStdout(),
		Progress: prog,
		Quiet:    cfg.Quiet,
	}
}

// runChecks executes the steps produced by buildSteps and maps a failing
// run to a ChecksFailedError.
func runChecks(cmd *cobra.Command, buildSteps func(*config.Configuration) []step.Step) error {
	cfg, err := loadStepConfig(cmd)
	if err != nil {
		return err
	}

	agg := newAggregator(cmd, cfg)
	summary := agg.Run(cmd.Context(), buildSteps(cfg))
	if !summary.Passed() {
		return &ChecksFailedError{Count: summary.FailureCount}
	}
	return nil
}
