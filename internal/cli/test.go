package cli

import (
	"github.com/spf13/cobra"

	"github.com/bjpop/cicheck/internal/check"
	"github.com/bjpop/cicheck/internal/config"
	"github.com/bjpop/cicheck/internal/step"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Run only the unit-test step",
	Long: `Run only the package's unit-test entry point.

The entry point is invoked with no extra arguments. Exit code is 0 when
the tests pass.`,
	Args: noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChecks(cmd, func(cfg *config.Configuration) []step.Step {
			return []step.Step{check.NewTestStep(cfg)}
		})
	},
}

func init() {
	rootCmd.AddCommand(testCmd)
	addStepFlags(testCmd)
}
