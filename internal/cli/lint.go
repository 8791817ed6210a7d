package cli

import (
	"github.com/spf13/cobra"

	"github.com/bjpop/cicheck/internal/check"
	"github.com/bjpop/cicheck/internal/config"
	"github.com/bjpop/cicheck/internal/step"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Run only the lint step",
	Long: `Run only the static-analysis step over the package sources.

The linter is restricted to error-severity findings by default (pylint -E),
so warnings never fail the step.`,
	Args: noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChecks(cmd, func(cfg *config.Configuration) []step.Step {
			return []step.Step{check.NewLintStep(cfg)}
		})
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)
	addStepFlags(lintCmd)
}
