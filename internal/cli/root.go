// Package cli implements the cicheck command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bjpop/cicheck/internal/errors"
)

var (
	flagConfigPath string
	flagNoColor    bool
	flagQuiet      bool
)

var rootCmd = &cobra.Command{
	Use:   "cicheck",
	Short: "Run a package's CI checks and aggregate the results",
	Long: `cicheck runs a Python package's unit-test entry point and an
error-severity-only lint pass, counts the failures, and exits non-zero
if any check failed.

Both checks always run: a failing test step never skips the lint step,
so a single run reports complete diagnostics.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagNoColor || os.Getenv("NO_COLOR") != "" {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfigPath, "config", "c", "", "Path to project config file (default .cicheck/config.yml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress step headers and command echo")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		argErr := errors.NewArgumentError(err.Error(),
			fmt.Sprintf("Run '%s --help' for usage", cmd.CommandPath()))
		argErr.Usage = cmd.UseLine()
		return argErr
	})
}

// noArgs rejects positional arguments with a structured argument error, so
// the process exits with ExitInvalidArguments instead of a generic failure.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		argErr := errors.NewArgumentError(
			fmt.Sprintf("unexpected argument: %q", args[0]),
			fmt.Sprintf("Run '%s --help' for usage", cmd.CommandPath()))
		argErr.Usage = cmd.UseLine()
		return argErr
	}
	return nil
}

// Execute runs the root command and prints any resulting error.
// A checks-failed outcome has already printed its summary line, so it is
// returned without additional output.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	if isChecksFailed(err) {
		return err
	}
	if cliErr := errors.AsCLIError(err); cliErr != nil {
		errors.PrintError(cliErr)
		return err
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return err
}
