package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjpop/cicheck/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  noArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		if version.IsDevBuild() {
			fmt.Fprintf(out, "cicheck %s (development build)\n", version.Version)
		} else {
			fmt.Fprintf(out, "cicheck %s\n", version.Version)
		}
		fmt.Fprintf(out, "  commit: %s\n", version.Commit)
		fmt.Fprintf(out, "  built:  %s\n", version.BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
