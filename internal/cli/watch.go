package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bjpop/cicheck/internal/check"
	"github.com/bjpop/cicheck/internal/errors"
	"github.com/bjpop/cicheck/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run all checks when package sources change",
	Long: `Watch the package directory and re-run the full check sequence on
every source change. File events are debounced (watch_debounce_ms) so an
editor save triggers a single run. Stop with Ctrl-C.`,
	Args: noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadStepConfig(cmd)
		if err != nil {
			return err
		}

		// Watching requires the directory to exist up front; a run can
		// report a missing package as a failed step, a watch cannot.
		if _, err := os.Stat(cfg.PackageDir); err != nil {
			return errors.NewPrerequisiteError(
				fmt.Sprintf("package directory not found: %s", cfg.PackageDir),
				"Check package_dir in .cicheck/config.yml",
				"Or pass --package-dir")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		agg := newAggregator(cmd, cfg)
		w := &watch.Watcher{
			Dir:        cfg.PackageDir,
			SourceGlob: cfg.SourceGlob,
			Debounce:   time.Duration(cfg.WatchDebounceMs) * time.Millisecond,
			Out:        cmd.OutOrStdout(),
			OnRun: func(runCtx context.Context) {
				agg.Run(runCtx, check.AllSteps(cfg))
			},
		}
		return w.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addStepFlags(watchCmd)
}
