package config

import (
	"fmt"
	"strings"
)

// Validate checks the merged configuration for values that would make a
// check run impossible or meaningless.
func Validate(cfg *Configuration) error {
	if strings.TrimSpace(cfg.PackageDir) == "" {
		return fmt.Errorf("package_dir must not be empty")
	}
	if strings.TrimSpace(cfg.TestCommand) == "" {
		return fmt.Errorf("test_command must not be empty")
	}
	if strings.TrimSpace(cfg.LintCommand) == "" {
		return fmt.Errorf("lint_command must not be empty")
	}
	if strings.TrimSpace(cfg.SourceGlob) == "" {
		return fmt.Errorf("source_glob must not be empty")
	}
	if cfg.WatchDebounceMs < 0 {
		return fmt.Errorf("watch_debounce_ms must be >= 0, got %d", cfg.WatchDebounceMs)
	}
	return nil
}
