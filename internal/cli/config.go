package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bjpop/cicheck/internal/config"
	"github.com/bjpop/cicheck/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and manage cicheck configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration and where each value came from",
	Long: `Print the merged configuration after defaults, config files, and CICHECK_*
environment variables are applied. Each value is annotated with the layer
that set it (default, user, project, or env).`,
	Args: noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfigPath)
		if err != nil {
			return errors.WrapWithMessage(err, errors.Configuration, "loading configuration")
		}

		rendered, err := renderEffectiveConfig(cfg)
		if err != nil {
			return fmt.Errorf("rendering configuration: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(rendered))
		return nil
	},
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List all known configuration keys",
	Args:  noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		keys := make([]string, 0, len(config.KnownKeys))
		for key := range config.KnownKeys {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "KEY\tTYPE\tDEFAULT\tDESCRIPTION")
		for _, key := range keys {
			schema := config.KnownKeys[key]
			fmt.Fprintf(tw, "%s\t%s\t%v\t%s\n", schema.Path, schema.Type, schema.Default, schema.Description)
		}
		return tw.Flush()
	},
}

var configInitForce bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented default project config file",
	Long:  `Create .cicheck/config.yml with all options documented. Refuses to overwrite an existing config unless --force is given.`,
	Args:  noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ProjectConfigPath()
		if flagConfigPath != "" {
			path = flagConfigPath
		}

		if _, err := os.Stat(path); err == nil && !configInitForce {
			return errors.NewConfigError(
				fmt.Sprintf("config file already exists: %s", path),
				"Pass --force to overwrite it",
				"Or edit the existing file directly")
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configKeysCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

// renderEffectiveConfig marshals the configuration as YAML with each key
// annotated by the layer its value came from. The output is still a valid
// config file.
func renderEffectiveConfig(cfg *config.Configuration) ([]byte, error) {
	values := effectiveConfigMap(cfg)
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range keys {
		var value yaml.Node
		if err := value.Encode(values[key]); err != nil {
			return nil, fmt.Errorf("rendering %s: %w", key, err)
		}
		value.LineComment = string(cfg.SourceOf(key))
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key},
			&value)
	}
	return yaml.Marshal(root)
}

// effectiveConfigMap renders the configuration under its config-file key
// names, so 'config show' output can be pasted back into a config file.
func effectiveConfigMap(cfg *config.Configuration) map[string]interface{} {
	return map[string]interface{}{
		"package_dir":       cfg.PackageDir,
		"test_command":      cfg.TestCommand,
		"test_entry":        cfg.TestEntry,
		"lint_command":      cfg.LintCommand,
		"lint_args":         cfg.LintArgs,
		"source_glob":       cfg.SourceGlob,
		"progress":          cfg.Progress,
		"quiet":             cfg.Quiet,
		"watch_debounce_ms": cfg.WatchDebounceMs,
	}
}
