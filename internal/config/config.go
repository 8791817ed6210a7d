// Package config provides hierarchical configuration management for cicheck
// using koanf. Configuration is loaded with priority: environment variables >
// project config (.cicheck/config.yml) > user config (~/.config/cicheck/config.yml)
// > defaults. Legacy JSON configs are still read, with a deprecation warning.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ConfigSource tracks where a configuration value came from
type ConfigSource string

const (
	SourceDefault ConfigSource = "default"
	SourceUser    ConfigSource = "user"
	SourceProject ConfigSource = "project"
	SourceEnv     ConfigSource = "env"
)

// Configuration represents the cicheck CLI tool configuration
type Configuration struct {
	// PackageDir is the directory of the Python package under check.
	// Can be set via CICHECK_PACKAGE_DIR env var.
	PackageDir string `koanf:"package_dir"`

	// TestCommand is the interpreter used to invoke the unit-test entry point.
	TestCommand string `koanf:"test_command"`

	// TestEntry is the test entry file inside PackageDir. When empty, the
	// entry is derived as <base(PackageDir)>_test.py.
	TestEntry string `koanf:"test_entry"`

	// LintCommand is the static-analysis tool to run over the package sources.
	LintCommand string `koanf:"lint_command"`

	// LintArgs are passed to LintCommand before the file list.
	// The default -E restricts pylint to error-severity findings so
	// warnings never fail the lint step.
	LintArgs []string `koanf:"lint_args"`

	// SourceGlob selects the files handed to the linter, relative to
	// PackageDir (default "*.py").
	SourceGlob string `koanf:"source_glob"`

	// Progress enables the spinner while a step runs (TTY only).
	Progress bool `koanf:"progress"`

	// Quiet suppresses step headers and command echo. Failure diagnostics
	// and the final summary line are always printed.
	Quiet bool `koanf:"quiet"`

	// WatchDebounceMs is the debounce window for 'cicheck watch' in
	// milliseconds. File events closer together than this trigger one run.
	WatchDebounceMs int `koanf:"watch_debounce_ms"`

	// sources records which layer set each key, by config-file key name.
	sources map[string]ConfigSource
}

// SourceOf reports which layer a key's effective value came from. Keys no
// layer overrode report SourceDefault.
func (c *Configuration) SourceOf(key string) ConfigSource {
	if src, ok := c.sources[key]; ok {
		return src
	}
	return SourceDefault
}

// TestEntryFile returns the configured test entry file, deriving the
// conventional <package>_test.py name when test_entry is unset.
func (c *Configuration) TestEntryFile() string {
	if c.TestEntry != "" {
		return c.TestEntry
	}
	return filepath.Base(c.PackageDir) + "_test.py"
}

// LoadOptions configures how configuration is loaded
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path (default: .cicheck/config.yml)
	ProjectConfigPath string
	// WarningWriter receives deprecation warnings (default: os.Stderr)
	WarningWriter io.Writer
	// SkipWarnings suppresses deprecation warnings
	SkipWarnings bool
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")
	sources := make(map[string]ConfigSource)
	warningWriter := getWarningWriter(opts.WarningWriter)

	loadDefaults(k)

	if err := loadUserConfig(k, sources, warningWriter, opts.SkipWarnings); err != nil {
		return nil, err
	}

	if err := loadProjectConfig(k, sources, opts.ProjectConfigPath, warningWriter, opts.SkipWarnings); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k, sources); err != nil {
		return nil, err
	}

	return finalizeConfig(k, sources)
}

// getWarningWriter returns the warning writer or defaults to stderr
func getWarningWriter(w io.Writer) io.Writer {
	if w == nil {
		return os.Stderr
	}
	return w
}

// loadDefaults applies default configuration values
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadUserConfig loads user-level config (YAML preferred, legacy JSON supported).
// Priority: YAML (~/.config/cicheck/config.yml) > JSON (~/.cicheck/config.json).
func loadUserConfig(k *koanf.Koanf, sources map[string]ConfigSource, warningWriter io.Writer, skipWarnings bool) error {
	userYAMLPath, _ := UserConfigPath()
	legacyUserPath, _ := LegacyUserConfigPath()

	if fileExists(userYAMLPath) {
		if err := loadYAMLConfig(k, sources, userYAMLPath, SourceUser); err != nil {
			return fmt.Errorf("loading user YAML config: %w", err)
		}
		return nil
	}
	if fileExists(legacyUserPath) {
		return loadLegacyJSONConfig(k, sources, legacyUserPath, SourceUser, warningWriter, skipWarnings)
	}
	return nil
}

// loadProjectConfig loads project-level config (YAML preferred, legacy JSON
// supported). Supports a custom path override from the --config flag.
func loadProjectConfig(k *koanf.Koanf, sources map[string]ConfigSource, customPath string, warningWriter io.Writer, skipWarnings bool) error {
	projectPath := ProjectConfigPath()
	if customPath != "" {
		projectPath = customPath
	}

	if fileExists(projectPath) {
		if strings.HasSuffix(projectPath, ".json") {
			return loadLegacyJSONConfig(k, sources, projectPath, SourceProject, warningWriter, skipWarnings)
		}
		if err := loadYAMLConfig(k, sources, projectPath, SourceProject); err != nil {
			return fmt.Errorf("loading project YAML config: %w", err)
		}
		return nil
	}

	if customPath != "" {
		return fmt.Errorf("config file not found: %s", customPath)
	}

	legacyProjectPath := LegacyProjectConfigPath()
	if fileExists(legacyProjectPath) {
		return loadLegacyJSONConfig(k, sources, legacyProjectPath, SourceProject, warningWriter, skipWarnings)
	}
	return nil
}

// loadYAMLConfig loads a YAML config file
func loadYAMLConfig(k *koanf.Koanf, sources map[string]ConfigSource, path string, src ConfigSource) error {
	layer := koanf.New(".")
	if err := layer.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", src, path, err)
	}
	return mergeLayer(k, layer, sources, src)
}

// loadLegacyJSONConfig loads legacy JSON and warns about migration
func loadLegacyJSONConfig(k *koanf.Koanf, sources map[string]ConfigSource, path string, src ConfigSource, warningWriter io.Writer, skipWarnings bool) error {
	layer := koanf.New(".")
	if err := layer.Load(file.Provider(path), json.Parser()); err != nil {
		return fmt.Errorf("failed to load legacy %s config %s: %w", src, path, err)
	}
	if !skipWarnings {
		fmt.Fprintf(warningWriter, "Warning: Using deprecated JSON config at %s\n", path)
		fmt.Fprintf(warningWriter, "  Rewrite it as YAML (see 'cicheck config init').\n\n")
	}
	return mergeLayer(k, layer, sources, src)
}

// loadEnvironmentConfig loads environment variable overrides
func loadEnvironmentConfig(k *koanf.Koanf, sources map[string]ConfigSource) error {
	layer := koanf.New(".")
	if err := layer.Load(env.Provider("CICHECK_", ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return mergeLayer(k, layer, sources, SourceEnv)
}

// mergeLayer merges one configuration layer into k, recording which keys the
// layer set so 'config show' can report where each value came from.
func mergeLayer(k *koanf.Koanf, layer *koanf.Koanf, sources map[string]ConfigSource, src ConfigSource) error {
	for _, key := range layer.Keys() {
		sources[key] = src
	}
	return k.Merge(layer)
}

// finalizeConfig unmarshals and validates the merged configuration
func finalizeConfig(k *koanf.Koanf, sources map[string]ConfigSource) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.sources = sources

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// fileExists returns true if the file exists and is readable
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys
// Example: CICHECK_PACKAGE_DIR -> package_dir
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "CICHECK_"))
}
