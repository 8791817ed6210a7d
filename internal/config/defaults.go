package config

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options
func GetDefaultConfigTemplate() string {
	return `# cicheck Configuration
# See 'cicheck config -h' for commands, 'cicheck config keys' for all options

# Package under check
package_dir: tcga_rppa_sig        # Directory of the Python package

# Test step
test_command: python              # Interpreter for the unit-test entry point
test_entry: ""                    # Entry file inside package_dir (empty = <package>_test.py)

# Lint step
lint_command: pylint              # Static-analysis tool
lint_args:                        # Arguments before the file list
  - -E                            # Error-severity findings only; warnings never fail
source_glob: "*.py"               # Files handed to the linter, relative to package_dir

# Output
progress: false                   # Spinner while a step runs (TTY only)
quiet: false                      # Suppress headers and command echo

# Watch mode
watch_debounce_ms: 400            # Debounce window for 'cicheck watch'
`
}

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"package_dir":  "tcga_rppa_sig",
		"test_command": "python",
		// test_entry: Empty means derive <base(package_dir)>_test.py, the
		// conventional entry point name for the package's unit tests.
		"test_entry":   "",
		"lint_command": "pylint",
		// lint_args: -E restricts pylint to error-severity checks so that
		// warnings do not fail the lint step.
		"lint_args":   []string{"-E"},
		"source_glob": "*.py",
		"progress":    false,
		"quiet":       false,
		// watch_debounce_ms: Editors often write several events per save;
		// 400ms collapses them into a single check run.
		"watch_debounce_ms": 400,
	}
}
