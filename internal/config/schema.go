package config

// ConfigValueType defines the expected type for a configuration value.
type ConfigValueType int

const (
	TypeBool ConfigValueType = iota
	TypeInt
	TypeString
	TypeStringList
)

// String returns the string representation of ConfigValueType.
func (t ConfigValueType) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeString:
		return "string"
	case TypeStringList:
		return "string list"
	default:
		return "unknown"
	}
}

// ConfigKeySchema defines a known configuration key with its expected type.
type ConfigKeySchema struct {
	Path        string          // Dotted key path (e.g., "package_dir")
	Type        ConfigValueType // Expected value type for validation
	Description string          // Human-readable description for help text
	Default     interface{}     // Default value
}

// KnownKeys is the registry of all known configuration keys with their schemas.
var KnownKeys = map[string]ConfigKeySchema{
	"package_dir": {
		Path:        "package_dir",
		Type:        TypeString,
		Description: "Directory of the Python package under check",
		Default:     "tcga_rppa_sig",
	},
	"test_command": {
		Path:        "test_command",
		Type:        TypeString,
		Description: "Interpreter used for the unit-test entry point",
		Default:     "python",
	},
	"test_entry": {
		Path:        "test_entry",
		Type:        TypeString,
		Description: "Test entry file inside package_dir (empty = <package>_test.py)",
		Default:     "",
	},
	"lint_command": {
		Path:        "lint_command",
		Type:        TypeString,
		Description: "Static-analysis tool run over the package sources",
		Default:     "pylint",
	},
	"lint_args": {
		Path:        "lint_args",
		Type:        TypeStringList,
		Description: "Arguments passed to the linter before the file list",
		Default:     []string{"-E"},
	},
	"source_glob": {
		Path:        "source_glob",
		Type:        TypeString,
		Description: "Glob of source files handed to the linter, relative to package_dir",
		Default:     "*.py",
	},
	"progress": {
		Path:        "progress",
		Type:        TypeBool,
		Description: "Show a spinner while a step runs (TTY only)",
		Default:     false,
	},
	"quiet": {
		Path:        "quiet",
		Type:        TypeBool,
		Description: "Suppress step headers and command echo",
		Default:     false,
	},
	"watch_debounce_ms": {
		Path:        "watch_debounce_ms",
		Type:        TypeInt,
		Description: "Debounce window for watch mode in milliseconds",
		Default:     400,
	},
}
