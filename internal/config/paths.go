package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file.
// This follows the XDG Base Directory Specification:
// - Linux: ~/.config/cicheck/config.yml
// - macOS: ~/Library/Application Support/cicheck/config.yml
// - Windows: %APPDATA%\cicheck\config.yml
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "cicheck", "config.yml"), nil
}

// ProjectConfigPath returns the path to the project-level config file.
// This is always .cicheck/config.yml relative to the current directory.
func ProjectConfigPath() string {
	return filepath.Join(".cicheck", "config.yml")
}

// ProjectConfigDir returns the path to the project-level config directory.
func ProjectConfigDir() string {
	return ".cicheck"
}

// LegacyUserConfigPath returns the path to the legacy user-level JSON config
// file at ~/.cicheck/config.json.
func LegacyUserConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".cicheck", "config.json"), nil
}

// LegacyProjectConfigPath returns the path to the legacy project-level JSON
// config file at .cicheck/config.json.
func LegacyProjectConfigPath() string {
	return filepath.Join(".cicheck", "config.json")
}
