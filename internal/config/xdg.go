// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

const appName = "breaker"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}

// DefaultWordsDir returns the directory relative word files resolve against.
func DefaultWordsDir() string {
	return filepath.Join(XDGConfigHome(), appName, "words")
}

// ResolveWordsPath makes a configured word file path absolute. Relative paths
// are taken from the words directory.
func ResolveWordsPath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(DefaultWordsDir(), path)
}
