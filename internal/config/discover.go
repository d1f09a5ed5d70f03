package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvConfigPath names the environment variable that overrides discovery.
const EnvConfigPath = "DRACIN_CONFIG"

// DefaultPath returns $XDG_CONFIG_HOME/dracin/config.toml, falling back to
// ~/.config and finally the working directory.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "dracin", "config.toml")
}

// SearchPaths lists the locations Discover checks, in order, when
// DRACIN_CONFIG is unset.
func SearchPaths() []string {
	return []string{
		"config.toml",
		DefaultPath(),
		"/etc/dracin/config.toml",
	}
}

// Discover returns the config file to load. DRACIN_CONFIG wins and must
// exist; otherwise the first existing entry of SearchPaths is used.
func Discover() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("%s=%s: %w", EnvConfigPath, p, err)
		}
		return p, nil
	}

	paths := SearchPaths()
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("config not found, checked: %s (run 'dracin init' to create one)", strings.Join(paths, ", "))
}
