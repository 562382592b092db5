// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// DefaultFrameworkPath returns the standard location of the RIASEC
// framework definition file. The file is optional; the classifier falls
// back to its embedded table when it is absent.
func DefaultFrameworkPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "riasec_framework.json"
	}
	return filepath.Join(home, ".local", "share", "riasec", "riasec_framework.json")
}
