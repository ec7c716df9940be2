// Package config resolves user-supplied configuration values.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath resolves the database path from the config file or
// environment. Both spellings users reach for are supported: a leading ~
// for the home directory and $VAR environment references, so
// "~/.local/share/expense-tracker/expenses.db" and
// "$HOME/.local/share/expense-tracker/expenses.db" name the same file.
func ExpandPath(path string) string {
	switch {
	case path == "~":
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	case strings.HasPrefix(path, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~/"))
		}
	}

	return os.ExpandEnv(path)
}
