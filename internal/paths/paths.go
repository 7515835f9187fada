// Package paths resolves the on-disk locations used by the volcano tools:
// config file, catalog database, and log directory, all under the user's
// config dir.
package paths

import (
	"os"
	"path/filepath"
)

// AppDir returns the volcano config directory, typically ~/.config/volcano.
func AppDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "volcano"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// DatabasePath returns the path to the volcano catalog database.
func DatabasePath() (string, error) {
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "catalog.db"), nil
}

// LogPath returns the default log file path.
func LogPath() (string, error) {
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "logs", "volcano.log"), nil
}
