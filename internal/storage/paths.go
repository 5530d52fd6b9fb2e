// Package storage persists saved positions and viewer preferences.
package storage

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "chessboard"

// baseDataDir is the per-user root that application data lives under.
// Linux and the BSDs follow the XDG data directory; macOS and Windows keep
// data next to configuration, which os.UserConfigDir already resolves.
func baseDataDir() (string, error) {
	switch runtime.GOOS {
	case "darwin", "windows", "ios", "plan9":
		return os.UserConfigDir()
	}
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share"), nil
}

func ensureDir(elem ...string) (string, error) {
	dir := filepath.Join(elem...)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// GetDataDir returns the chessboard directory under the user's data root,
// creating it if needed.
func GetDataDir() (string, error) {
	base, err := baseDataDir()
	if err != nil {
		return "", err
	}
	return ensureDir(base, appName)
}

// GetDatabaseDir returns the Badger directory inside GetDataDir.
func GetDatabaseDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return ensureDir(dataDir, "db")
}
