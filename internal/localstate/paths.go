// Package localstate owns the only durable client-side state: a small
// preferences file in the user's state directory.
package localstate

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	envHome       = "HEADSUP_STATE_DIR" // override for tests and packaging
	dirName       = ".headsup"          // default under $HOME
	prefsFilename = "prefs.json"
)

// DataDir returns the directory where local state is stored (~/.headsup).
// override wins over HEADSUP_STATE_DIR. The directory is created with 0700
// permissions if it does not exist.
func DataDir(override string) (string, error) {
	dir, err := resolveDir(override)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}

// resolveDir is DataDir without touching the filesystem.
func resolveDir(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if custom := os.Getenv(envHome); custom != "" {
		return custom, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine user home: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// PrefsPath returns the absolute path to the preferences file.
func PrefsPath(override string) (string, error) {
	dir, err := DataDir(override)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, prefsFilename), nil
}
