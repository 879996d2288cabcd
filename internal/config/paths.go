package config

import (
	"os"
	"path/filepath"

	"github.com/ashraful-asif/gitextensions/internal/constants"
	gitexerrors "github.com/ashraful-asif/gitextensions/internal/errors"
)

// GlobalConfigDir returns the user-wide configuration directory (~/.gitex).
func GlobalConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", gitexerrors.Wrap(err, "failed to resolve home directory")
	}
	return filepath.Join(home, constants.GitexHome), nil
}

// ProjectConfigDir returns the per-project configuration directory (.gitex),
// relative to the current working directory.
func ProjectConfigDir() string {
	return constants.GitexHome
}

// LogDir returns the directory where log files are written (~/.gitex/logs),
// creating it if necessary.
func LogDir() (string, error) {
	global, err := GlobalConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(global, constants.LogsDir)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", gitexerrors.Wrap(err, "failed to create log directory")
	}
	return dir, nil
}
