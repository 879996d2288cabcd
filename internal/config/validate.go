package config

import (
	"fmt"

	gitexerrors "github.com/ashraful-asif/gitextensions/internal/errors"
)

// validLogLevels are the accepted values for log.level.
var validLogLevels = map[string]bool{ //nolint:gochecknoglobals // Constant-like lookup table
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks a Config for invalid values. It returns the first problem
// found, wrapped with the matching sentinel so callers can categorize it.
func Validate(cfg *Config) error {
	if cfg == nil {
		return gitexerrors.ErrConfigNil
	}

	if cfg.Git.Binary == "" {
		return fmt.Errorf("%w: git.binary cannot be empty", gitexerrors.ErrConfigInvalidGit)
	}
	if cfg.Git.Timeout <= 0 {
		return fmt.Errorf("%w: git.timeout must be positive, got %s", gitexerrors.ErrConfigInvalidGit, cfg.Git.Timeout)
	}
	if !validLogLevels[cfg.Log.Level] {
		return fmt.Errorf("%w: log.level %q is not one of trace, debug, info, warn, error", gitexerrors.ErrConfigInvalidLog, cfg.Log.Level)
	}

	return nil
}
