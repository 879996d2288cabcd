// Package constants provides centralized constant values used throughout gitex.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

// AppName is the binary and product name.
const AppName = "gitex"

// Directory and file names used by gitex for configuration and logs.
const (
	// GitexHome is the hidden directory name where gitex stores its data.
	// This directory is created in the user's home directory.
	GitexHome = ".gitex"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// ConfigFileName is the name of the YAML configuration file, looked up
	// both globally (~/.gitex/config.yaml) and per project (.gitex/config.yaml).
	ConfigFileName = "config.yaml"
)

// EnvPrefix is the prefix for environment variable overrides (GITEX_*).
const EnvPrefix = "GITEX"

// Git-related constants.
const (
	// DetachedBranch is the pseudo-branch name reported when HEAD is detached.
	// Tracking data is never computed for it.
	DetachedBranch = "(no branch)"

	// DefaultGitBinary is the git executable used when none is configured.
	DefaultGitBinary = "git"

	// DefaultRemote is the conventional remote name.
	DefaultRemote = "origin"
)
