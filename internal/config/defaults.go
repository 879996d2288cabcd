package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/ashraful-asif/gitextensions/internal/constants"
)

// DefaultGitTimeout bounds a single git query made on behalf of the CLI.
const DefaultGitTimeout = 30 * time.Second

// DefaultConfig returns a new Config with sensible default values.
// These defaults are the base layer that config files, environment
// variables, and flags override.
func DefaultConfig() *Config {
	return &Config{
		Git: GitConfig{
			// ShowAheadBehind: branch annotation is the point of the tool,
			// so the feature is on unless explicitly disabled.
			ShowAheadBehind: true,

			Binary:  constants.DefaultGitBinary,
			Remote:  constants.DefaultRemote,
			Timeout: DefaultGitTimeout,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// setDefaults registers the default values on a viper instance so partial
// config files merge over a complete base.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("git.show_ahead_behind", defaults.Git.ShowAheadBehind)
	v.SetDefault("git.binary", defaults.Git.Binary)
	v.SetDefault("git.remote", defaults.Git.Remote)
	v.SetDefault("git.timeout", defaults.Git.Timeout)
	v.SetDefault("log.level", defaults.Log.Level)
}
