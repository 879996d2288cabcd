// Package config provides configuration management for gitex with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. Environment variables (GITEX_* prefix)
//  2. Project config (.gitex/config.yaml)
//  3. Global config (~/.gitex/config.yaml)
//  4. Built-in defaults
//
// Each higher level completely overrides the lower level for the same key.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import other internal packages.
package config

import "time"

// Config is the root configuration structure for gitex.
type Config struct {
	// Git contains settings for git queries and repository access.
	Git GitConfig `yaml:"git" mapstructure:"git"`

	// Log contains settings for logging output.
	Log LogConfig `yaml:"log" mapstructure:"log"`
}

// GitConfig contains settings for git queries and repository access.
type GitConfig struct {
	// ShowAheadBehind gates the tracking-status feature entirely.
	// When false, branch annotation queries report no data.
	// Default: true
	ShowAheadBehind bool `yaml:"show_ahead_behind" mapstructure:"show_ahead_behind"`

	// Binary is the git executable to invoke.
	// Default: "git"
	Binary string `yaml:"binary" mapstructure:"binary"`

	// Remote is the conventional remote name used in help text and defaults.
	// Default: "origin"
	Remote string `yaml:"remote" mapstructure:"remote"`

	// Timeout bounds one git query invocation. The tracking layer itself
	// never times out; the caller applies this when building the context.
	// Default: 30s
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// LogConfig contains settings for logging output.
type LogConfig struct {
	// Level is the minimum level written to the log file
	// (trace, debug, info, warn, error). Console verbosity is governed
	// by the --verbose/--quiet flags instead.
	// Default: "info"
	Level string `yaml:"level" mapstructure:"level"`
}
