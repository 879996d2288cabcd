package config

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/ashraful-asif/gitextensions/internal/constants"
	"github.com/ashraful-asif/gitextensions/internal/ctxutil"
	gitexerrors "github.com/ashraful-asif/gitextensions/internal/errors"
)

// newViperInstance creates a new Viper instance with the standard gitex
// configuration: defaults, GITEX_ environment prefix, and key replacer.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// viperDecoderOption returns the decode hooks used when unmarshaling the
// config, notably string-to-duration for git.timeout.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
}

// isConfigNotFoundError returns true if the error is a viper config file not
// found error. Missing config files are expected in most checkouts.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var notFound viper.ConfigFileNotFoundError
	return stderrors.As(err, &notFound)
}

// Load reads configuration from all available sources with proper precedence:
// environment variables (GITEX_*) over project config (.gitex/config.yaml)
// over global config (~/.gitex/config.yaml) over built-in defaults.
//
// The function returns an error only for actual configuration problems, not
// for missing config files.
func Load(ctx context.Context) (*Config, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	v := newViperInstance()

	if err := loadGlobalConfig(v); err != nil {
		return nil, err
	}
	if err := loadProjectConfig(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, gitexerrors.Wrap(err, "failed to unmarshal config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, gitexerrors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// loadGlobalConfig merges the user-wide config file, if present.
func loadGlobalConfig(v *viper.Viper) error {
	dir, err := GlobalConfigDir()
	if err != nil {
		// No home directory means no global config; not an error.
		return nil
	}

	v.SetConfigName(strings.TrimSuffix(constants.ConfigFileName, ".yaml"))
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
		return gitexerrors.Wrap(err, "failed to read global config")
	}
	return nil
}

// loadProjectConfig merges the per-project config file, if present.
func loadProjectConfig(v *viper.Viper) error {
	project := viper.New()
	project.SetConfigName(strings.TrimSuffix(constants.ConfigFileName, ".yaml"))
	project.SetConfigType("yaml")
	project.AddConfigPath(ProjectConfigDir())

	if err := project.ReadInConfig(); err != nil {
		if isConfigNotFoundError(err) {
			return nil
		}
		return gitexerrors.Wrap(err, "failed to read project config")
	}

	return gitexerrors.Wrap(v.MergeConfigMap(project.AllSettings()), "failed to merge project config")
}
