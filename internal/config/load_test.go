package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test,
// standing in for testing.T.Chdir which requires Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restore working directory: %v", err)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadProjectConfigOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".gitex"), 0o750))
	content := "git:\n  remote: upstream\n  timeout: 5s\n  show_ahead_behind: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitex", "config.yaml"), []byte(content), 0o600))

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "upstream", cfg.Git.Remote)
	assert.Equal(t, 5*time.Second, cfg.Git.Timeout)
	assert.False(t, cfg.Git.ShowAheadBehind)
	// Untouched keys keep their defaults.
	assert.Equal(t, "git", cfg.Git.Binary)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GITEX_GIT_REMOTE", "fork")
	t.Setenv("GITEX_LOG_LEVEL", "debug")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "fork", cfg.Git.Remote)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadInvalidProjectConfig(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".gitex"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitex", "config.yaml"), []byte("log:\n  level: loud\n"), 0o600))

	_, err := Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
