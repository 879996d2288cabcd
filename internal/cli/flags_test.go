package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gitexerrors "github.com/ashraful-asif/gitextensions/internal/errors"
)

func TestAddGlobalFlags(t *testing.T) {
	flags := &GlobalFlags{}
	cmd := &cobra.Command{Use: "test"}
	AddGlobalFlags(cmd, flags)

	require.NoError(t, cmd.ParseFlags([]string{"-o", "json", "-v", "-C", "/tmp/repo"}))
	assert.Equal(t, OutputJSON, flags.Output)
	assert.True(t, flags.Verbose)
	assert.False(t, flags.Quiet)
	assert.Equal(t, "/tmp/repo", flags.RepoDir)
}

func TestAddGlobalFlagsDefaults(t *testing.T) {
	flags := &GlobalFlags{}
	cmd := &cobra.Command{Use: "test"}
	AddGlobalFlags(cmd, flags)

	require.NoError(t, cmd.ParseFlags(nil))
	assert.Equal(t, OutputText, flags.Output)
	assert.Equal(t, ".", flags.RepoDir)
}

func TestBindGlobalFlags(t *testing.T) {
	flags := &GlobalFlags{}
	cmd := &cobra.Command{Use: "test"}
	AddGlobalFlags(cmd, flags)

	v := viper.New()
	require.NoError(t, BindGlobalFlags(v, cmd))
	assert.Equal(t, OutputText, v.GetString("output"))
}

func TestIsValidOutputFormat(t *testing.T) {
	tests := []struct {
		format string
		valid  bool
	}{
		{OutputText, true},
		{OutputJSON, true},
		{"", false},
		{"yaml", false},
		{"JSON", false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("format=%q", tt.format), func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidOutputFormat(tt.format))
		})
	}
}

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: ExitSuccess},
		{name: "generic error", err: errors.New("boom"), want: ExitError},
		{
			name: "invalid output format sentinel",
			err:  fmt.Errorf("%w: %q", gitexerrors.ErrInvalidOutputFormat, "yaml"),
			want: ExitInvalidInput,
		},
		{name: "unknown flag", err: errors.New("unknown flag: --frobnicate"), want: ExitInvalidInput},
		{name: "unknown command", err: errors.New(`unknown command "frob" for "gitex"`), want: ExitInvalidInput},
		{name: "too many args", err: errors.New("accepts at most 1 arg(s), received 2"), want: ExitInvalidInput},
		{name: "git failure", err: gitexerrors.Wrap(gitexerrors.ErrGitOperation, "status"), want: ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeForError(tt.err))
		})
	}
}
