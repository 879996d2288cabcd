// Package git provides Git operations for gitex.
// This file defines the narrow execution boundary used by the tracking-status
// provider: run one git query, report exit success and captured stdout.
package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/ashraful-asif/gitextensions/internal/constants"
	gitexerrors "github.com/ashraful-asif/gitextensions/internal/errors"
)

// ExecResult is the outcome of one external git invocation.
// A non-success exit or empty output is a data condition for callers,
// never an error to propagate.
type ExecResult struct {
	// ExitedSuccessfully is true when the process exited with status zero.
	ExitedSuccessfully bool
	// StandardOutput is the captured stdout, which may be empty.
	StandardOutput string
}

// Executor runs a git query and returns its raw text output.
// Implementations must not return partial lines on failure paths they can
// detect; the provider treats whatever text arrives as authoritative.
type Executor interface {
	Execute(ctx context.Context, args ...string) ExecResult
}

// CLIExecutor implements Executor by invoking the git binary in a fixed
// working directory.
type CLIExecutor struct {
	gitBin  string
	workDir string
}

// NewCLIExecutor creates an Executor bound to the given working directory.
// An empty gitBin falls back to the configured default. An empty workDir is
// a programming error by the embedding application and fails loudly.
func NewCLIExecutor(gitBin, workDir string) (*CLIExecutor, error) {
	if workDir == "" {
		return nil, fmt.Errorf("work directory cannot be empty: %w", gitexerrors.ErrEmptyValue)
	}
	if gitBin == "" {
		gitBin = constants.DefaultGitBinary
	}
	return &CLIExecutor{gitBin: gitBin, workDir: workDir}, nil
}

// Execute runs the git command and captures stdout. Process failure,
// context cancellation, and non-zero exits all surface as
// ExitedSuccessfully == false with whatever stdout was produced.
func (e *CLIExecutor) Execute(ctx context.Context, args ...string) ExecResult {
	cmd := exec.CommandContext(ctx, e.gitBin, args...) //#nosec G204 -- args are constructed internally, not user input
	cmd.Dir = e.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return ExecResult{
		ExitedSuccessfully: err == nil,
		StandardOutput:     stdout.String(),
	}
}
