// Package git provides Git operations for gitex.
// This file provides shared git command execution utilities.
package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ashraful-asif/gitextensions/internal/constants"
	gitexerrors "github.com/ashraful-asif/gitextensions/internal/errors"
)

// RunCommand executes a git command in the specified directory and returns its
// trimmed stdout. All errors are wrapped with ErrGitOperation and include
// stderr for debugging. Unlike the Executor boundary, callers of RunCommand
// do want failures as errors (repository discovery, HEAD resolution).
func RunCommand(ctx context.Context, workDir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, constants.DefaultGitBinary, args...) //#nosec G204 -- args are constructed internally, not user input
	cmd.Dir = workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if stderr.Len() > 0 {
			return "", fmt.Errorf("git %s failed: %s: %w", args[0], strings.TrimSpace(stderr.String()), gitexerrors.ErrGitOperation)
		}
		return "", fmt.Errorf("git %s failed: %w", args[0], gitexerrors.ErrGitOperation)
	}

	return strings.TrimSpace(stdout.String()), nil
}
