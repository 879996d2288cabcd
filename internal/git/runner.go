// Package git provides Git operations for gitex.
// This file implements the small Runner used by the CLI to resolve the
// repository and the current branch before tracking data is requested.
package git

import (
	"context"
	"fmt"

	"github.com/ashraful-asif/gitextensions/internal/constants"
	"github.com/ashraful-asif/gitextensions/internal/ctxutil"
	gitexerrors "github.com/ashraful-asif/gitextensions/internal/errors"
)

// Runner answers repository-level questions via the git CLI.
type Runner struct {
	workDir string
}

// NewRunner creates a Runner for the given working directory.
// Returns an error if the directory is not inside a git repository.
func NewRunner(ctx context.Context, workDir string) (*Runner, error) {
	if workDir == "" {
		return nil, fmt.Errorf("work directory cannot be empty: %w", gitexerrors.ErrEmptyValue)
	}

	r := &Runner{workDir: workDir}

	if _, err := RunCommand(ctx, workDir, "rev-parse", "--git-dir"); err != nil {
		return nil, fmt.Errorf("%w: %w", gitexerrors.ErrNotGitRepo, err)
	}

	return r, nil
}

// CurrentBranch returns the name of the currently checked out branch, or the
// detached pseudo-branch name when HEAD does not point at a branch. Tracking
// data is never computed for the pseudo-branch; callers pass it through.
func (r *Runner) CurrentBranch(ctx context.Context) (string, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return "", err
	}

	output, err := RunCommand(ctx, r.workDir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}

	if output == "HEAD" {
		return constants.DetachedBranch, nil
	}

	return output, nil
}

// RepoRoot returns the absolute path of the repository's top-level directory.
func (r *Runner) RepoRoot(ctx context.Context) (string, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return "", err
	}

	output, err := RunCommand(ctx, r.workDir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("failed to get repository root: %w", err)
	}

	return output, nil
}
