package constants_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ashraful-asif/gitextensions/internal/constants"
)

func TestDetachedBranchSentinel(t *testing.T) {
	// The pseudo-branch name is part of the caller-visible contract and
	// must never collide with a real ref name.
	assert.Equal(t, "(no branch)", constants.DetachedBranch)
	assert.Contains(t, constants.DetachedBranch, " ")
}

func TestGitDefaults(t *testing.T) {
	assert.Equal(t, "git", constants.DefaultGitBinary)
	assert.Equal(t, "origin", constants.DefaultRemote)
}
