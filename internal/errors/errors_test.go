package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashraful-asif/gitextensions/internal/errors"
)

func TestWrapPreservesSentinel(t *testing.T) {
	err := errors.Wrap(errors.ErrGitOperation, "listing refs")
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrGitOperation))
	assert.Equal(t, "listing refs: git operation failed", err.Error())
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, errors.Wrap(nil, "anything"))
	assert.NoError(t, errors.Wrapf(nil, "anything %d", 42))
}

func TestWrapfFormats(t *testing.T) {
	err := errors.Wrapf(errors.ErrEmptyValue, "branch %q", "feature-x")
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrEmptyValue))
	assert.Contains(t, err.Error(), `branch "feature-x"`)
}
