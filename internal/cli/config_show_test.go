package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ashraful-asif/gitextensions/internal/config"
)

func TestWriteConfigYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeConfig(&buf, OutputText, config.DefaultConfig()))

	var decoded config.Config
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.True(t, decoded.Git.ShowAheadBehind)
	assert.Equal(t, "git", decoded.Git.Binary)
}

func TestWriteConfigJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeConfig(&buf, OutputJSON, config.DefaultConfig()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "Git")
}
