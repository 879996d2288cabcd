package tui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashraful-asif/gitextensions/internal/tui"
)

func newBranchTable(buf *bytes.Buffer) *tui.Table {
	return tui.NewTable(buf, []tui.TableColumn{
		{Name: "BRANCH", Width: 10, Align: tui.AlignLeft},
		{Name: "REMOTE", Width: 14, Align: tui.AlignLeft},
		{Name: "AHEAD", Width: 5, Align: tui.AlignRight},
		{Name: "BEHIND", Width: 6, Align: tui.AlignRight},
	})
}

func TestTableHeaderAndRows(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	tui.CheckNoColor()

	var buf bytes.Buffer
	table := newBranchTable(&buf)
	table.WriteHeader()
	table.WriteRow("main", "origin/main", "0", "")
	table.WriteRow("feature", "origin/main", "2", "3")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "BRANCH")
	assert.Contains(t, lines[1], "main")
	assert.Contains(t, lines[2], "feature")
	// Right-aligned counts end the row.
	assert.True(t, strings.HasSuffix(lines[2], "3"))
}

func TestTableTruncatesLongValues(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	tui.CheckNoColor()

	var buf bytes.Buffer
	table := newBranchTable(&buf)
	table.WriteRow("a-very-long-branch-name", "origin/main", "0", "")

	assert.Contains(t, buf.String(), "…")
	assert.NotContains(t, buf.String(), "a-very-long-branch-name")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, tui.WriteJSON(&buf, map[string]string{"branch": "main"}))
	assert.JSONEq(t, `{"branch":"main"}`, buf.String())
}
