// Package main provides the entry point for the gitex CLI.
package main

import (
	"context"
	"os"

	"github.com/ashraful-asif/gitextensions/internal/cli"
)

// Build information set via ldflags.
//
//nolint:gochecknoglobals // Populated by the linker
var (
	version string
	commit  string
	date    string
)

func main() {
	ctx := context.Background()
	info := cli.BuildInfo{Version: version, Commit: commit, Date: date}
	if err := cli.Execute(ctx, info); err != nil {
		os.Exit(cli.ExitCodeForError(err))
	}
}
