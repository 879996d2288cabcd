// Package cli provides the command-line interface for gitex.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ashraful-asif/gitextensions/internal/config"
	"github.com/ashraful-asif/gitextensions/internal/ctxutil"
	"github.com/ashraful-asif/gitextensions/internal/git"
	"github.com/ashraful-asif/gitextensions/internal/tui"
)

// BranchTracker supplies ahead/behind tracking data for branches.
// Used for dependency injection in tests.
type BranchTracker interface {
	GetData(ctx context.Context, branchName string) map[string]git.AheadBehindRecord
}

// HeadResolver reports the currently checked out branch.
// Used for dependency injection in tests.
type HeadResolver interface {
	CurrentBranch(ctx context.Context) (string, error)
}

// branchRow is one rendered branch annotation, also the JSON output shape.
type branchRow struct {
	Branch    string `json:"branch"`
	RemoteRef string `json:"remote_ref"`
	Ahead     string `json:"ahead"`
	Behind    string `json:"behind"`
	Current   bool   `json:"current"`
}

// AddBranchesCommand adds the branches command to the root command.
func AddBranchesCommand(parent *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "branches [branch]",
		Short: "Show ahead/behind tracking status for branches",
		Long: `Display how far each local branch is ahead of and behind the remote
reference it pushes to (preferred) or pulls from.

Counts come from git's own tracking summaries:
  • AHEAD  - commits the branch has that the remote reference lacks
  • BEHIND - commits the remote reference has that the branch lacks
  • gone   - the configured remote reference no longer exists

With no argument all local branches are shown; pass a branch name to
restrict the query to that one ref.

Examples:
  gitex branches                 # all local branches
  gitex branches feature-x       # a single branch
  gitex branches --output json   # machine-readable output`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			branchName := ""
			if len(args) == 1 {
				branchName = args[0]
			}
			return runBranches(cmd.Context(), os.Stdout, flags, branchName)
		},
	}
	parent.AddCommand(cmd)
}

// runBranches executes the branches command with production dependencies.
func runBranches(ctx context.Context, w io.Writer, flags *GlobalFlags, branchName string) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	tui.CheckNoColor()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	runner, err := git.NewRunner(ctx, flags.RepoDir)
	if err != nil {
		return err
	}

	executor, err := git.NewCLIExecutor(cfg.Git.Binary, flags.RepoDir)
	if err != nil {
		return err
	}

	provider, err := git.NewAheadBehindProvider(executor, cfg.Git.ShowAheadBehind, GetLogger())
	if err != nil {
		return err
	}

	// The tracking layer applies no timeout of its own; the query context
	// carries the caller's policy.
	queryCtx, cancel := context.WithTimeout(ctx, cfg.Git.Timeout)
	defer cancel()

	return runBranchesWithDeps(queryCtx, w, flags.Output, branchName, provider, runner)
}

// runBranchesWithDeps executes the branches command with injected
// dependencies. This enables testing with mock implementations.
func runBranchesWithDeps(
	ctx context.Context,
	w io.Writer,
	output string,
	branchName string,
	tracker BranchTracker,
	head HeadResolver,
) error {
	var (
		currentBranch string
		data          map[string]git.AheadBehindRecord
	)

	// HEAD resolution and the tracking query are independent git calls.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		currentBranch, err = head.CurrentBranch(gctx)
		return err
	})
	g.Go(func() error {
		data = tracker.GetData(gctx, branchName)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if data == nil {
		if output == OutputJSON {
			return tui.WriteJSON(w, nil)
		}
		_, _ = fmt.Fprintln(w, "No tracking data available.")
		return nil
	}

	rows := buildBranchRows(data, currentBranch)

	if output == OutputJSON {
		return tui.WriteJSON(w, rows)
	}

	writeBranchTable(w, rows)
	return nil
}

// buildBranchRows converts the result set into display rows sorted by
// branch name, with the current branch flagged.
func buildBranchRows(data map[string]git.AheadBehindRecord, currentBranch string) []branchRow {
	rows := make([]branchRow, 0, len(data))
	for _, record := range data {
		rows = append(rows, branchRow{
			Branch:    record.Branch,
			RemoteRef: record.RemoteRef,
			Ahead:     record.AheadCount,
			Behind:    record.BehindCount,
			Current:   record.Branch == currentBranch,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Branch < rows[j].Branch })
	return rows
}

// writeBranchTable renders the rows as a styled table.
func writeBranchTable(w io.Writer, rows []branchRow) {
	table := tui.NewTable(w, []tui.TableColumn{
		{Name: "BRANCH", Width: 28, Align: tui.AlignLeft},
		{Name: "REMOTE", Width: 32, Align: tui.AlignLeft},
		{Name: "AHEAD", Width: 5, Align: tui.AlignRight},
		{Name: "BEHIND", Width: 6, Align: tui.AlignRight},
	})
	styles := table.Styles()

	table.WriteHeader()
	for _, row := range rows {
		branchCell := row.Branch
		if row.Current {
			branchCell = "* " + row.Branch
		}

		values := []string{branchCell, row.RemoteRef, row.Ahead, row.Behind}

		var styled []tui.CellStyle
		switch {
		case row.Ahead == git.GoneCount:
			styled = append(styled, tui.CellStyle{Index: 2, Rendered: styles.Gone.Render(row.Ahead)})
		case row.Ahead != "" && row.Ahead != "0":
			styled = append(styled, tui.CellStyle{Index: 2, Rendered: styles.Ahead.Render(row.Ahead)})
		}
		if row.Behind != "" && row.Behind != "0" {
			styled = append(styled, tui.CellStyle{Index: 3, Rendered: styles.Behind.Render(row.Behind)})
		}

		if len(styled) > 0 {
			table.WriteStyledRow(values, styled)
		} else {
			table.WriteRow(values...)
		}
	}
}
