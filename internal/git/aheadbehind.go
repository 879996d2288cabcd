// Package git provides Git operations for gitex.
// This file implements the ahead/behind tracking-status provider: it queries
// git for-each-ref, decomposes each output line with the tracking grammar,
// and resolves the push-preferred precedence policy into one record per
// branch.
package git

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ashraful-asif/gitextensions/internal/constants"
	gitexerrors "github.com/ashraful-asif/gitextensions/internal/errors"
)

// aheadBehindRefFormat is the per-branch query format. Five fields joined by
// a double-colon delimiter that git guarantees cannot appear inside any of
// them: push tracking, upstream tracking, push remote ref, upstream remote
// ref, branch short name. The nobracket modifier strips the surrounding
// "[...]" from the tracking summaries.
const aheadBehindRefFormat = "%(push:track,nobracket)::%(upstream:track,nobracket)::%(push)::%(upstream)::%(refname:short)"

// localBranchRefPrefix restricts the query to local branch refs. Appending a
// branch short name narrows it to that single ref.
const localBranchRefPrefix = "refs/heads/"

// trackingLineRegex decomposes one for-each-ref output line. Each tracking
// side is one of: "gone", an "ahead N"/"behind N" pair (either optional),
// free text that git could not be told to translate (e.g. localized output),
// or entirely empty (in sync). The three shapes are mutually exclusive
// within a side.
var trackingLineRegex = regexp.MustCompile(
	`(?m)^((?P<gone_p>gone)|((ahead (?P<ahead_p>\d+))?(, )?(behind (?P<behind_p>\d+))?)|(?P<unk_p>.*?))` +
		`::((?P<gone_u>gone)|((ahead (?P<ahead_u>\d+))?(, )?(behind (?P<behind_u>\d+))?)|(?P<unk_u>.*?))` +
		`::(?P<remote_p>.*?)::(?P<remote_u>.*?)::(?P<branch>.*)$`)

// trackingFields is the decomposed form of one output line. A field holds
// the empty string when its group did not participate in the match; for
// every group this parser inspects, emptiness and absence coincide.
type trackingFields struct {
	goneP, aheadP, behindP, unkP string
	goneU, aheadU, behindU, unkU string
	remoteP, remoteU             string
	branch                       string
}

// resolve applies the precedence policy and reports whether the line yields
// a record at all. The push remote is preferred for display, but a push ref
// that exists purely from a configured push-refspec while the branch tracks
// nothing (signaled by a gone push side) defers to the upstream value.
func (f trackingFields) resolve() (AheadBehindRecord, bool) {
	remoteRef := f.remoteU
	if f.remoteP != "" && f.goneP == "" {
		remoteRef = f.remoteP
	}
	if f.branch == "" || remoteRef == "" {
		return AheadBehindRecord{}, false
	}

	record := AheadBehindRecord{Branch: f.branch, RemoteRef: remoteRef}

	switch {
	case f.aheadP != "":
		record.AheadCount = f.aheadP
	case f.behindP != "":
		// The push side reported only "behind": ahead is not applicable.
		record.AheadCount = ""
	case f.aheadU != "":
		record.AheadCount = f.aheadU
	case f.goneP != "" || f.goneU != "":
		record.AheadCount = GoneCount
	case strings.TrimSpace(f.unkP) != "" || strings.TrimSpace(f.unkU) != "":
		// The tracking text could not be parsed, possibly localized git
		// output. The counts are unknown, not zero.
		record.AheadCount = ""
	default:
		// A remote exists and tracking reported nothing: fully in sync.
		record.AheadCount = "0"
	}

	switch {
	case f.behindP != "":
		record.BehindCount = f.behindP
	case f.aheadP == "":
		// No push counts at all: use the upstream value, which stays empty
		// when the upstream reported nothing. Git omits a dimension that is
		// zero, so an absent behind is never invented as "0".
		record.BehindCount = f.behindU
	default:
		// Push reported an ahead count without a behind count.
		record.BehindCount = ""
	}

	return record, true
}

// groupIndexes caches the submatch index of every named group once.
var groupIndexes = func() map[string]int { //nolint:gochecknoglobals // Derived from the compiled regexp
	m := make(map[string]int)
	for i, name := range trackingLineRegex.SubexpNames() {
		if name != "" {
			m[name] = i
		}
	}
	return m
}()

func fieldsFromMatch(match []string) trackingFields {
	group := func(name string) string { return match[groupIndexes[name]] }
	return trackingFields{
		goneP:   group("gone_p"),
		aheadP:  group("ahead_p"),
		behindP: group("behind_p"),
		unkP:    group("unk_p"),
		goneU:   group("gone_u"),
		aheadU:  group("ahead_u"),
		behindU: group("behind_u"),
		unkU:    group("unk_u"),
		remoteP: group("remote_p"),
		remoteU: group("remote_u"),
		branch:  group("branch"),
	}
}

// parseTrackingStatus decomposes the full multi-line query output into one
// record per attributable branch line. Lines without a branch name or a
// resolvable remote reference are dropped silently.
func parseTrackingStatus(output string) map[string]AheadBehindRecord {
	matches := trackingLineRegex.FindAllStringSubmatch(output, -1)
	records := make(map[string]AheadBehindRecord, len(matches))
	for _, match := range matches {
		if record, ok := fieldsFromMatch(match).resolve(); ok {
			records[record.Branch] = record
		}
	}
	return records
}

// AheadBehindProvider computes ahead/behind tracking data for local branches
// and memoizes the result per query scope. It owns one cache slot guarded by
// one mutex; the computation itself runs outside the lock and is shared by
// every caller that observes the same cache generation.
type AheadBehindProvider struct {
	executor Executor
	logger   zerolog.Logger
	enabled  bool

	mu    sync.Mutex
	scope string // branch short name; "" means all branches
	cell  *trackingCell
}

// NewAheadBehindProvider creates a provider over the given executor.
// A nil executor is a misconfiguration by the embedding application and
// fails loudly; it is not a runtime condition. The enabled flag gates the
// feature entirely: a disabled provider always reports no data.
func NewAheadBehindProvider(executor Executor, enabled bool, logger zerolog.Logger) (*AheadBehindProvider, error) {
	if executor == nil {
		return nil, fmt.Errorf("executor cannot be nil: %w", gitexerrors.ErrEmptyValue)
	}
	return &AheadBehindProvider{
		executor: executor,
		logger:   logger,
		enabled:  enabled,
	}, nil
}

// GetData returns tracking records keyed by branch short name. An empty
// branchName covers all local branches. It returns nil when the feature is
// disabled, the branch is the detached pseudo-branch, the query fails, or
// the query produces no output; none of these are errors.
//
// Results are cached per scope until ResetCache is called. Concurrent
// callers of the same generation share a single query execution; the context
// of the caller that starts the computation governs it.
func (p *AheadBehindProvider) GetData(ctx context.Context, branchName string) map[string]AheadBehindRecord {
	if !p.enabled {
		return nil
	}
	if branchName == constants.DetachedBranch {
		return nil
	}

	cell := p.acquireCell(ctx, branchName)
	result := cell.wait()
	if result == nil {
		// Failed or empty computations are not cached: evict so the next
		// request recomputes from scratch.
		p.evict(cell)
	}
	return result
}

// ResetCache clears all cached state unconditionally. The next GetData call
// recomputes from scratch.
func (p *AheadBehindProvider) ResetCache() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cell = nil
	p.scope = ""
}

// acquireCell returns the cache cell for the requested scope, creating a new
// generation when the cache is empty. A request for all branches while a
// single-branch result is cached resets first; any other overlap reuses the
// existing cell (callers are responsible for requesting narrower scopes only
// when a broader cache is unnecessary).
func (p *AheadBehindProvider) acquireCell(ctx context.Context, branchName string) *trackingCell {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cell != nil {
		if branchName == "" && p.scope != "" {
			p.logger.Warn().
				Str("cached_scope", p.scope).
				Msg("ahead/behind cache widened from branch scope to all branches; resetting")
			p.cell = nil
		} else {
			return p.cell
		}
	}

	scope := branchName
	cell := &trackingCell{}
	cell.compute = func() map[string]AheadBehindRecord {
		return p.query(ctx, scope)
	}
	p.cell = cell
	p.scope = scope
	return cell
}

// evict drops the cell if it is still the current generation. A reset or a
// newer generation installed in the meantime is left untouched.
func (p *AheadBehindProvider) evict(cell *trackingCell) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cell == cell {
		p.cell = nil
		p.scope = ""
	}
}

// query executes the for-each-ref query for the scope and parses its output.
func (p *AheadBehindProvider) query(ctx context.Context, branchName string) map[string]AheadBehindRecord {
	result := p.executor.Execute(ctx, "for-each-ref", "--format="+aheadBehindRefFormat, localBranchRefPrefix+branchName)
	if !result.ExitedSuccessfully || result.StandardOutput == "" {
		p.logger.Debug().
			Bool("exited_successfully", result.ExitedSuccessfully).
			Str("scope", branchName).
			Msg("ahead/behind query produced no data")
		return nil
	}
	return parseTrackingStatus(result.StandardOutput)
}
