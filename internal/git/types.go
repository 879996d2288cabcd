// Package git provides Git operations for gitex.
// This file defines the data types produced by the tracking-status provider.
package git

import "strings"

// GoneCount is the sentinel count value reported when the remote-tracking
// reference configured for a branch no longer exists on the remote.
const GoneCount = "gone"

// AheadBehindRecord describes how one local branch relates to the remote
// reference it pushes to or pulls from.
//
// AheadCount and BehindCount each hold a numeric string ("0", "1", ...), the
// empty string when the dimension is unknown or not applicable, or GoneCount
// when the chosen remote reference is gone. Branch and RemoteRef are never
// empty: lines that cannot be attributed both are dropped during parsing.
type AheadBehindRecord struct {
	// Branch is the local branch short name.
	Branch string
	// RemoteRef is the remote reference used for display, chosen by the
	// push-preferred precedence rule.
	RemoteRef string
	// AheadCount is the number of commits the branch is ahead of RemoteRef.
	AheadCount string
	// BehindCount is the number of commits the branch is behind RemoteRef.
	BehindCount string
}

// IsGone reports whether the chosen remote reference no longer exists.
func (r AheadBehindRecord) IsGone() bool {
	return r.AheadCount == GoneCount
}

// Display renders the counts for branch annotation, e.g. "2↑ 3↓".
// A gone remote renders as "gone"; unknown dimensions are omitted.
func (r AheadBehindRecord) Display() string {
	if r.IsGone() {
		return GoneCount
	}

	parts := make([]string, 0, 2)
	if r.AheadCount != "" {
		parts = append(parts, r.AheadCount+"↑")
	}
	if r.BehindCount != "" {
		parts = append(parts, r.BehindCount+"↓")
	}
	return strings.Join(parts, " ")
}
