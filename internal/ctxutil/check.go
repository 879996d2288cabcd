// Package ctxutil provides context utility functions.
package ctxutil

import "context"

// Canceled checks if the context has been canceled or exceeded its deadline.
// Returns the context error if done (Canceled or DeadlineExceeded), nil otherwise.
// Used at function entry points across the codebase so blocking git work is
// never started on a dead context.
func Canceled(ctx context.Context) error {
	return ctx.Err()
}
