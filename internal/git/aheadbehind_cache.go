// Package git provides Git operations for gitex.
// This file holds the single-flight result cell backing the ahead/behind
// cache: the first waiter runs the computation, every other waiter of the
// same generation blocks on it and observes the identical result.
package git

import "sync"

// trackingCell is one cache generation. The computation runs at most once,
// outside the provider lock, so a slow git query blocks only callers
// awaiting this generation's result.
type trackingCell struct {
	once    sync.Once
	compute func() map[string]AheadBehindRecord
	result  map[string]AheadBehindRecord
}

// wait runs the computation on first access and returns the shared result.
// The compute closure is released once it has run; the result, possibly nil,
// stays pinned for the lifetime of the generation.
func (c *trackingCell) wait() map[string]AheadBehindRecord {
	c.once.Do(func() {
		c.result = c.compute()
		c.compute = nil
	})
	return c.result
}
