// Package progress holds the counters shared between the engine worker and
// the presentation layer. The UI polls them while a pass runs; the engine
// only ever increments. No cross-counter consistency is required, so plain
// atomic operations are sufficient.
package progress

import "sync/atomic"

// Counters are the four shared counters of one engine pass. The zero value
// is ready to use.
type Counters struct {
	total     atomic.Int64
	processed atomic.Int64
	found     atomic.Int64
	running   atomic.Bool
}

// Reset zeroes the counters. Called only at the start of a new pass.
func (c *Counters) Reset() {
	c.total.Store(0)
	c.processed.Store(0)
	c.found.Store(0)
}

// SetTotal publishes the number of files the pass will examine.
func (c *Counters) SetTotal(n int64) { c.total.Store(n) }

// IncProcessed bumps the processed-files counter.
func (c *Counters) IncProcessed() { c.processed.Add(1) }

// IncFound bumps the brackets-found counter.
func (c *Counters) IncFound() { c.found.Add(1) }

func (c *Counters) Total() int64     { return c.total.Load() }
func (c *Counters) Processed() int64 { return c.processed.Load() }
func (c *Counters) Found() int64     { return c.found.Load() }

// SetRunning flips the running flag.
func (c *Counters) SetRunning(v bool) { c.running.Store(v) }

// Running reports whether a pass is in flight.
func (c *Counters) Running() bool { return c.running.Load() }

// StartRunning atomically claims the running flag. It returns false when a
// pass already holds it.
func (c *Counters) StartRunning() bool {
	return c.running.CompareAndSwap(false, true)
}
