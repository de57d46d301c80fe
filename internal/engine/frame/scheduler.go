// Package frame provides the frame scheduler that drives camera animation.
//
// Animation code never reads the wall clock or sleeps. It asks a Scheduler
// for the next frame or for a delayed callback, which keeps orbit and tour
// logic deterministic under a manually pumped Loop.
package frame

import "time"

// ID identifies a pending frame request or timer.
type ID uint64

// Scheduler is the injected "animate next frame" capability.
type Scheduler interface {
	// Now returns the scheduler's current time.
	Now() time.Time
	// RequestFrame runs fn once on the next frame with that frame's time.
	RequestFrame(fn func(now time.Time)) ID
	// After runs fn once d has elapsed on the scheduler's clock.
	After(d time.Duration, fn func()) ID
	// Cancel drops a pending request. Unknown or fired IDs are ignored.
	Cancel(id ID)
}
