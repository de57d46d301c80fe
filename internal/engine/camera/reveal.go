package camera

import (
	gomath "math"
	"time"

	"go.uber.org/zap"

	"github.com/civicmap/cinematic/internal/engine/easing"
)

// RevealOptions controls RevealLocation.
type RevealOptions struct {
	// ZoomOut is how far above the target the overhead vantage sits.
	ZoomOut float64
	// Delay between the jump and the fly-in, letting the vantage render.
	Delay    time.Duration
	Duration time.Duration
}

// DefaultRevealOptions returns a four-level descent after 100ms.
func DefaultRevealOptions() RevealOptions {
	return RevealOptions{
		ZoomOut:  4,
		Delay:    100 * time.Millisecond,
		Duration: 3 * time.Second,
	}
}

// Vantage returns the top-down pose zoomOut levels above target.
func Vantage(target Pose, zoomOut float64) Pose {
	return Pose{
		Center: target.Center,
		Zoom:   gomath.Max(MinZoom, target.Zoom-zoomOut),
	}.Normalize()
}

// RevealLocation jumps straight above target, then after Delay flies down to
// target with the cinematic curve, so the descent always starts overhead.
// The session completes once the fly-in is issued; cancelling before the
// delay elapses leaves the camera at the vantage.
func (a *Animator) RevealLocation(target Pose, opts RevealOptions) *Session {
	s, ok := a.startSession(KindReveal)
	if !ok {
		return s
	}

	target = target.Normalize()
	vantage := Vantage(target, opts.ZoomOut)
	a.log.Debug("reveal started", zap.Stringer("vantage", vantage), zap.Stringer("target", target))
	a.vp.JumpTo(vantage)

	s.after(opts.Delay, func() {
		a.vp.TransitionTo(target, opts.Duration, easing.Cinematic)
		s.complete()
	})
	return s
}
