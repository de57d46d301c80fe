package frame

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/civicmap/cinematic/internal/logger"
)

// Runner pumps a Loop from a real-time ticker.
type Runner struct {
	loop *Loop
}

// NewRunner creates a runner for loop.
func NewRunner(loop *Loop) *Runner {
	return &Runner{loop: loop}
}

// Run steps the loop once per frame interval with the measured wall-clock
// delta until ctx is done.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.loop.Interval())
	defer ticker.Stop()

	logger.Debug("frame runner started", zap.Duration("interval", r.loop.Interval()))
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			logger.Debug("frame runner stopped", zap.Uint64("frames", r.loop.Frames()))
			return nil
		case t := <-ticker.C:
			r.loop.Step(t.Sub(last))
			last = t
		}
	}
}

// RunUntilIdle steps the loop in real time until nothing is pending or ctx
// is done. It returns ctx.Err() when cancelled first.
func (r *Runner) RunUntilIdle(ctx context.Context) error {
	ticker := time.NewTicker(r.loop.Interval())
	defer ticker.Stop()

	last := time.Now()
	for r.loop.Pending() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case t := <-ticker.C:
			r.loop.Step(t.Sub(last))
			last = t
		}
	}
	return nil
}
