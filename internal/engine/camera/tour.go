package camera

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/civicmap/cinematic/internal/engine/easing"
)

// TourOptions controls TourPath.
type TourOptions struct {
	// Duration of each waypoint transition.
	Duration time.Duration
	// Pause after a waypoint settles, before the next one starts.
	Pause  time.Duration
	Easing easing.Kind
	// OnWaypoint is called just before the transition to waypoint i is
	// issued, so calls arrive in order even when the host settles at once.
	OnWaypoint func(i int, pose Pose)
}

// DefaultTourOptions returns the options used by guided tours.
func DefaultTourOptions() TourOptions {
	return TourOptions{
		Duration: 3 * time.Second,
		Pause:    time.Second,
		Easing:   easing.Cinematic,
	}
}

// TourPath visits waypoints in order. Each transition must settle, and the
// optional pause elapse, before the next begins; nothing waits after the last
// waypoint. The session completes once the last transition has been issued.
// Cancelling stops the next waypoint from starting. An empty tour is refused
// without touching the active session.
func (a *Animator) TourPath(waypoints []Pose, opts TourOptions) *Session {
	if len(waypoints) == 0 {
		a.log.Warn("tour has no waypoints")
		return a.rejected(KindTour, ErrNoWaypoints)
	}
	s, ok := a.startSession(KindTour)
	if !ok {
		return s
	}

	stops := make([]Pose, len(waypoints))
	for i, wp := range waypoints {
		stops[i] = wp.Normalize()
	}
	a.log.Debug("tour started", zap.Int("waypoints", len(stops)))

	var visit func(i int)
	visit = func(i int) {
		if !s.Running() {
			return
		}
		last := i == len(stops)-1
		if !last {
			a.awaitSettled(s, func() {
				if opts.Pause > 0 {
					s.after(opts.Pause, func() { visit(i + 1) })
					return
				}
				visit(i + 1)
			})
		}

		if opts.OnWaypoint != nil {
			opts.OnWaypoint(i, stops[i])
			if !s.Running() {
				return
			}
		}
		a.vp.TransitionTo(stops[i], opts.Duration, opts.Easing)
		if last && s.complete() {
			a.log.Debug("tour completed", zap.Int("waypoints", len(stops)))
		}
	}
	visit(0)
	return s
}

// awaitSettled runs next once, on the host's next settle event, while s is
// running. The subscription is dropped when it fires or s ends.
func (a *Animator) awaitSettled(s *Session, next func()) {
	var (
		once  sync.Once
		unsub func()
		mu    sync.Mutex
	)
	drop := func() {
		mu.Lock()
		fn := unsub
		unsub = nil
		mu.Unlock()
		if fn != nil {
			fn()
		}
	}

	u := a.vp.OnSettled(func() {
		once.Do(func() {
			drop()
			if s.Running() {
				next()
			}
		})
	})
	mu.Lock()
	unsub = u
	mu.Unlock()
	s.onFinish(drop)
}
