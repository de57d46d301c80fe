package camera

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/civicmap/cinematic/internal/engine/frame"
	"github.com/civicmap/cinematic/internal/observability"
)

var (
	// ErrViewportNotReady is returned when the host cannot take camera
	// changes yet. Nothing is written; callers retry once it is ready.
	ErrViewportNotReady = errors.New("viewport not ready")
	// ErrCancelled is the error of a session that was cancelled or replaced.
	ErrCancelled = errors.New("animation cancelled")
	// ErrNoWaypoints is returned for a tour without waypoints.
	ErrNoWaypoints = errors.New("tour has no waypoints")
)

// Animation kinds, used for session and metric labels.
const (
	KindFly    = "fly"
	KindEase   = "ease"
	KindOrbit  = "orbit"
	KindTour   = "tour"
	KindReveal = "reveal"
)

// State is the lifecycle of a session.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateCompleted
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Session is a running orbit, tour or reveal. It ends exactly once, either
// completed or cancelled.
type Session struct {
	kind    string
	sched   frame.Scheduler
	metrics *observability.Collector

	mu       sync.Mutex
	state    State
	err      error
	started  time.Time
	pending  map[frame.ID]struct{}
	cleanups []func()
	onEnd    func(*Session)
	done     chan struct{}
}

func newSession(kind string, sched frame.Scheduler, metrics *observability.Collector) *Session {
	return &Session{
		kind:    kind,
		sched:   sched,
		metrics: metrics,
		pending: make(map[frame.ID]struct{}),
		done:    make(chan struct{}),
	}
}

// Kind returns the animation kind.
func (s *Session) Kind() string {
	return s.kind
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err returns nil while running or after completion, and the cancellation
// cause otherwise.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Done is closed when the session ends.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Wait blocks until the session ends or ctx is done.
func (s *Session) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		return s.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Cancel stops the session. Pending frames and timers are dropped and no
// further callbacks start. The camera stays where it is.
func (s *Session) Cancel() {
	s.finish(StateCancelled, ErrCancelled)
}

// Running reports whether the session is still active.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateRunning
}

func (s *Session) start() {
	s.mu.Lock()
	s.state = StateRunning
	s.started = s.sched.Now()
	s.mu.Unlock()
	s.metrics.AnimationStarted(s.kind)
}

// complete ends the session successfully. It reports false if the session
// had already ended.
func (s *Session) complete() bool {
	return s.finish(StateCompleted, nil)
}

func (s *Session) fail(err error) {
	s.finish(StateCancelled, err)
}

func (s *Session) finish(state State, err error) bool {
	s.mu.Lock()
	if s.state == StateCompleted || s.state == StateCancelled {
		s.mu.Unlock()
		return false
	}
	wasRunning := s.state == StateRunning
	s.state = state
	s.err = err
	ids := make([]frame.ID, 0, len(s.pending))
	for id := range s.pending {
		ids = append(ids, id)
	}
	s.pending = nil
	cleanups := s.cleanups
	s.cleanups = nil
	onEnd := s.onEnd
	lifetime := s.sched.Now().Sub(s.started)
	close(s.done)
	s.mu.Unlock()

	for _, id := range ids {
		s.sched.Cancel(id)
	}
	for _, fn := range cleanups {
		fn()
	}
	if wasRunning {
		outcome := observability.OutcomeCompleted
		if state == StateCancelled {
			outcome = observability.OutcomeCancelled
		}
		s.metrics.AnimationFinished(s.kind, outcome, lifetime)
	}
	if onEnd != nil {
		onEnd(s)
	}
	return true
}

// onFinish registers fn to run when the session ends. If it already ended fn
// runs now.
func (s *Session) onFinish(fn func()) {
	s.mu.Lock()
	if s.state == StateCompleted || s.state == StateCancelled {
		s.mu.Unlock()
		fn()
		return
	}
	s.cleanups = append(s.cleanups, fn)
	s.mu.Unlock()
}

// requestFrame schedules fn for the next frame while the session runs.
func (s *Session) requestFrame(fn func(time.Time)) {
	req := new(frame.ID)
	id := s.sched.RequestFrame(func(now time.Time) {
		if !s.release(req) {
			return
		}
		fn(now)
	})
	s.track(req, id)
}

// after schedules fn after d while the session runs.
func (s *Session) after(d time.Duration, fn func()) {
	req := new(frame.ID)
	id := s.sched.After(d, func() {
		if !s.release(req) {
			return
		}
		fn()
	})
	s.track(req, id)
}

func (s *Session) track(req *frame.ID, id frame.ID) {
	s.mu.Lock()
	if s.state != StateRunning {
		s.mu.Unlock()
		s.sched.Cancel(id)
		return
	}
	*req = id
	s.pending[id] = struct{}{}
	s.mu.Unlock()
}

// release forgets a fired request and reports whether the session is still
// running.
func (s *Session) release(req *frame.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateRunning {
		return false
	}
	delete(s.pending, *req)
	return true
}
