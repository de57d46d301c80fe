package camera

import (
	"sync"

	"go.uber.org/zap"

	"github.com/civicmap/cinematic/internal/engine/frame"
	"github.com/civicmap/cinematic/internal/logger"
	"github.com/civicmap/cinematic/internal/observability"
)

// Animator drives one camera. It holds the camera's single session slot:
// starting any animation cancels the active session first.
type Animator struct {
	vp      Viewport
	sched   frame.Scheduler
	metrics *observability.Collector
	log     *zap.Logger

	mu     sync.Mutex
	active *Session
}

// NewAnimator creates an animator for vp driven by sched. metrics may be nil.
func NewAnimator(vp Viewport, sched frame.Scheduler, metrics *observability.Collector) *Animator {
	return &Animator{
		vp:      vp,
		sched:   sched,
		metrics: metrics,
		log:     logger.Named("camera"),
	}
}

// Active returns the running session, or nil.
func (a *Animator) Active() *Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active
}

// Stop cancels the active session, if any. The camera stays where it is.
func (a *Animator) Stop() {
	a.mu.Lock()
	prev := a.active
	a.active = nil
	a.mu.Unlock()

	if prev != nil {
		prev.Cancel()
	}
}

// begin swaps a new session into the slot and cancels the one it replaces.
func (a *Animator) begin(kind string) *Session {
	s := newSession(kind, a.sched, a.metrics)
	s.onEnd = a.release

	a.mu.Lock()
	prev := a.active
	a.active = s
	a.mu.Unlock()

	if prev != nil {
		a.log.Debug("replacing active animation",
			zap.String("previous", prev.Kind()),
			zap.String("next", kind),
		)
		prev.Cancel()
	}
	return s
}

// startSession begins a session. When the host is not ready it returns a
// failed session that never entered the slot, so the active one keeps running.
func (a *Animator) startSession(kind string) (*Session, bool) {
	if !a.vp.Ready() {
		a.log.Warn("viewport not ready, skipping animation", zap.String("kind", kind))
		return a.rejected(kind, ErrViewportNotReady), false
	}
	s := a.begin(kind)
	s.start()
	return s, true
}

// rejected returns an already ended session for a request that was refused.
func (a *Animator) rejected(kind string, err error) *Session {
	s := newSession(kind, a.sched, a.metrics)
	s.fail(err)
	return s
}

func (a *Animator) release(s *Session) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.active == s {
		a.active = nil
	}
}
