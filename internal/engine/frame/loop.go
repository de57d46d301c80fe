package frame

import (
	"sync"
	"time"
)

// DefaultFPS is the frame rate used when a non-positive rate is given.
const DefaultFPS = 60

// Loop is a manually pumped Scheduler. Each Step advances the clock, runs the
// timers that became due and then the frame callbacks requested before the
// step began. Callbacks run outside the lock and may schedule more work.
type Loop struct {
	mu       sync.Mutex
	now      time.Time
	interval time.Duration
	counter  uint64
	frame    uint64

	frames []*entry
	timers []*entry // ordered by when, earliest first
	index  map[ID]*entry
}

type entry struct {
	id        ID
	when      time.Time
	onFrame   func(time.Time)
	onTimer   func()
	cancelled bool
}

// NewLoop creates a loop starting at start and stepping at fps frames per second.
func NewLoop(start time.Time, fps int) *Loop {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Loop{
		now:      start,
		interval: time.Second / time.Duration(fps),
		index:    make(map[ID]*entry),
	}
}

// Interval returns the duration of one frame.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Frames returns how many frames have been stepped.
func (l *Loop) Frames() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frame
}

// Now returns the loop's current time.
func (l *Loop) Now() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.now
}

// RequestFrame schedules fn for the next Step.
func (l *Loop) RequestFrame(fn func(time.Time)) ID {
	l.mu.Lock()
	defer l.mu.Unlock()

	e := &entry{id: l.nextID(), onFrame: fn}
	l.frames = append(l.frames, e)
	l.index[e.id] = e
	return e.id
}

// After schedules fn to run once d has elapsed.
func (l *Loop) After(d time.Duration, fn func()) ID {
	l.mu.Lock()
	defer l.mu.Unlock()

	if d < 0 {
		d = 0
	}
	e := &entry{id: l.nextID(), when: l.now.Add(d), onTimer: fn}

	inserted := false
	for i, existing := range l.timers {
		if e.when.Before(existing.when) {
			l.timers = append(l.timers[:i], append([]*entry{e}, l.timers[i:]...)...)
			inserted = true
			break
		}
	}
	if !inserted {
		l.timers = append(l.timers, e)
	}
	l.index[e.id] = e
	return e.id
}

// Cancel drops a pending request.
func (l *Loop) Cancel(id ID) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.index[id]
	if !ok {
		return
	}
	e.cancelled = true
	delete(l.index, id)
}

// Pending reports whether any frame request or timer is still waiting.
func (l *Loop) Pending() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.index) > 0
}

// Step advances the clock by dt and runs one frame.
func (l *Loop) Step(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	l.mu.Lock()
	l.now = l.now.Add(dt)
	l.frame++
	now := l.now
	batch := l.frames
	l.frames = nil
	l.mu.Unlock()

	l.runDueTimers()

	for _, e := range batch {
		l.mu.Lock()
		if e.cancelled {
			l.mu.Unlock()
			continue
		}
		delete(l.index, e.id)
		fn := e.onFrame
		l.mu.Unlock()

		if fn != nil {
			fn(now)
		}
	}
}

// Advance steps whole frames until d has elapsed. A trailing partial frame
// is stepped with the remainder.
func (l *Loop) Advance(d time.Duration) {
	for d > 0 {
		step := l.interval
		if d < step {
			step = d
		}
		l.Step(step)
		d -= step
	}
}

// RunUntilIdle steps frames until nothing is pending or limit has elapsed.
// It reports whether the loop went idle.
func (l *Loop) RunUntilIdle(limit time.Duration) bool {
	for elapsed := time.Duration(0); elapsed < limit; elapsed += l.interval {
		if !l.Pending() {
			return true
		}
		l.Step(l.interval)
	}
	return !l.Pending()
}

func (l *Loop) runDueTimers() {
	for {
		l.mu.Lock()
		if len(l.timers) == 0 {
			l.mu.Unlock()
			return
		}
		e := l.timers[0]
		if e.when.After(l.now) {
			l.mu.Unlock()
			return
		}
		l.timers = l.timers[1:]
		if e.cancelled {
			l.mu.Unlock()
			continue
		}
		delete(l.index, e.id)
		fn := e.onTimer
		l.mu.Unlock()

		if fn != nil {
			fn()
		}
	}
}

func (l *Loop) nextID() ID {
	l.counter++
	return ID(l.counter)
}
