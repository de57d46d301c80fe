package camera

import (
	"sync"
	"time"

	"github.com/paulmach/orb"

	"github.com/civicmap/cinematic/internal/engine/easing"
)

type transitionCall struct {
	pose     Pose
	duration time.Duration
	curve    easing.Kind
}

type fitCall struct {
	bounds orb.Bound
	opts   FitOptions
}

// fakeViewport records every host call. Settle events are fired by the test.
type fakeViewport struct {
	mu          sync.Mutex
	ready       bool
	pose        Pose
	events      []string
	jumps       []Pose
	transitions []transitionCall
	fits        []fitCall
	listeners   map[int]func()
	nextID      int
	subscribes  int
}

func newFakeViewport() *fakeViewport {
	return &fakeViewport{
		ready:     true,
		pose:      Pose{Center: orb.Point{-58.46, -34.6}, Zoom: 12, Pitch: 30},
		listeners: make(map[int]func()),
	}
}

func (f *fakeViewport) Ready() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ready
}

func (f *fakeViewport) Pose() Pose {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pose
}

func (f *fakeViewport) JumpTo(p Pose) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pose = p
	f.jumps = append(f.jumps, p)
	f.events = append(f.events, "jump")
}

func (f *fakeViewport) TransitionTo(p Pose, d time.Duration, curve easing.Kind) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pose = p
	f.transitions = append(f.transitions, transitionCall{pose: p, duration: d, curve: curve})
	f.events = append(f.events, "transition")
}

func (f *fakeViewport) FitBounds(b orb.Bound, opts FitOptions) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fits = append(f.fits, fitCall{bounds: b, opts: opts})
	f.events = append(f.events, "fit")
}

func (f *fakeViewport) OnSettled(fn func()) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	id := f.nextID
	f.listeners[id] = fn
	f.subscribes++
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.listeners, id)
	}
}

// settle fires the settle event to every current listener.
func (f *fakeViewport) settle() {
	f.mu.Lock()
	fns := make([]func(), 0, len(f.listeners))
	for _, fn := range f.listeners {
		fns = append(fns, fn)
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (f *fakeViewport) listenerCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.listeners)
}

func (f *fakeViewport) transitionCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.transitions)
}

func (f *fakeViewport) jumpCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.jumps)
}
