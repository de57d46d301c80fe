// Package viewport provides an in-memory host map: a camera that animates its
// own transitions on a frame scheduler and atmosphere sinks that record what
// was written to them.
package viewport

import (
	gomath "math"
	"sync"
	"time"

	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/civicmap/cinematic/internal/engine/camera"
	"github.com/civicmap/cinematic/internal/engine/easing"
	"github.com/civicmap/cinematic/internal/engine/frame"
	"github.com/civicmap/cinematic/internal/engine/geometry"
	"github.com/civicmap/cinematic/internal/engine/lighting"
	"github.com/civicmap/cinematic/internal/logger"
	"github.com/civicmap/cinematic/pkg/math"
)

var (
	_ camera.Viewport     = (*Headless)(nil)
	_ lighting.Atmosphere = (*Headless)(nil)
)

// Stats counts what the host was asked to do.
type Stats struct {
	Jumps       int
	Transitions int
	Fits        int
	Settles     int
	Superseded  int
	LightWrites int
}

// Headless is a host viewport without a renderer.
type Headless struct {
	sched frame.Scheduler
	log   *zap.Logger

	mu        sync.Mutex
	ready     bool
	width     float64
	height    float64
	pose      camera.Pose
	active    *transition
	listeners []listener
	nextID    int
	stats     Stats

	light lighting.Light
	fog   lighting.FogSettings
	sky   lighting.SkyGradient
}

type listener struct {
	id int
	fn func()
}

type transition struct {
	from     camera.Pose
	to       camera.Pose
	arc      float64
	start    time.Time
	duration time.Duration
	curve    easing.Func
	frame    frame.ID
}

// NewHeadless creates a ready viewport of width x height pixels at pose.
func NewHeadless(sched frame.Scheduler, width, height float64, pose camera.Pose) *Headless {
	return &Headless{
		sched:  sched,
		log:    logger.Named("viewport"),
		ready:  true,
		width:  width,
		height: height,
		pose:   pose.Normalize(),
	}
}

// SetReady toggles whether the host accepts camera and atmosphere changes.
func (h *Headless) SetReady(ready bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ready = ready
}

// Ready reports whether the host accepts changes.
func (h *Headless) Ready() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ready
}

// Pose returns the current camera pose.
func (h *Headless) Pose() camera.Pose {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pose
}

// Moving reports whether a transition is in flight.
func (h *Headless) Moving() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.active != nil
}

// Stats returns the call counters.
func (h *Headless) Stats() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stats
}

// JumpTo sets the pose, stops any transition and fires settle.
func (h *Headless) JumpTo(p camera.Pose) {
	h.mu.Lock()
	h.stats.Jumps++
	h.mu.Unlock()

	h.jump(p)
}

// TransitionTo animates to p over d. A later JumpTo or TransitionTo
// supersedes it, and a superseded transition never fires settle.
func (h *Headless) TransitionTo(p camera.Pose, d time.Duration, curve easing.Kind) {
	h.mu.Lock()
	h.stats.Transitions++
	if d <= 0 {
		h.mu.Unlock()
		h.jump(p)
		return
	}
	h.stopLocked()
	to := p.Normalize()
	t := &transition{
		from:     h.pose,
		to:       to,
		arc:      math.ShortestArc(h.pose.Bearing, to.Bearing),
		start:    h.sched.Now(),
		duration: d,
		curve:    curve.Func(),
	}
	h.active = t
	h.mu.Unlock()

	h.schedule(t)
}

// FitBounds transitions so bounds fill the container less padding, zoomed
// no closer than opts.MaxZoom.
func (h *Headless) FitBounds(bounds orb.Bound, opts camera.FitOptions) {
	h.mu.Lock()
	w := gomath.Max(1, h.width-2*opts.Padding)
	ht := gomath.Max(1, h.height-2*opts.Padding)
	h.stats.Fits++
	h.mu.Unlock()

	zoom := geometry.CalculateOptimalZoom(bounds, w, ht)
	if opts.MaxZoom > 0 && zoom > opts.MaxZoom {
		zoom = opts.MaxZoom
	}
	h.TransitionTo(camera.Pose{
		Center:  bounds.Center(),
		Zoom:    zoom,
		Bearing: opts.Bearing,
		Pitch:   opts.Pitch,
	}, opts.Duration, opts.Easing)
}

// OnSettled registers fn for the settle event.
func (h *Headless) OnSettled(fn func()) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	h.listeners = append(h.listeners, listener{id: id, fn: fn})
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		for i, l := range h.listeners {
			if l.id == id {
				h.listeners = append(h.listeners[:i:i], h.listeners[i+1:]...)
				return
			}
		}
	}
}

// Listeners returns how many settle listeners are registered.
func (h *Headless) Listeners() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners)
}

func (h *Headless) jump(p camera.Pose) {
	h.mu.Lock()
	h.stopLocked()
	h.pose = p.Normalize()
	h.mu.Unlock()

	h.settled()
}

func (h *Headless) schedule(t *transition) {
	id := h.sched.RequestFrame(func(now time.Time) { h.step(t, now) })

	h.mu.Lock()
	if h.active == t {
		t.frame = id
	}
	h.mu.Unlock()
}

func (h *Headless) step(t *transition, now time.Time) {
	h.mu.Lock()
	if h.active != t {
		h.mu.Unlock()
		return
	}
	p := math.Clamp01(float64(now.Sub(t.start)) / float64(t.duration))
	if p >= 1 {
		h.pose = t.to
		h.active = nil
		h.mu.Unlock()
		h.settled()
		return
	}
	h.pose = t.at(t.curve(p))
	h.mu.Unlock()

	h.schedule(t)
}

// stopLocked drops the in-flight transition. h.mu must be held.
func (h *Headless) stopLocked() {
	if h.active == nil {
		return
	}
	if h.active.frame != 0 {
		h.sched.Cancel(h.active.frame)
	}
	h.active = nil
	h.stats.Superseded++
}

func (h *Headless) settled() {
	h.mu.Lock()
	h.stats.Settles++
	pose := h.pose
	fns := make([]func(), len(h.listeners))
	for i, l := range h.listeners {
		fns[i] = l.fn
	}
	h.mu.Unlock()

	h.log.Debug("camera settled", zap.Stringer("pose", pose), zap.Int("listeners", len(fns)))
	for _, fn := range fns {
		fn()
	}
}

// at interpolates the pose at eased progress e. Bearing follows the
// shortest arc.
func (t *transition) at(e float64) camera.Pose {
	return camera.Pose{
		Center: orb.Point{
			math.Lerp(t.from.Center.Lon(), t.to.Center.Lon(), e),
			math.Lerp(t.from.Center.Lat(), t.to.Center.Lat(), e),
		},
		Zoom:    math.Lerp(t.from.Zoom, t.to.Zoom, e),
		Bearing: math.WrapDegrees(t.from.Bearing + t.arc*e),
		Pitch:   math.Lerp(t.from.Pitch, t.to.Pitch, e),
	}
}
