package camera

import (
	"time"

	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/civicmap/cinematic/internal/engine/easing"
	"github.com/civicmap/cinematic/pkg/math"
)

// OrbitOptions controls OrbitAround. Nil pose fields keep the camera's
// current value.
type OrbitOptions struct {
	Duration  time.Duration
	Rotations float64
	Easing    easing.Kind

	Zoom         *float64
	Pitch        *float64
	StartBearing *float64

	// OnFrame is called from every tick with the bearing just applied.
	OnFrame func(bearing, progress float64)
	// OnComplete is called once when the orbit finishes uncancelled.
	OnComplete func()
}

// DefaultOrbitOptions returns one slow linear turn.
func DefaultOrbitOptions() OrbitOptions {
	return OrbitOptions{
		Duration:  20 * time.Second,
		Rotations: 1,
		Easing:    easing.Linear,
	}
}

// orbit is the per-session state of OrbitAround.
type orbit struct {
	center       orb.Point
	startBearing float64
	zoom         float64
	pitch        float64
	rotations    float64
	duration     time.Duration
	curve        easing.Func
	startTime    time.Time
	progress     float64
}

// bearingAt returns the bearing for overall progress p.
func (o *orbit) bearingAt(p float64) float64 {
	return math.WrapDegrees(o.startBearing + o.curve(p)*360*o.rotations)
}

// advance returns the progress at now. Progress never decreases.
func (o *orbit) advance(now time.Time) float64 {
	p := 1.0
	if o.duration > 0 {
		p = math.Clamp01(float64(now.Sub(o.startTime)) / float64(o.duration))
	}
	if p < o.progress {
		p = o.progress
	}
	o.progress = p
	return p
}

// OrbitAround sweeps the bearing around center through 360*Rotations degrees
// over Duration, holding zoom and pitch. Each frame jumps the camera; the
// host's own transitions are not used. The returned session stops the orbit
// when cancelled.
func (a *Animator) OrbitAround(center orb.Point, opts OrbitOptions) *Session {
	s, ok := a.startSession(KindOrbit)
	if !ok {
		return s
	}

	current := a.vp.Pose()
	o := &orbit{
		center:       center,
		startBearing: current.Bearing,
		zoom:         current.Zoom,
		pitch:        current.Pitch,
		rotations:    opts.Rotations,
		duration:     opts.Duration,
		curve:        opts.Easing.Func(),
		startTime:    a.sched.Now(),
	}
	if opts.StartBearing != nil {
		o.startBearing = math.WrapDegrees(*opts.StartBearing)
	}
	if opts.Zoom != nil {
		o.zoom = *opts.Zoom
	}
	if opts.Pitch != nil {
		o.pitch = *opts.Pitch
	}
	if o.rotations <= 0 {
		o.rotations = 1
	}

	a.log.Debug("orbit started",
		zap.Float64s("center", center[:]),
		zap.Float64("start_bearing", o.startBearing),
		zap.Float64("rotations", o.rotations),
		zap.Duration("duration", o.duration),
	)

	var tick func(time.Time)
	tick = func(now time.Time) {
		p := o.advance(now)
		bearing := o.bearingAt(p)
		a.vp.JumpTo(Pose{
			Center:  o.center,
			Zoom:    o.zoom,
			Bearing: bearing,
			Pitch:   o.pitch,
		}.Normalize())
		a.metrics.OrbitFrame()

		if opts.OnFrame != nil {
			opts.OnFrame(bearing, p)
		}

		if p >= 1 {
			if s.complete() {
				a.log.Debug("orbit completed", zap.Float64("bearing", bearing))
				if opts.OnComplete != nil {
					opts.OnComplete()
				}
			}
			return
		}
		if s.Running() {
			s.requestFrame(tick)
		}
	}
	s.requestFrame(tick)
	return s
}
