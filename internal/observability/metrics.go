// Package observability exposes Prometheus metrics for camera animations and
// lighting updates.
package observability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for finished animations and lighting applies.
const (
	OutcomeCompleted = "completed"
	OutcomeCancelled = "cancelled"
	OutcomeApplied   = "applied"
	OutcomeSkipped   = "skipped"
)

// Collector bundles the engine metrics. A nil *Collector is valid and records
// nothing, so engine code can call it unconditionally.
type Collector struct {
	gatherer prometheus.Gatherer

	AnimationsStarted  *prometheus.CounterVec
	AnimationsFinished *prometheus.CounterVec
	AnimationDuration  *prometheus.HistogramVec
	OrbitFrames        prometheus.Counter
	CameraMoves        *prometheus.CounterVec
	LightingApplies    *prometheus.CounterVec
}

// NewCollector registers the engine metrics against reg, defaulting to the
// global Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	started, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cinematic_animations_started_total",
		Help: "Camera animations started, labeled by kind.",
	}, []string{"kind"}), "cinematic_animations_started_total")
	if err != nil {
		return nil, err
	}

	finished, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cinematic_animations_finished_total",
		Help: "Camera animations that reached a terminal state, labeled by kind and outcome.",
	}, []string{"kind", "outcome"}), "cinematic_animations_finished_total")
	if err != nil {
		return nil, err
	}

	duration, err := registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cinematic_animation_duration_seconds",
		Help:    "Wall-clock lifetime of camera animations in seconds.",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
	}, []string{"kind"}), "cinematic_animation_duration_seconds")
	if err != nil {
		return nil, err
	}

	frames, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cinematic_orbit_frames_total",
		Help: "Scheduler ticks that moved an orbiting camera.",
	}), "cinematic_orbit_frames_total")
	if err != nil {
		return nil, err
	}

	moves, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cinematic_camera_moves_total",
		Help: "One-shot camera moves handed to the host, labeled by kind.",
	}, []string{"kind"}), "cinematic_camera_moves_total")
	if err != nil {
		return nil, err
	}

	applies, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cinematic_lighting_applies_total",
		Help: "Lighting profile applications, labeled by time period and outcome.",
	}, []string{"period", "outcome"}), "cinematic_lighting_applies_total")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:           gatherer,
		AnimationsStarted:  started,
		AnimationsFinished: finished,
		AnimationDuration:  duration,
		OrbitFrames:        frames,
		CameraMoves:        moves,
		LightingApplies:    applies,
	}, nil
}

// AnimationStarted counts a new animation of the given kind.
func (c *Collector) AnimationStarted(kind string) {
	if c == nil || c.AnimationsStarted == nil {
		return
	}
	c.AnimationsStarted.WithLabelValues(kind).Inc()
}

// AnimationFinished records the terminal outcome and lifetime of an animation.
func (c *Collector) AnimationFinished(kind, outcome string, lifetime time.Duration) {
	if c == nil {
		return
	}
	if c.AnimationsFinished != nil {
		c.AnimationsFinished.WithLabelValues(kind, outcome).Inc()
	}
	if c.AnimationDuration != nil {
		c.AnimationDuration.WithLabelValues(kind).Observe(lifetime.Seconds())
	}
}

// OrbitFrame counts one orbit tick.
func (c *Collector) OrbitFrame() {
	if c == nil || c.OrbitFrames == nil {
		return
	}
	c.OrbitFrames.Inc()
}

// CameraMoved counts a fly-to or ease handed to the host. These have no
// session, so they are kept out of the started/finished pair.
func (c *Collector) CameraMoved(kind string) {
	if c == nil || c.CameraMoves == nil {
		return
	}
	c.CameraMoves.WithLabelValues(kind).Inc()
}

// LightingApplied counts a lighting application attempt.
func (c *Collector) LightingApplied(period, outcome string) {
	if c == nil || c.LightingApplies == nil {
		return
	}
	c.LightingApplies.WithLabelValues(period, outcome).Inc()
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}
