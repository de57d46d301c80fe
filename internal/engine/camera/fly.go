package camera

import (
	"fmt"
	gomath "math"
	"time"

	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/civicmap/cinematic/internal/engine/easing"
	"github.com/civicmap/cinematic/internal/engine/geometry"
)

// FlyOptions controls FlyToTarget.
type FlyOptions struct {
	Duration time.Duration
	// Padding in pixels around fitted bounds.
	Padding float64
	MaxZoom float64
	Pitch   float64
	Bearing float64
	Easing  easing.Kind
}

// DefaultFlyOptions returns the options used for "show me this proposal".
func DefaultFlyOptions() FlyOptions {
	return FlyOptions{
		Duration: 2500 * time.Millisecond,
		Padding:  60,
		MaxZoom:  18,
		Pitch:    45,
		Easing:   easing.Cinematic,
	}
}

// EaseOptions controls EaseCameraTo.
type EaseOptions struct {
	Duration time.Duration
	Easing   easing.Kind
}

// DefaultEaseOptions returns a short ease with the default curve.
func DefaultEaseOptions() EaseOptions {
	return EaseOptions{Duration: time.Second, Easing: easing.Default}
}

// FlyToTarget moves the camera onto shape in a single transition. Polygons and
// lines are fitted to their bounds; points and point sets fly to their center
// at the shape's suggested zoom. Resolve errors are returned unchanged so the
// caller can fall back to a default view.
func (a *Animator) FlyToTarget(shape orb.Geometry, opts FlyOptions) error {
	target, err := geometry.Resolve(shape)
	if err != nil {
		a.log.Warn("cannot fly to geometry", zap.Error(err))
		return err
	}

	if !a.vp.Ready() {
		a.log.Warn("viewport not ready, skipping fly-to", zap.Stringer("kind", target.Kind))
		return fmt.Errorf("fly to %s: %w", target.Kind, ErrViewportNotReady)
	}
	a.Stop()

	maxZoom := opts.MaxZoom
	if maxZoom <= 0 {
		maxZoom = MaxZoom
	}
	a.metrics.CameraMoved(KindFly)

	if target.HasBounds && target.Kind.Areal() {
		a.log.Debug("fitting bounds",
			zap.Stringer("kind", target.Kind),
			zap.Float64s("min", target.Bounds.Min[:]),
			zap.Float64s("max", target.Bounds.Max[:]),
		)
		a.vp.FitBounds(target.Bounds, FitOptions{
			Padding:  opts.Padding,
			MaxZoom:  maxZoom,
			Pitch:    opts.Pitch,
			Bearing:  opts.Bearing,
			Duration: opts.Duration,
			Easing:   opts.Easing,
		})
		return nil
	}

	pose := Pose{
		Center:  target.Center,
		Zoom:    gomath.Min(target.SuggestedZoom, maxZoom),
		Bearing: opts.Bearing,
		Pitch:   opts.Pitch,
	}.Normalize()
	a.log.Debug("flying to center", zap.Stringer("kind", target.Kind), zap.Stringer("pose", pose))
	a.vp.TransitionTo(pose, opts.Duration, opts.Easing)
	return nil
}

// EaseCameraTo transitions to a partial pose; unset fields keep their
// current value.
func (a *Animator) EaseCameraTo(update PoseUpdate, opts EaseOptions) error {
	if !a.vp.Ready() {
		a.log.Warn("viewport not ready, skipping ease")
		return fmt.Errorf("ease camera: %w", ErrViewportNotReady)
	}
	a.Stop()

	pose := update.Apply(a.vp.Pose())
	a.metrics.CameraMoved(KindEase)
	a.log.Debug("easing camera", zap.Stringer("pose", pose), zap.Duration("duration", opts.Duration))
	a.vp.TransitionTo(pose, opts.Duration, opts.Easing)
	return nil
}
