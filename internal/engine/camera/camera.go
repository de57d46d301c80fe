// Package camera animates a single host-owned map camera: fly-to, ease-to,
// orbit, multi-waypoint tours and two-phase reveals.
package camera

import (
	"fmt"
	"time"

	"github.com/paulmach/orb"

	"github.com/civicmap/cinematic/internal/engine/easing"
	"github.com/civicmap/cinematic/pkg/math"
)

// Pose constraints.
const (
	MinZoom  = 0.0
	MaxZoom  = 22.0
	MinPitch = 0.0
	MaxPitch = 85.0
)

// Pose is a full camera frame. Center is (lng, lat).
type Pose struct {
	Center  orb.Point `json:"center" yaml:"center"`
	Zoom    float64   `json:"zoom" yaml:"zoom"`
	Bearing float64   `json:"bearing" yaml:"bearing"`
	Pitch   float64   `json:"pitch" yaml:"pitch"`
}

// Normalize clamps zoom and pitch and wraps bearing into [0,360).
func (p Pose) Normalize() Pose {
	p.Zoom = math.Clamp(p.Zoom, MinZoom, MaxZoom)
	p.Pitch = math.Clamp(p.Pitch, MinPitch, MaxPitch)
	p.Bearing = math.WrapDegrees(p.Bearing)
	return p
}

func (p Pose) String() string {
	return fmt.Sprintf("[%.5f %.5f] z%.2f b%.1f p%.1f",
		p.Center.Lon(), p.Center.Lat(), p.Zoom, p.Bearing, p.Pitch)
}

// PoseUpdate is a partial pose. Nil fields keep their current value.
type PoseUpdate struct {
	Center  *orb.Point
	Zoom    *float64
	Bearing *float64
	Pitch   *float64
}

// Apply overlays u onto base.
func (u PoseUpdate) Apply(base Pose) Pose {
	if u.Center != nil {
		base.Center = *u.Center
	}
	if u.Zoom != nil {
		base.Zoom = *u.Zoom
	}
	if u.Bearing != nil {
		base.Bearing = *u.Bearing
	}
	if u.Pitch != nil {
		base.Pitch = *u.Pitch
	}
	return base.Normalize()
}

// Float returns a pointer to v, for PoseUpdate and option fields.
func Float(v float64) *float64 {
	return &v
}

// Point returns a pointer to (lng, lat).
func Point(lng, lat float64) *orb.Point {
	return &orb.Point{lng, lat}
}

// FitOptions controls a bounds-fit transition.
type FitOptions struct {
	// Padding in pixels on every side of the container.
	Padding  float64
	MaxZoom  float64
	Pitch    float64
	Bearing  float64
	Duration time.Duration
	Easing   easing.Kind
}

// Viewport is the host map the animator drives. The host owns the current
// pose; the animator only proposes targets.
type Viewport interface {
	// Ready reports whether the host can accept camera changes.
	Ready() bool
	// Pose returns the current camera pose.
	Pose() Pose
	// JumpTo sets the pose immediately.
	JumpTo(Pose)
	// TransitionTo animates to pose over duration using the curve.
	TransitionTo(pose Pose, duration time.Duration, curve easing.Kind)
	// FitBounds animates so bounds fill the container.
	FitBounds(bounds orb.Bound, opts FitOptions)
	// OnSettled registers fn for the "motion settled" event and returns a
	// function that removes it.
	OnSettled(fn func()) (unsubscribe func())
}
