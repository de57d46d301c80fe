package camera

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestPoseNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Pose
		want Pose
	}{
		{"in range", Pose{Zoom: 12, Bearing: 90, Pitch: 45}, Pose{Zoom: 12, Bearing: 90, Pitch: 45}},
		{"zoom high", Pose{Zoom: 30}, Pose{Zoom: MaxZoom}},
		{"zoom low", Pose{Zoom: -2}, Pose{Zoom: MinZoom}},
		{"pitch high", Pose{Pitch: 120}, Pose{Pitch: MaxPitch}},
		{"bearing wraps", Pose{Bearing: 370}, Pose{Bearing: 10}},
		{"negative bearing", Pose{Bearing: -90}, Pose{Bearing: 270}},
		{"full turn", Pose{Bearing: 360}, Pose{Bearing: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalize(); got != tt.want {
				t.Errorf("Normalize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPoseUpdateKeepsUnsetFields(t *testing.T) {
	base := Pose{Center: orb.Point{1, 2}, Zoom: 10, Bearing: 45, Pitch: 30}

	got := PoseUpdate{Zoom: Float(14)}.Apply(base)
	want := Pose{Center: orb.Point{1, 2}, Zoom: 14, Bearing: 45, Pitch: 30}
	if got != want {
		t.Errorf("Apply(zoom) = %v, want %v", got, want)
	}

	got = PoseUpdate{Center: Point(3, 4), Bearing: Float(0), Pitch: Float(0)}.Apply(base)
	want = Pose{Center: orb.Point{3, 4}, Zoom: 10}
	if got != want {
		t.Errorf("Apply(center, zero fields) = %v, want %v", got, want)
	}

	if got := (PoseUpdate{}).Apply(base); got != base {
		t.Errorf("empty update changed pose: %v", got)
	}
}

func TestStateString(t *testing.T) {
	for state, want := range map[State]string{
		StateIdle:      "idle",
		StateRunning:   "running",
		StateCompleted: "completed",
		StateCancelled: "cancelled",
		State(42):      "unknown",
	} {
		if got := state.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", int(state), got, want)
		}
	}
}
