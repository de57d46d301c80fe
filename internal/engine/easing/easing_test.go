package easing

import (
	"math"
	"testing"
)

func TestEndpoints(t *testing.T) {
	for _, k := range Kinds {
		t.Run(k.String(), func(t *testing.T) {
			if got := k.Apply(0); got != 0 {
				t.Errorf("%s(0) = %v, want 0", k, got)
			}
			if got := k.Apply(1); math.Abs(got-1) > 1e-12 {
				t.Errorf("%s(1) = %v, want 1", k, got)
			}
		})
	}
}

func TestMonotonic(t *testing.T) {
	const steps = 1000
	for _, k := range Kinds {
		prev := k.Apply(0)
		for i := 1; i <= steps; i++ {
			v := k.Apply(float64(i) / steps)
			if v < prev-1e-12 {
				t.Fatalf("%s not monotonic at step %d: %v < %v", k, i, v, prev)
			}
			if v < 0 || v > 1+1e-12 {
				t.Fatalf("%s out of range at step %d: %v", k, i, v)
			}
			prev = v
		}
	}
}

func TestApplyClampsInput(t *testing.T) {
	if got := EaseInQuad.Apply(-0.5); got != 0 {
		t.Errorf("Apply(-0.5) = %v, want 0", got)
	}
	if got := EaseOutCubic.Apply(3); got != 1 {
		t.Errorf("Apply(3) = %v, want 1", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		want Kind
	}{
		{"linear", Linear},
		{"easeOutQuart", EaseOutQuart},
		{"cinematic", Cinematic},
		{"bouncy", EaseInOutCubic},
		{"", EaseInOutCubic},
	}
	for _, tt := range tests {
		if got := Parse(tt.name); got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, k := range Kinds {
		if got := Parse(k.String()); got != k {
			t.Errorf("Parse(%q) = %v, want %v", k.String(), got, k)
		}
	}
}

func TestUnknownKindFallsBack(t *testing.T) {
	bogus := Kind(99)
	if got, want := bogus.Apply(0.3), EaseInOutCubic.Apply(0.3); got != want {
		t.Errorf("Kind(99).Apply(0.3) = %v, want %v", got, want)
	}
	if bogus.String() != "easeInOutCubic" {
		t.Errorf("Kind(99).String() = %q, want easeInOutCubic", bogus.String())
	}
}

func TestCinematicSteeperThanQuartAtMidpoint(t *testing.T) {
	const h = 1e-4
	slope := func(k Kind) float64 {
		return (k.Apply(0.5+h) - k.Apply(0.5-h)) / (2 * h)
	}
	if slope(Cinematic) <= slope(EaseInOutQuart) {
		t.Errorf("cinematic midpoint slope %v should exceed quartic %v", slope(Cinematic), slope(EaseInOutQuart))
	}
}

func TestFunc(t *testing.T) {
	f := EaseInCubic.Func()
	if got := f(0.5); got != 0.125 {
		t.Errorf("Func()(0.5) = %v, want 0.125", got)
	}
}
