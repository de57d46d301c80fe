// Package easing provides the named time-remapping curves used by camera
// transitions. Every curve maps [0,1] onto [0,1] with f(0)=0 and f(1)=1.
package easing

import "math"

// Kind identifies an easing curve.
type Kind int

const (
	Linear Kind = iota
	EaseInQuad
	EaseOutQuad
	EaseInOutQuad
	EaseInCubic
	EaseOutCubic
	EaseInOutCubic
	EaseInQuart
	EaseOutQuart
	EaseInOutQuart
	// Cinematic is a steep quartic blend: slow departure, fast middle,
	// long settle.
	Cinematic
)

// Default is the curve substituted for anything unrecognized.
const Default = EaseInOutCubic

// Kinds lists every curve in declaration order.
var Kinds = []Kind{
	Linear,
	EaseInQuad, EaseOutQuad, EaseInOutQuad,
	EaseInCubic, EaseOutCubic, EaseInOutCubic,
	EaseInQuart, EaseOutQuart, EaseInOutQuart,
	Cinematic,
}

var names = map[Kind]string{
	Linear:         "linear",
	EaseInQuad:     "easeInQuad",
	EaseOutQuad:    "easeOutQuad",
	EaseInOutQuad:  "easeInOutQuad",
	EaseInCubic:    "easeInCubic",
	EaseOutCubic:   "easeOutCubic",
	EaseInOutCubic: "easeInOutCubic",
	EaseInQuart:    "easeInQuart",
	EaseOutQuart:   "easeOutQuart",
	EaseInOutQuart: "easeInOutQuart",
	Cinematic:      "cinematic",
}

// String returns the curve name.
func (k Kind) String() string {
	if n, ok := names[k]; ok {
		return n
	}
	return names[Default]
}

// Parse maps a curve name to its Kind. Unknown names yield Default.
func Parse(name string) Kind {
	for k, n := range names {
		if n == name {
			return k
		}
	}
	return Default
}

// Func is a curve as a plain function, for hosts that take callbacks.
type Func func(t float64) float64

// Func returns the curve as a function value.
func (k Kind) Func() Func {
	return k.Apply
}

// Apply evaluates the curve at t, clamping t to [0,1].
func (k Kind) Apply(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}

	switch k {
	case Linear:
		return t
	case EaseInQuad:
		return t * t
	case EaseOutQuad:
		return t * (2 - t)
	case EaseInOutQuad:
		if t < 0.5 {
			return 2 * t * t
		}
		return 1 - math.Pow(-2*t+2, 2)/2
	case EaseInCubic:
		return t * t * t
	case EaseOutCubic:
		return 1 - math.Pow(1-t, 3)
	case EaseInQuart:
		return t * t * t * t
	case EaseOutQuart:
		return 1 - math.Pow(1-t, 4)
	case EaseInOutCubic:
		return easeInOutCubic(t)
	case EaseInOutQuart:
		return easeInOutQuart(t)
	case Cinematic:
		// Quartic in-out over a smoothstep-warped clock: flatter at both
		// ends and steeper through the middle than plain quartic.
		return easeInOutQuart(t * t * (3 - 2*t))
	default:
		return easeInOutCubic(t)
	}
}

func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

func easeInOutQuart(t float64) float64 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 4)/2
}
