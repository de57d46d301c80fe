package math

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Lerp interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Wrap maps v into [0, period) for any finite v, including negatives.
func Wrap(v, period float64) float64 {
	w := math.Mod(math.Mod(v, period)+period, period)
	// Mod of a tiny negative value can land exactly on period.
	if w >= period {
		return 0
	}
	return w
}

// WrapDegrees maps an angle into [0, 360).
func WrapDegrees(deg float64) float64 {
	return Wrap(deg, 360)
}

// ShortestArc returns the signed delta in (-180, 180] that rotates from one
// bearing to another.
func ShortestArc(from, to float64) float64 {
	d := WrapDegrees(to - from)
	if d > 180 {
		d -= 360
	}
	return d
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
