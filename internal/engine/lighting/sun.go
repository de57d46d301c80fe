// Package lighting computes the time-of-day atmosphere for the map viewport:
// an approximate solar position, period-based sky and fog colors, and the
// step that writes a whole profile into the host's atmosphere sinks.
package lighting

import (
	gomath "math"

	"github.com/civicmap/cinematic/pkg/math"
)

// ReferenceLatitude is used when the caller has no better latitude.
const ReferenceLatitude = -34.6

// modelDayOfYear pins the solar declination to mid-year. The model is a
// visualization aid, not an ephemeris.
const modelDayOfYear = 172

// SunPosition is the sun's place in the sky in degrees.
// Azimuth is in [0,360) with 0 north and 90 east; altitude is in [-90,90]
// with negative values below the horizon.
type SunPosition struct {
	Azimuth  float64 `json:"azimuth" yaml:"azimuth"`
	Altitude float64 `json:"altitude" yaml:"altitude"`
}

// NormalizeHour maps any hour value into [0,24).
func NormalizeHour(hour float64) float64 {
	return math.Wrap(hour, 24)
}

// Declination returns the solar declination in degrees used by the model.
func Declination() float64 {
	return 23.45 * gomath.Sin(math.Radians(360.0/365.0*(modelDayOfYear-81)))
}

// CalculateSunPosition returns the sun position at the given hour of day and
// latitude. Azimuth is rounded to whole degrees and altitude to one decimal.
func CalculateSunPosition(hour, latitude float64) SunPosition {
	h := NormalizeHour(hour)

	lat := math.Radians(latitude)
	dec := math.Radians(Declination())
	hourAngle := math.Radians(15 * (h - 12))

	sinAlt := math.Clamp(
		gomath.Sin(lat)*gomath.Sin(dec)+gomath.Cos(lat)*gomath.Cos(dec)*gomath.Cos(hourAngle),
		-1, 1,
	)
	alt := gomath.Asin(sinAlt)

	azimuth := 0.0
	// At the poles or with the sun at the zenith the azimuth is undefined.
	if denom := gomath.Cos(lat) * gomath.Cos(alt); gomath.Abs(denom) > 1e-12 {
		cosAz := math.Clamp((gomath.Sin(dec)-gomath.Sin(lat)*sinAlt)/denom, -1, 1)
		azimuth = math.Degrees(gomath.Acos(cosAz))
	}
	if h > 12 {
		azimuth = 360 - azimuth
	}

	return SunPosition{
		Azimuth:  math.WrapDegrees(gomath.Round(azimuth)),
		Altitude: math.Round(math.Degrees(alt), 1),
	}
}

// AboveHorizon reports whether the sun is up.
func (p SunPosition) AboveHorizon() bool {
	return p.Altitude > 0
}

// Direction returns the unit vector pointing from the scene towards the sun,
// Y up, Z north, X east.
func (p SunPosition) Direction() math.Vec3 {
	return SunDirection(p.Azimuth, p.Altitude)
}

// SunDirection converts azimuth/altitude angles in degrees to a light
// direction vector.
func SunDirection(azimuth, altitude float64) math.Vec3 {
	az := math.Radians(azimuth)
	alt := math.Radians(altitude)

	x := float32(gomath.Cos(alt) * gomath.Sin(az))
	y := float32(gomath.Sin(alt))
	z := float32(gomath.Cos(alt) * gomath.Cos(az))

	return math.Vec3{X: x, Y: y, Z: z}.Normalize()
}
