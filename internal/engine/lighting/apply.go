package lighting

import (
	"errors"

	"go.uber.org/zap"

	"github.com/civicmap/cinematic/internal/logger"
	"github.com/civicmap/cinematic/internal/observability"
	"github.com/civicmap/cinematic/pkg/math"
)

// ErrAtmosphereNotReady is returned when the host cannot accept atmosphere
// changes yet. The call is skipped; callers retry once the host is ready.
var ErrAtmosphereNotReady = errors.New("atmosphere not ready")

// Light is the directional light written to the host.
type Light struct {
	Direction math.Vec3
	Intensity float64
	Color     string
}

// FogSettings is the fog written to the host.
type FogSettings struct {
	Range      [2]float64
	Color      string
	HighColor  string
	SpaceColor string
	// HorizonBlend softens the fog edge; thinner at night.
	HorizonBlend float64
}

// ColorStop is one stop of the sky gradient, Offset in [0,1] from horizon
// to zenith.
type ColorStop struct {
	Offset float64
	Color  string
}

// SkyGradient is the sky dome gradient written to the host.
type SkyGradient struct {
	Stops []ColorStop
}

// Atmosphere is the set of host sinks a profile is written into. The engine
// never reads them back.
type Atmosphere interface {
	Ready() bool
	SetLight(Light)
	SetFog(FogSettings)
	SetSky(SkyGradient)
}

// ApplyOptions controls ApplyLighting.
type ApplyOptions struct {
	Latitude float64
	// Cache, when set, serves profiles instead of recomputing them.
	Cache   *ProfileCache
	Metrics *observability.Collector
}

// DefaultApplyOptions uses the reference latitude and no cache.
func DefaultApplyOptions() ApplyOptions {
	return ApplyOptions{Latitude: ReferenceLatitude}
}

// ApplyLighting computes the profile for hour and writes it to atm in full.
// If atm is nil or not ready nothing is written and ErrAtmosphereNotReady is
// returned.
func ApplyLighting(atm Atmosphere, hour float64, opts ApplyOptions) (Profile, error) {
	period := GetTimePeriod(hour)
	if atm == nil || !atm.Ready() {
		logger.Warn("atmosphere not ready, skipping lighting update",
			zap.Float64("hour", hour),
			zap.Stringer("period", period),
		)
		opts.Metrics.LightingApplied(period.String(), observability.OutcomeSkipped)
		return Profile{}, ErrAtmosphereNotReady
	}

	var p Profile
	if opts.Cache != nil {
		p = opts.Cache.Get(hour, opts.Latitude)
	} else {
		p = GetLightingProfile(hour, opts.Latitude)
	}

	atm.SetLight(LightFor(p))
	atm.SetFog(FogFor(p))
	atm.SetSky(SkyFor(p))

	logger.Debug("lighting applied",
		zap.String("time", FormatTime(p.Hour)),
		zap.Stringer("period", p.Period),
		zap.Float64("sun_azimuth", p.Sun.Azimuth),
		zap.Float64("sun_altitude", p.Sun.Altitude),
		zap.Float64("intensity", p.Intensity),
	)
	opts.Metrics.LightingApplied(p.Period.String(), observability.OutcomeApplied)
	return p, nil
}

// LightFor derives the directional light for a profile.
func LightFor(p Profile) Light {
	return Light{
		Direction: p.Sun.Direction(),
		Intensity: p.Intensity,
		Color:     p.LightColor(),
	}
}

// FogFor derives the fog settings for a profile.
func FogFor(p Profile) FogSettings {
	return FogSettings{
		Range:        p.Fog.Range,
		Color:        p.Fog.Color,
		HighColor:    p.Fog.HighColor,
		SpaceColor:   p.Fog.SpaceColor,
		HorizonBlend: math.Lerp(0.02, 0.1, p.Intensity),
	}
}

// SkyFor derives a three-stop gradient: horizon, a blended middle, and sky.
func SkyFor(p Profile) SkyGradient {
	return SkyGradient{Stops: []ColorStop{
		{Offset: 0, Color: p.HorizonColor},
		{Offset: 0.4, Color: InterpolateColor(p.HorizonColor, p.SkyColor, 0.5)},
		{Offset: 1, Color: p.SkyColor},
	}}
}
