package lighting

import "github.com/civicmap/cinematic/pkg/math"

// Period is a coarse time-of-day classification.
type Period int

const (
	Night Period = iota
	Dawn
	Day
	Dusk
)

// Period boundaries in hours.
const (
	dawnStart = 5.0
	dayStart  = 7.0
	duskStart = 18.0
	nightFrom = 20.5
)

func (p Period) String() string {
	switch p {
	case Dawn:
		return "dawn"
	case Day:
		return "day"
	case Dusk:
		return "dusk"
	default:
		return "night"
	}
}

// GetTimePeriod classifies an hour: night [20.5,5), dawn [5,7), day [7,18),
// dusk [18,20.5).
func GetTimePeriod(hour float64) Period {
	h := NormalizeHour(hour)
	switch {
	case h >= dawnStart && h < dayStart:
		return Dawn
	case h >= dayStart && h < duskStart:
		return Day
	case h >= duskStart && h < nightFrom:
		return Dusk
	default:
		return Night
	}
}

// Fog describes the atmospheric depth effect. Range is [near, far] in km.
type Fog struct {
	Range      [2]float64 `json:"range" yaml:"range"`
	Color      string     `json:"color" yaml:"color"`
	HighColor  string     `json:"high_color" yaml:"high_color"`
	SpaceColor string     `json:"space_color" yaml:"space_color"`
}

// Profile is the complete atmosphere for one hour. Consumers apply it as a
// whole; partially applied profiles produce mismatched sky and fog.
type Profile struct {
	Hour         float64     `json:"hour" yaml:"hour"`
	Period       Period      `json:"-" yaml:"-"`
	Sun          SunPosition `json:"sun" yaml:"sun"`
	Intensity    float64     `json:"intensity" yaml:"intensity"`
	SkyColor     string      `json:"sky_color" yaml:"sky_color"`
	HorizonColor string      `json:"horizon_color" yaml:"horizon_color"`
	Fog          Fog         `json:"fog" yaml:"fog"`
}

// palette is the set of colors blended between period anchors.
type palette struct {
	sky, horizon         string
	fog, fogHigh, fogSky string
}

// anchor is a fixed atmosphere at a period boundary.
type anchor struct {
	palette
	intensity       float64
	fogNear, fogFar float64
}

var (
	nightAnchor = anchor{
		palette: palette{
			sky:     "#0b1026",
			horizon: "#1b2745",
			fog:     "#0d1325",
			fogHigh: "#1b2745",
			fogSky:  "#000005",
		},
		intensity: 0.15,
		fogNear:   0.5,
		fogFar:    6,
	}

	dayAnchor = anchor{
		palette: palette{
			sky:     "#87ceeb",
			horizon: "#dcefff",
			fog:     "#d6e6f2",
			fogHigh: "#8fc6ea",
			fogSky:  "#1a3a6b",
		},
		intensity: 1.0,
		fogNear:   1,
		fogFar:    12,
	}

	// Midpoints of dawn and dusk. They only shape the color path; the
	// period edges still land exactly on the night and day anchors.
	sunrisePalette = palette{
		sky:     "#4a5d8f",
		horizon: "#f6a06b",
		fog:     "#c98b7a",
		fogHigh: "#6b6f9e",
		fogSky:  "#0a0f2c",
	}
	sunsetPalette = palette{
		sky:     "#3f4f86",
		horizon: "#f27b50",
		fog:     "#b9705f",
		fogHigh: "#5a5690",
		fogSky:  "#090c26",
	}
)

// GetLightingProfile returns the atmosphere for the given hour and latitude.
// Night and day are fixed; dawn and dusk blend between the neighboring anchors
// so consecutive hours never jump.
func GetLightingProfile(hour, latitude float64) Profile {
	h := NormalizeHour(hour)
	period := GetTimePeriod(h)

	p := Profile{
		Hour:   h,
		Period: period,
		Sun:    CalculateSunPosition(h, latitude),
	}

	switch period {
	case Day:
		p.fill(dayAnchor.palette, dayAnchor.intensity, dayAnchor.fogNear, dayAnchor.fogFar)
	case Dawn:
		t := (h - dawnStart) / (dayStart - dawnStart)
		p.fill(
			blendThrough(nightAnchor.palette, sunrisePalette, dayAnchor.palette, t),
			math.Lerp(nightAnchor.intensity, dayAnchor.intensity, t),
			math.Lerp(nightAnchor.fogNear, dayAnchor.fogNear, t),
			math.Lerp(nightAnchor.fogFar, dayAnchor.fogFar, t),
		)
	case Dusk:
		t := (h - duskStart) / (nightFrom - duskStart)
		p.fill(
			blendThrough(dayAnchor.palette, sunsetPalette, nightAnchor.palette, t),
			math.Lerp(dayAnchor.intensity, nightAnchor.intensity, t),
			math.Lerp(dayAnchor.fogNear, nightAnchor.fogNear, t),
			math.Lerp(dayAnchor.fogFar, nightAnchor.fogFar, t),
		)
	default:
		p.fill(nightAnchor.palette, nightAnchor.intensity, nightAnchor.fogNear, nightAnchor.fogFar)
	}
	return p
}

func (p *Profile) fill(pal palette, intensity, near, far float64) {
	p.Intensity = math.Clamp01(intensity)
	p.SkyColor = pal.sky
	p.HorizonColor = pal.horizon
	p.Fog = Fog{
		Range:      [2]float64{math.Round(near, 2), math.Round(far, 2)},
		Color:      pal.fog,
		HighColor:  pal.fogHigh,
		SpaceColor: pal.fogSky,
	}
}

// blendThrough walks from -> mid -> to as t goes 0 -> 0.5 -> 1.
func blendThrough(from, mid, to palette, t float64) palette {
	t = math.Clamp01(t)
	if t < 0.5 {
		return blendPalette(from, mid, t*2)
	}
	return blendPalette(mid, to, t*2-1)
}

func blendPalette(a, b palette, t float64) palette {
	return palette{
		sky:     InterpolateColor(a.sky, b.sky, t),
		horizon: InterpolateColor(a.horizon, b.horizon, t),
		fog:     InterpolateColor(a.fog, b.fog, t),
		fogHigh: InterpolateColor(a.fogHigh, b.fogHigh, t),
		fogSky:  InterpolateColor(a.fogSky, b.fogSky, t),
	}
}

// LightColor is the tint of the directional light: warm near the horizon,
// white with the sun high, moonlight blue at night.
func (p Profile) LightColor() string {
	if !p.Sun.AboveHorizon() {
		return "#9fb3d9"
	}
	return InterpolateColor("#ffb46b", "#ffffff", p.Sun.Altitude/30)
}
