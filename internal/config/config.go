// Package config handles engine configuration loading and management.
package config

import (
	"time"

	"github.com/civicmap/cinematic/internal/engine/camera"
	"github.com/civicmap/cinematic/internal/engine/easing"
	"github.com/civicmap/cinematic/internal/engine/lighting"
)

// Config holds all engine settings.
type Config struct {
	Viewport ViewportConfig `yaml:"viewport"`
	Lighting LightingConfig `yaml:"lighting"`
	Camera   CameraConfig   `yaml:"camera"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ViewportConfig holds the headless viewport container and frame rate.
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

// LightingConfig holds atmosphere settings.
type LightingConfig struct {
	Latitude  float64 `yaml:"latitude"`
	CacheSize int     `yaml:"cache_size"` // Profiles kept in the LRU
}

// CameraConfig holds animation defaults.
type CameraConfig struct {
	FlyDuration  time.Duration `yaml:"fly_duration"`
	EaseDuration time.Duration `yaml:"ease_duration"`
	Padding      float64       `yaml:"padding"` // Pixels around fitted bounds
	MaxZoom      float64       `yaml:"max_zoom"`
	Pitch        float64       `yaml:"pitch"`
	Easing       string        `yaml:"easing"`

	RevealDelay    time.Duration `yaml:"reveal_delay"`
	RevealDuration time.Duration `yaml:"reveal_duration"`
	RevealZoomOut  float64       `yaml:"reveal_zoom_out"`

	OrbitDuration  time.Duration `yaml:"orbit_duration"`
	OrbitRotations float64       `yaml:"orbit_rotations"`

	TourDuration time.Duration `yaml:"tour_duration"`
	TourPause    time.Duration `yaml:"tour_pause"`
}

// MetricsConfig holds the Prometheus endpoint settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Listen  string `yaml:"listen"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	fly := camera.DefaultFlyOptions()
	reveal := camera.DefaultRevealOptions()
	orbit := camera.DefaultOrbitOptions()
	tour := camera.DefaultTourOptions()

	return &Config{
		Viewport: ViewportConfig{
			Width:  1280,
			Height: 720,
			FPS:    60,
		},
		Lighting: LightingConfig{
			Latitude:  lighting.ReferenceLatitude,
			CacheSize: lighting.DefaultCacheSize,
		},
		Camera: CameraConfig{
			FlyDuration:    fly.Duration,
			EaseDuration:   camera.DefaultEaseOptions().Duration,
			Padding:        fly.Padding,
			MaxZoom:        fly.MaxZoom,
			Pitch:          fly.Pitch,
			Easing:         fly.Easing.String(),
			RevealDelay:    reveal.Delay,
			RevealDuration: reveal.Duration,
			RevealZoomOut:  reveal.ZoomOut,
			OrbitDuration:  orbit.Duration,
			OrbitRotations: orbit.Rotations,
			TourDuration:   tour.Duration,
			TourPause:      tour.Pause,
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Listen:  "127.0.0.1:9464",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// FlyOptions builds fly-to options from the camera defaults.
func (c CameraConfig) FlyOptions() camera.FlyOptions {
	return camera.FlyOptions{
		Duration: c.FlyDuration,
		Padding:  c.Padding,
		MaxZoom:  c.MaxZoom,
		Pitch:    c.Pitch,
		Easing:   easing.Parse(c.Easing),
	}
}

// EaseOptions builds ease-to options.
func (c CameraConfig) EaseOptions() camera.EaseOptions {
	return camera.EaseOptions{Duration: c.EaseDuration, Easing: easing.Parse(c.Easing)}
}

// RevealOptions builds reveal options.
func (c CameraConfig) RevealOptions() camera.RevealOptions {
	return camera.RevealOptions{
		ZoomOut:  c.RevealZoomOut,
		Delay:    c.RevealDelay,
		Duration: c.RevealDuration,
	}
}

// OrbitOptions builds orbit options. Orbits always sweep linearly.
func (c CameraConfig) OrbitOptions() camera.OrbitOptions {
	return camera.OrbitOptions{
		Duration:  c.OrbitDuration,
		Rotations: c.OrbitRotations,
		Easing:    easing.Linear,
	}
}

// TourOptions builds tour options.
func (c CameraConfig) TourOptions() camera.TourOptions {
	return camera.TourOptions{
		Duration: c.TourDuration,
		Pause:    c.TourPause,
		Easing:   easing.Parse(c.Easing),
	}
}
