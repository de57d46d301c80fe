package config

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/multierr"

	"github.com/civicmap/cinematic/internal/engine/camera"
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error

	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("viewport: size %dx%d must be positive", c.Viewport.Width, c.Viewport.Height))
	}
	if c.Viewport.FPS <= 0 || c.Viewport.FPS > 240 {
		err = multierr.Append(err, fmt.Errorf("viewport: fps %d out of range (1-240)", c.Viewport.FPS))
	}

	if c.Lighting.Latitude < -90 || c.Lighting.Latitude > 90 {
		err = multierr.Append(err, fmt.Errorf("lighting: latitude %v out of range", c.Lighting.Latitude))
	}
	if c.Lighting.CacheSize < 0 {
		err = multierr.Append(err, fmt.Errorf("lighting: cache_size %d is negative", c.Lighting.CacheSize))
	}

	cam := c.Camera
	if cam.MaxZoom < camera.MinZoom || cam.MaxZoom > camera.MaxZoom {
		err = multierr.Append(err, fmt.Errorf("camera: max_zoom %v out of range", cam.MaxZoom))
	}
	if cam.Pitch < camera.MinPitch || cam.Pitch > camera.MaxPitch {
		err = multierr.Append(err, fmt.Errorf("camera: pitch %v out of range", cam.Pitch))
	}
	if cam.Padding < 0 || 2*cam.Padding >= float64(min(c.Viewport.Width, c.Viewport.Height)) {
		err = multierr.Append(err, fmt.Errorf("camera: padding %v does not fit the viewport", cam.Padding))
	}
	if cam.RevealZoomOut < 0 {
		err = multierr.Append(err, fmt.Errorf("camera: reveal_zoom_out %v is negative", cam.RevealZoomOut))
	}
	if cam.OrbitRotations <= 0 {
		err = multierr.Append(err, fmt.Errorf("camera: orbit_rotations %v must be positive", cam.OrbitRotations))
	}
	durations := []struct {
		name string
		d    time.Duration
	}{
		{"fly_duration", cam.FlyDuration},
		{"ease_duration", cam.EaseDuration},
		{"reveal_delay", cam.RevealDelay},
		{"reveal_duration", cam.RevealDuration},
		{"orbit_duration", cam.OrbitDuration},
		{"tour_duration", cam.TourDuration},
		{"tour_pause", cam.TourPause},
	}
	for _, d := range durations {
		if d.d < 0 {
			err = multierr.Append(err, fmt.Errorf("camera: %s %v is negative", d.name, d.d))
		}
	}

	if c.Metrics.Enabled && c.Metrics.Listen == "" {
		err = multierr.Append(err, errors.New("metrics: listen address required when enabled"))
	}
	return err
}
