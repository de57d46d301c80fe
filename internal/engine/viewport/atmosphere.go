package viewport

import (
	"go.uber.org/zap"

	"github.com/civicmap/cinematic/internal/engine/lighting"
)

// SetLight records the directional light.
func (h *Headless) SetLight(l lighting.Light) {
	h.mu.Lock()
	h.light = l
	h.stats.LightWrites++
	h.mu.Unlock()

	h.log.Debug("light set",
		zap.Float64("intensity", l.Intensity),
		zap.String("color", l.Color),
	)
}

// SetFog records the fog settings.
func (h *Headless) SetFog(f lighting.FogSettings) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fog = f
}

// SetSky records the sky gradient.
func (h *Headless) SetSky(s lighting.SkyGradient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sky = lighting.SkyGradient{Stops: append([]lighting.ColorStop(nil), s.Stops...)}
}

// Atmosphere returns the last values written to the sinks.
func (h *Headless) Atmosphere() (lighting.Light, lighting.FogSettings, lighting.SkyGradient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.light, h.fog, h.sky
}
