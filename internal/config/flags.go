package config

import (
	"flag"
	"math"
)

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagWidth       = flag.Int("width", 0, "Viewport width in pixels")
	flagHeight      = flag.Int("height", 0, "Viewport height in pixels")
	flagFPS         = flag.Int("fps", 0, "Frame rate of the animation loop")
	flagLatitude    = flag.Float64("latitude", math.NaN(), "Latitude for sun position (unset keeps the configured value)")
	flagEasing      = flag.String("easing", "", "Default easing curve")
	flagMetrics     = flag.Bool("metrics", false, "Serve Prometheus metrics")
	flagMetricsAddr = flag.String("metrics-addr", "", "Metrics listen address")
	flagLogFile     = flag.String("log-file", "", "Write logs to this file")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the positional arguments left after flags.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Viewport.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Viewport.Height = *flagHeight
	}
	if *flagFPS > 0 {
		cfg.Viewport.FPS = *flagFPS
	}
	// NaN marks the flag as unset so the equator stays selectable.
	if !math.IsNaN(*flagLatitude) {
		cfg.Lighting.Latitude = *flagLatitude
	}
	if *flagEasing != "" {
		cfg.Camera.Easing = *flagEasing
	}
	if *flagMetrics {
		cfg.Metrics.Enabled = true
	}
	if *flagMetricsAddr != "" {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Listen = *flagMetricsAddr
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
