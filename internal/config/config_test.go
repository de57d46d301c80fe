package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/multierr"

	"github.com/civicmap/cinematic/internal/engine/easing"
	"github.com/civicmap/cinematic/internal/engine/lighting"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test viewport defaults
	if cfg.Viewport.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Viewport.Width)
	}
	if cfg.Viewport.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Viewport.Height)
	}
	if cfg.Viewport.FPS != 60 {
		t.Errorf("expected fps 60, got %d", cfg.Viewport.FPS)
	}

	// Test lighting defaults
	if cfg.Lighting.Latitude != lighting.ReferenceLatitude {
		t.Errorf("expected reference latitude, got %f", cfg.Lighting.Latitude)
	}

	// Test camera defaults
	if cfg.Camera.Easing != "cinematic" {
		t.Errorf("expected easing 'cinematic', got %s", cfg.Camera.Easing)
	}
	if cfg.Camera.RevealDelay != 100*time.Millisecond {
		t.Errorf("expected reveal delay 100ms, got %v", cfg.Camera.RevealDelay)
	}
	if cfg.Camera.RevealZoomOut != 4 {
		t.Errorf("expected reveal zoom out 4, got %v", cfg.Camera.RevealZoomOut)
	}

	// Test metrics and logging defaults
	if cfg.Metrics.Enabled {
		t.Error("expected metrics to be disabled by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
viewport:
  width: 1920
  height: 1080
  fps: 30

lighting:
  latitude: 40.4
  cache_size: 64

camera:
  fly_duration: 4s
  padding: 80
  max_zoom: 19
  easing: "easeOutQuart"
  tour_pause: 1500ms

metrics:
  enabled: true
  listen: ":9100"

logging:
  level: "debug"
  log_file: "cinematic.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Viewport.Width != 1920 || cfg.Viewport.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Viewport.Width, cfg.Viewport.Height)
	}
	if cfg.Viewport.FPS != 30 {
		t.Errorf("expected fps 30, got %d", cfg.Viewport.FPS)
	}
	if cfg.Lighting.Latitude != 40.4 {
		t.Errorf("expected latitude 40.4, got %f", cfg.Lighting.Latitude)
	}
	if cfg.Lighting.CacheSize != 64 {
		t.Errorf("expected cache size 64, got %d", cfg.Lighting.CacheSize)
	}
	if cfg.Camera.FlyDuration != 4*time.Second {
		t.Errorf("expected fly duration 4s, got %v", cfg.Camera.FlyDuration)
	}
	if cfg.Camera.TourPause != 1500*time.Millisecond {
		t.Errorf("expected tour pause 1.5s, got %v", cfg.Camera.TourPause)
	}
	if got := cfg.Camera.FlyOptions(); got.Easing != easing.EaseOutQuart || got.Padding != 80 || got.MaxZoom != 19 {
		t.Errorf("unexpected fly options %+v", got)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Listen != ":9100" {
		t.Errorf("unexpected metrics config %+v", cfg.Metrics)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "cinematic.log" {
		t.Errorf("expected log file 'cinematic.log', got %s", cfg.Logging.LogFile)
	}

	// Untouched values keep their defaults
	if cfg.Camera.RevealDelay != 100*time.Millisecond {
		t.Errorf("expected default reveal delay, got %v", cfg.Camera.RevealDelay)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	// Create temporary config file with invalid YAML
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
viewport:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Try to load - should error
	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	// Save current directory
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("viewport:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name: "viewport flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
				*flagFPS = 120
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Viewport.Width != 2560 || cfg.Viewport.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Viewport.Width, cfg.Viewport.Height)
				}
				if cfg.Viewport.FPS != 120 {
					t.Errorf("expected fps 120, got %d", cfg.Viewport.FPS)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
				*flagFPS = 0
			},
		},
		{
			name:  "latitude flag",
			setup: func() { *flagLatitude = 51.5 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Lighting.Latitude != 51.5 {
					t.Errorf("expected latitude 51.5, got %f", cfg.Lighting.Latitude)
				}
			},
			teardown: func() { *flagLatitude = math.NaN() },
		},
		{
			name:  "latitude flag selects the equator",
			setup: func() { *flagLatitude = 0 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Lighting.Latitude != 0 {
					t.Errorf("expected latitude 0, got %f", cfg.Lighting.Latitude)
				}
			},
			teardown: func() { *flagLatitude = math.NaN() },
		},
		{
			name:  "unset latitude flag keeps configured value",
			setup: func() {},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Lighting.Latitude != lighting.ReferenceLatitude {
					t.Errorf("expected reference latitude, got %f", cfg.Lighting.Latitude)
				}
			},
			teardown: func() {},
		},
		{
			name:  "easing flag",
			setup: func() { *flagEasing = "linear" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Camera.TourOptions().Easing != easing.Linear {
					t.Errorf("expected linear easing, got %s", cfg.Camera.Easing)
				}
			},
			teardown: func() { *flagEasing = "" },
		},
		{
			name:  "metrics address enables metrics",
			setup: func() { *flagMetricsAddr = ":9200" },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Metrics.Enabled || cfg.Metrics.Listen != ":9200" {
					t.Errorf("unexpected metrics config %+v", cfg.Metrics)
				}
			},
			teardown: func() { *flagMetricsAddr = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
viewport:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Viewport.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Viewport.Width)
	}

	// Height should be from file (900) since no flag override
	if cfg.Viewport.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Viewport.Height)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("viewport:\n  fps: 0\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "fps") {
		t.Errorf("expected fps validation error, got %v", err)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Viewport.Width = 0
	cfg.Lighting.Latitude = 120
	cfg.Camera.Pitch = 90
	cfg.Camera.TourPause = -time.Second
	cfg.Metrics.Enabled = true
	cfg.Metrics.Listen = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	errs := multierr.Errors(err)
	// width 0 also makes the padding check fail
	if len(errs) != 6 {
		t.Errorf("expected 6 errors, got %d: %v", len(errs), err)
	}
	for _, want := range []string{"viewport", "latitude", "pitch", "tour_pause", "metrics"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("missing %q in %v", want, err)
		}
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Camera.Easing = "easeInOutQuad"
	cfg.Camera.OrbitRotations = 2
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile() error = %v", err)
	}
	if loaded.Camera != cfg.Camera {
		t.Errorf("camera config changed on round trip: %+v", loaded.Camera)
	}
}

func TestLoadFromFileWrapsYAMLError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("camera: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	err := loadFromFile(Default(), path)
	if err == nil || errors.Unwrap(err) == nil {
		t.Errorf("expected wrapped yaml error, got %v", err)
	}
}
