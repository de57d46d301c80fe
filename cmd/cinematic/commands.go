package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/civicmap/cinematic/internal/config"
	"github.com/civicmap/cinematic/internal/engine/geometry"
	"github.com/civicmap/cinematic/internal/engine/lighting"
)

// profileView is the printable form of a lighting profile.
type profileView struct {
	Time    string           `yaml:"time"`
	Period  string           `yaml:"period"`
	Profile lighting.Profile `yaml:",inline"`
}

func cmdProfile(cfg *config.Config, args []string) error {
	cache, err := lighting.NewProfileCache(cfg.Lighting.CacheSize)
	if err != nil {
		return err
	}

	var hours []float64
	if len(args) == 0 {
		for h := 0; h < 24; h++ {
			hours = append(hours, float64(h))
		}
	}
	for _, arg := range args {
		h, err := parseHour(arg)
		if err != nil {
			return err
		}
		hours = append(hours, h)
	}

	views := make([]profileView, 0, len(hours))
	for _, h := range hours {
		p := cache.Get(h, cfg.Lighting.Latitude)
		views = append(views, profileView{
			Time:    lighting.FormatTime(p.Hour),
			Period:  p.Period.String(),
			Profile: p,
		})
	}

	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close()
	return enc.Encode(views)
}

// parseHour accepts "HH:MM" or a decimal hour.
func parseHour(s string) (float64, error) {
	if h, err := lighting.ParseTime(s); err == nil {
		return h, nil
	}
	h, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is neither HH:MM nor an hour: %w", s, lighting.ErrInvalidTime)
	}
	return lighting.NormalizeHour(h), nil
}

func cmdResolve(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: cinematic resolve <file.geojson|->")
	}

	data, err := readInput(args[0])
	if err != nil {
		return err
	}
	target, err := geometry.ResolveGeoJSON(data)
	if err != nil {
		return err
	}

	fmt.Printf("Kind:    %s\n", target.Kind)
	fmt.Printf("Center:  [%.6f, %.6f]\n", target.Center.Lon(), target.Center.Lat())
	fmt.Printf("Zoom:    %.2f (suggested)\n", target.SuggestedZoom)
	if target.HasBounds {
		fmt.Printf("Bounds:  [[%.6f, %.6f], [%.6f, %.6f]]\n",
			target.Bounds.Min.Lon(), target.Bounds.Min.Lat(),
			target.Bounds.Max.Lon(), target.Bounds.Max.Lat())
		pad := cfg.Camera.Padding
		fit := geometry.CalculateOptimalZoom(target.Bounds,
			float64(cfg.Viewport.Width)-2*pad, float64(cfg.Viewport.Height)-2*pad)
		fmt.Printf("Fit:     %.2f (%dx%d, padding %.0f)\n", fit, cfg.Viewport.Width, cfg.Viewport.Height, pad)
	}
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func cmdConfig(cfg *config.Config, args []string) error {
	if len(args) < 1 || args[0] != "save" {
		return errors.New("usage: cinematic config save [path]")
	}
	if len(args) > 1 {
		return cfg.SaveTo(args[1])
	}
	if err := cfg.Save(); err != nil {
		return err
	}
	fmt.Printf("Saved to %s\n", config.ConfigDir())
	return nil
}
