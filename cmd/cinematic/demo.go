package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/paulmach/orb"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/civicmap/cinematic/internal/config"
	"github.com/civicmap/cinematic/internal/engine/camera"
	"github.com/civicmap/cinematic/internal/engine/frame"
	"github.com/civicmap/cinematic/internal/engine/lighting"
	"github.com/civicmap/cinematic/internal/engine/viewport"
	"github.com/civicmap/cinematic/internal/logger"
	"github.com/civicmap/cinematic/internal/observability"
)

// Plaza de Mayo and its surroundings.
var (
	demoHome = camera.Pose{Center: orb.Point{-58.3722, -34.6083}, Zoom: 14, Pitch: 30}

	demoTour = []camera.Pose{
		{Center: orb.Point{-58.3702, -34.6081}, Zoom: 16.5, Bearing: 20, Pitch: 55},
		{Center: orb.Point{-58.3816, -34.6037}, Zoom: 17, Bearing: 290, Pitch: 60},
		{Center: orb.Point{-58.3925, -34.6096}, Zoom: 16, Bearing: 200, Pitch: 50},
	}

	demoParcel = orb.Polygon{{
		{-58.3735, -34.6075}, {-58.3710, -34.6075},
		{-58.3710, -34.6092}, {-58.3735, -34.6092},
		{-58.3735, -34.6075},
	}}
)

func cmdDemo(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: cinematic demo <tour|orbit|reveal|fly>")
	}
	kind := args[0]

	var metrics *observability.Collector
	reg := prometheus.NewRegistry()
	if cfg.Metrics.Enabled {
		var err error
		if metrics, err = observability.NewCollector(reg); err != nil {
			return err
		}
	}

	loop := frame.NewLoop(time.Now(), cfg.Viewport.FPS)
	vp := viewport.NewHeadless(loop, float64(cfg.Viewport.Width), float64(cfg.Viewport.Height), demoHome)
	anim := camera.NewAnimator(vp, loop, metrics)

	cache, err := lighting.NewProfileCache(cfg.Lighting.CacheSize)
	if err != nil {
		return err
	}
	now := time.Now()
	hour := float64(now.Hour()) + float64(now.Minute())/60
	profile, err := lighting.ApplyLighting(vp, hour, lighting.ApplyOptions{
		Latitude: cfg.Lighting.Latitude,
		Cache:    cache,
		Metrics:  metrics,
	})
	if err != nil {
		return err
	}
	logger.Info("lighting applied",
		zap.String("time", lighting.FormatTime(hour)),
		zap.Stringer("period", profile.Period),
		zap.Float64("intensity", profile.Intensity),
	)

	unsub := vp.OnSettled(func() {
		logger.Info("camera settled", zap.Stringer("pose", vp.Pose()))
	})
	defer unsub()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session, err := startDemo(anim, kind, cfg)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	runCtx, cancelRun := context.WithCancel(gctx)
	defer cancelRun()

	g.Go(func() error {
		return frame.NewRunner(loop).Run(runCtx)
	})
	if cfg.Metrics.Enabled {
		srv := &http.Server{Addr: cfg.Metrics.Listen, Handler: metricsMux(metrics), ReadHeaderTimeout: 5 * time.Second}
		g.Go(func() error {
			logger.Info("serving metrics", zap.String("addr", cfg.Metrics.Listen))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-runCtx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}
	g.Go(func() error {
		defer cancelRun()
		if session != nil {
			if err := session.Wait(gctx); err != nil {
				return err
			}
		}
		// let the host finish its last transition
		for vp.Moving() {
			select {
			case <-gctx.Done():
				return nil
			case <-time.After(50 * time.Millisecond):
			}
		}
		logger.Info("demo finished", zap.String("kind", kind), zap.Stringer("pose", vp.Pose()))
		return nil
	})

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		anim.Stop()
		logger.Info("demo interrupted")
		return nil
	}
	return err
}

// startDemo starts the named animation. Fly-to has no session.
func startDemo(anim *camera.Animator, kind string, cfg *config.Config) (*camera.Session, error) {
	switch kind {
	case "tour":
		opts := cfg.Camera.TourOptions()
		opts.OnWaypoint = func(i int, p camera.Pose) {
			logger.Info("tour waypoint", zap.Int("index", i), zap.Stringer("pose", p))
		}
		return anim.TourPath(demoTour, opts), nil
	case "orbit":
		opts := cfg.Camera.OrbitOptions()
		opts.Pitch = camera.Float(60)
		opts.OnComplete = func() { logger.Info("orbit complete") }
		return anim.OrbitAround(demoHome.Center, opts), nil
	case "reveal":
		return anim.RevealLocation(demoTour[0], cfg.Camera.RevealOptions()), nil
	case "fly":
		return nil, anim.FlyToTarget(demoParcel, cfg.Camera.FlyOptions())
	default:
		return nil, fmt.Errorf("unknown demo %q", kind)
	}
}

func metricsMux(metrics *observability.Collector) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	return mux
}
