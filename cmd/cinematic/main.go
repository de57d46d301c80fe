// cinematic prints lighting profiles, resolves proposal geometries into camera
// targets and runs camera animations against a headless viewport.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/civicmap/cinematic/internal/config"
	"github.com/civicmap/cinematic/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command, rest := args[0], args[1:]
	switch command {
	case "profile", "light":
		err = cmdProfile(cfg, rest)
	case "resolve":
		err = cmdResolve(cfg, rest)
	case "demo":
		err = cmdDemo(cfg, rest)
	case "config":
		err = cmdConfig(cfg, rest)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`cinematic - camera and lighting engine for the civic map

Usage:
  cinematic [flags] <command> [args]

Commands:
  profile [HH:MM|hour]...         Print lighting profiles (default: every hour)
  resolve <file.geojson|->        Print the camera target for a geometry
  demo <tour|orbit|reveal|fly>    Run an animation on a headless viewport
  config save [path]              Write the effective config as YAML

Flags:
  -config <path>       Config file (default ./config.yaml or the user config dir)
  -latitude <deg>      Latitude for the sun position
  -easing <name>       Default easing curve
  -metrics-addr <addr> Serve Prometheus metrics while running
  -debug               Enable debug logging

Examples:
  cinematic profile 06:30 12 19.5
  cinematic resolve proposal.geojson
  cinematic -metrics-addr :9464 demo tour`)
}
