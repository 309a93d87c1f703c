package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"tween/internal/config"
	"tween/internal/engine"
	"tween/internal/logging"
	"tween/interp"
)

func main() {
	cfgPath := flag.String("config", "engine.yml", "engine config file (optional)")
	flag.Parse()

	logging.InitFromEnv()

	cfg, err := config.LoadEngineConfig(*cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Log.Level != "" || cfg.Log.JSON {
		logging.Configure(logging.Options{Level: cfg.Log.Level, JSON: cfg.Log.JSON})
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Populate the interpolator registry before any controller exists.
	interp.RegisterDefaults()

	e, err := engine.Bootstrap(ctx, cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	if err := e.Run(ctx); err != nil {
		log.Fatalf("engine: %v", err)
	}
}
