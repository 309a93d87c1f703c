package engine

import (
	"context"
	"fmt"

	"tween/internal/config"
	"tween/internal/scene"
	"tween/internal/transport"
)

func Bootstrap(ctx context.Context, cfg config.Engine) (*Engine, error) {
	// 1. compile and start the show
	var show *scene.Show
	if cfg.Scene != "" {
		var err error
		show, err = scene.Compile(cfg.Scene, cfg.TickInterval)
		if err != nil {
			return nil, fmt.Errorf("scene: %w", err)
		}
		if err := show.Start(ctx); err != nil {
			return nil, err
		}
	}

	// 2. control surface (health, metrics, status)
	status := func() any {
		if show == nil {
			return []scene.TransitionStatus{}
		}
		return show.Status()
	}
	srv, err := transport.StartServer(cfg.HTTPPort, status)
	if err != nil {
		return nil, fmt.Errorf("transport: %w", err)
	}

	return &Engine{
		transport: srv,
		show:      show,
	}, nil
}
