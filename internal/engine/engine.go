package engine

import (
	"context"

	"tween/internal/scene"
	"tween/internal/transport"
)

type Engine struct {
	transport *transport.Server
	show      *scene.Show
}

func (e *Engine) Run(ctx context.Context) error {

	go func() {
		<-ctx.Done()
		e.transport.Stop()
		if e.show != nil {
			_ = e.show.Close()
		}
	}()

	return e.transport.Serve()
}
