package scene

import (
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"tween/curve"
	"tween/dispatch"
	"tween/internal/config"
	"tween/internal/logging"
	"tween/internal/telemetry"
	"tween/transition"
)

// Show is a compiled scene: one render loop owning the sprites, plus one
// transition controller per declared animation.
type Show struct {
	loop       *dispatch.Loop
	actors     map[string]*Sprite
	entries    []*entry
	frameEvery time.Duration

	done     chan struct{}
	closeOne sync.Once
	cancel   context.CancelFunc
}

// entry pairs a controller with its status bookkeeping.
type entry struct {
	ctrl     *transition.Controller
	actor    string
	property string
	progress atomic.Uint64 // float64 bits of the last applied progress
}

// TransitionStatus is the control-surface view of one transition.
type TransitionStatus struct {
	ID       string  `json:"id"`
	Actor    string  `json:"actor"`
	Property string  `json:"property"`
	State    string  `json:"state"`
	Progress float64 `json:"progress"`
	Error    string  `json:"error,omitempty"`
}

// Compile loads a scene document and builds its loop, sprites, and
// controllers. The interpolator registry must already be populated.
func Compile(path string, defaultTick time.Duration) (*Show, error) {
	cfg, err := config.LoadSceneSpec(path)
	if err != nil {
		return nil, err
	}

	s := &Show{
		loop:       dispatch.NewLoop(cfg.Render.QueueSize),
		actors:     make(map[string]*Sprite),
		frameEvery: time.Duration(cfg.Render.FrameMS) * time.Millisecond,
		done:       make(chan struct{}),
	}

	for _, a := range cfg.Actors {
		if a.Name == "" {
			return nil, fmt.Errorf("scene: actor without a name")
		}
		if _, dup := s.actors[a.Name]; dup {
			return nil, fmt.Errorf("scene: duplicate actor %q", a.Name)
		}
		sp := NewSprite(a.Name, s.loop)
		sp.X, sp.Y = a.X, a.Y
		if a.Scale != nil {
			sp.Scale = *a.Scale
		}
		if a.Opacity != nil {
			sp.Opacity = *a.Opacity
		}
		sp.Label = a.Label
		if a.Tint != "" {
			tint, err := colorful.Hex(a.Tint)
			if err != nil {
				return nil, fmt.Errorf("scene: actor %q tint: %w", a.Name, err)
			}
			sp.Tint = tint
		}
		s.actors[a.Name] = sp
	}

	for i, t := range cfg.Transitions {
		sp, ok := s.actors[t.Actor]
		if !ok {
			return nil, fmt.Errorf("scene transition %d: unknown actor %q", i, t.Actor)
		}
		name := t.Curve
		if name == "" {
			name = "linear"
		}
		cv, err := curve.New(name, time.Duration(t.DurationMS)*time.Millisecond)
		if err != nil {
			return nil, fmt.Errorf("scene transition %d: %w", i, err)
		}
		tick := defaultTick
		if t.TickMS > 0 {
			tick = time.Duration(t.TickMS) * time.Millisecond
		}

		e := &entry{actor: t.Actor, property: t.Property}
		e.ctrl = transition.New(cv,
			transition.WithInterval(tick),
			transition.WithObserver(func(tk transition.Tick) {
				e.progress.Store(math.Float64bits(tk.Progress))
				telemetry.TicksTotal.Inc()
				telemetry.WritesTotal.Add(float64(tk.Writes))
				telemetry.MarshaledWritesTotal.Add(float64(tk.Marshaled))
			}))

		cur, err := currentValue(sp, t.Property)
		if err != nil {
			return nil, fmt.Errorf("scene transition %d (%s.%s): %w", i, t.Actor, t.Property, err)
		}
		dest, err := coerce(t.To, cur)
		if err != nil {
			return nil, fmt.Errorf("scene transition %d (%s.%s): %w", i, t.Actor, t.Property, err)
		}
		if err := e.ctrl.Add(sp, t.Property, dest); err != nil {
			return nil, fmt.Errorf("scene transition %d (%s.%s): %w", i, t.Actor, t.Property, err)
		}
		s.entries = append(s.entries, e)
	}
	return s, nil
}

// Start runs the render loop and every controller, then watches them to
// completion. ctx cancellation stops everything early.
func (s *Show) Start(ctx context.Context) error {
	ctx, s.cancel = context.WithCancel(ctx)
	go s.loop.Run(ctx)

	for _, e := range s.entries {
		if err := e.ctrl.Start(); err != nil {
			s.Close()
			return err
		}
		telemetry.TransitionsActive.Inc()
	}
	if s.frameEvery > 0 {
		go s.renderFrames(ctx)
	}
	go s.watch(ctx)
	return nil
}

// Done is closed once every controller has retired.
func (s *Show) Done() <-chan struct{} { return s.done }

// Close stops all controllers and the render loop. Idempotent.
func (s *Show) Close() error {
	s.closeOne.Do(func() {
		for _, e := range s.entries {
			e.ctrl.Stop()
		}
		if s.cancel != nil {
			s.cancel()
		}
		s.loop.Close()
	})
	return nil
}

// Status snapshots every transition for the control surface.
func (s *Show) Status() []TransitionStatus {
	out := make([]TransitionStatus, 0, len(s.entries))
	for _, e := range s.entries {
		st := TransitionStatus{
			ID:       e.ctrl.ID(),
			Actor:    e.actor,
			Property: e.property,
			State:    e.ctrl.State().String(),
			Progress: math.Float64frombits(e.progress.Load()),
		}
		if err := e.ctrl.Err(); err != nil {
			st.Error = err.Error()
		}
		out = append(out, st)
	}
	return out
}

func (s *Show) watch(ctx context.Context) {
	var wg sync.WaitGroup
	for _, e := range s.entries {
		wg.Add(1)
		go func(e *entry) {
			defer wg.Done()
			select {
			case <-e.ctrl.Done():
				telemetry.TransitionsActive.Dec()
				if err := e.ctrl.Err(); err != nil {
					telemetry.TransitionsFailedTotal.Inc()
				} else {
					telemetry.TransitionsCompletedTotal.Inc()
				}
			case <-ctx.Done():
			}
		}(e)
	}
	wg.Wait()
	if ctx.Err() == nil {
		logging.L().Info("scene: show complete", "transitions", len(s.entries))
	}
	close(s.done)
}

// renderFrames posts a frame log onto the render loop at the configured
// cadence; reads of sprite state stay on their owning goroutine.
func (s *Show) renderFrames(ctx context.Context) {
	t := time.NewTicker(s.frameEvery)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			_ = s.loop.Post(func() {
				for _, sp := range s.actors {
					logging.L().Info("frame", "sprite", sp.frame())
				}
			})
		}
	}
}
