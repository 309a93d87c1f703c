// Package transition animates object properties over time. A Controller owns
// a set of property bindings and one timing curve; a per-controller clock
// drives interpolation from each property's recorded start value to its
// destination until the curve reports completion. Writes go through the
// dispatch guard, so targets owned by a foreign execution context are never
// mutated off their own goroutine.
package transition

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"tween/dispatch"
	"tween/internal/logging"
	"tween/interp"
	"tween/property"
)

// State is the controller lifecycle: Idle while bindings are added, Running
// while the clock is active, Completed once retired. Controllers are
// single-use; Completed is terminal.
type State int32

const (
	Idle State = iota
	Running
	Completed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Completed:
		return "completed"
	}
	return fmt.Sprintf("state(%d)", int32(s))
}

// DefaultInterval is the clock period used unless WithInterval overrides it.
const DefaultInterval = 15 * time.Millisecond

// Tick describes one applied clock tick, as seen by an observer.
type Tick struct {
	Elapsed   time.Duration
	Progress  float64
	Completed bool
	Writes    int // property writes dispatched this tick
	Marshaled int // of those, how many went through a dispatch loop
}

type Option func(*Controller)

// WithInterval sets the clock period.
func WithInterval(d time.Duration) Option {
	return func(c *Controller) { c.interval = d }
}

// WithObserver installs a hook called after every applied tick, on the clock
// goroutine. It must be fast; the clock waits for it.
func WithObserver(fn func(Tick)) Option {
	return func(c *Controller) { c.observer = fn }
}

// Controller drives one transition. Configure with Add while Idle, then
// Start. The controller stops its own clock when the curve completes; Stop
// terminates early without applying further ticks.
type Controller struct {
	id       string
	curve    Curve
	interval time.Duration
	observer func(Tick)

	bindings []*binding

	state  atomic.Int32
	epoch  time.Time
	ticker *time.Ticker
	quit   chan struct{}
	done   chan struct{}

	mu  sync.Mutex
	err error
}

// New returns an Idle controller using the given timing curve. The
// interpolator registry must already be populated for every value type the
// controller will bind.
func New(curve Curve, opts ...Option) *Controller {
	c := &Controller{
		id:       uuid.NewString(),
		curve:    curve,
		interval: DefaultInterval,
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Controller) ID() string { return c.id }

func (c *Controller) State() State { return State(c.state.Load()) }

// Err reports the write failure that retired the controller, if any.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Done is closed once the controller has retired, whether by completion,
// Stop, or a write failure.
func (c *Controller) Done() <-chan struct{} { return c.done }

// Add binds target's named property to a destination value: the property is
// resolved, its current value copied as the start value, and the registry
// interpolator for its type recorded. Bindings may only be added while Idle.
func (c *Controller) Add(target any, name string, dest any) error {
	acc, err := property.Resolve(target, name)
	if err != nil {
		return err
	}
	return c.AddAccessor(target, acc, dest)
}

// AddAccessor is Add with a caller-supplied accessor, skipping resolution.
func (c *Controller) AddAccessor(target any, acc property.Accessor, dest any) error {
	if c.State() != Idle {
		return fmt.Errorf("%w: add after start", ErrInvalidState)
	}
	cur, err := acc.Get(target)
	if err != nil {
		return err
	}
	ip, err := interp.For(cur)
	if err != nil {
		return err
	}
	if dest == nil || reflect.TypeOf(dest) != reflect.TypeOf(cur) {
		return fmt.Errorf("%w: property %q is %T, destination is %T",
			ErrTypeMismatch, acc.Name(), cur, dest)
	}
	c.bindings = append(c.bindings, &binding{
		target:   target,
		accessor: acc,
		start:    ip.Clone(cur),
		end:      dest,
		ip:       ip,
		foreign:  dispatch.IsForeign(target),
	})
	return nil
}

// Start moves the controller to Running: the stopwatch and the clock start
// together. Returns ErrInvalidState on any state but Idle.
func (c *Controller) Start() error {
	if !c.state.CompareAndSwap(int32(Idle), int32(Running)) {
		return fmt.Errorf("%w: already %s", ErrInvalidState, c.State())
	}
	c.epoch = time.Now()
	c.ticker = time.NewTicker(c.interval)
	go c.run()
	logging.L().Debug("transition: started",
		"id", c.id, "bindings", len(c.bindings), "interval", c.interval)
	return nil
}

// Stop retires the controller early without applying further ticks.
// Idempotent; safe from any goroutine.
func (c *Controller) Stop() {
	switch State(c.state.Swap(int32(Completed))) {
	case Idle:
		// Clock never started, retire directly.
		close(c.done)
	case Running:
		close(c.quit)
	}
}

// run is the clock loop: the sole tick executor, so at most one tick per
// controller is ever in flight.
func (c *Controller) run() {
	defer func() {
		c.ticker.Stop()
		close(c.done)
	}()
	for {
		select {
		case <-c.quit:
			return
		case <-c.ticker.C:
			if c.State() != Running {
				return
			}
			elapsed := time.Since(c.epoch)
			progress, completed := c.curve.OnTick(elapsed)
			tick, err := c.apply(elapsed, progress, completed)
			if err != nil {
				c.mu.Lock()
				c.err = err
				c.mu.Unlock()
				c.state.CompareAndSwap(int32(Running), int32(Completed))
				logging.L().Error("transition: write failed, stopping",
					"id", c.id, "err", err)
				return
			}
			if c.observer != nil {
				c.observer(tick)
			}
			if completed {
				c.state.CompareAndSwap(int32(Running), int32(Completed))
				logging.L().Debug("transition: completed",
					"id", c.id, "elapsed", elapsed)
				return
			}
		}
	}
}

// apply interpolates every binding, in insertion order, at the given
// progress and dispatches the writes.
func (c *Controller) apply(elapsed time.Duration, progress float64, completed bool) (Tick, error) {
	tick := Tick{Elapsed: elapsed, Progress: progress, Completed: completed}
	for _, b := range c.bindings {
		v := b.ip.ValueAt(b.start, b.end, progress)
		if err := write(b, v); err != nil {
			return tick, fmt.Errorf("property %q: %w", b.accessor.Name(), err)
		}
		tick.Writes++
		if b.foreign {
			tick.Marshaled++
		}
	}
	return tick, nil
}

// write shields the clock loop from panicking accessors (a disposed or nil
// target) by converting the panic into the controller's fatal error.
func write(b *binding, v any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("apply panicked: %v", r)
		}
	}()
	return dispatch.Apply(b.target, b.accessor, v)
}
