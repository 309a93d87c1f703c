package curve

import (
	"fmt"
	"time"

	"tween/transition"
)

// Factory builds a curve instance for one transition.
type Factory func(d time.Duration) transition.Curve

var registry = map[string]Factory{}

// Register associates a curve name with its factory. The built-ins register
// themselves; callers may add or override names before compiling scenes.
func Register(name string, f Factory) {
	registry[name] = f
}

// New returns a curve by name ("linear", "ease", "accel", "decel").
func New(name string, d time.Duration) (transition.Curve, error) {
	if f, ok := registry[name]; ok {
		return f(d), nil
	}
	return nil, fmt.Errorf("curve: unknown curve %q", name)
}

func init() {
	Register("linear", func(d time.Duration) transition.Curve { return Linear{D: d} })
	Register("ease", func(d time.Duration) transition.Curve { return EaseInEaseOut{D: d} })
	Register("accel", func(d time.Duration) transition.Curve { return Acceleration{D: d} })
	Register("decel", func(d time.Duration) transition.Curve { return Deceleration{D: d} })
}
