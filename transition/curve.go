package transition

import "time"

// Curve converts elapsed time into a progress fraction and a completion flag.
// It must be deterministic in elapsed. When completed is true the controller
// applies this tick's values and then stops; that final tick's progress must
// be exactly 1.0 so destination values land exactly, not approximately.
type Curve interface {
	OnTick(elapsed time.Duration) (progress float64, completed bool)
}

// CurveFunc adapts a plain function to the Curve contract.
type CurveFunc func(elapsed time.Duration) (float64, bool)

func (f CurveFunc) OnTick(elapsed time.Duration) (float64, bool) { return f(elapsed) }
