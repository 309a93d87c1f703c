// Package curve provides duration-based timing curves for the transition
// engine, plus a name-keyed factory so scenes can select curves from config.
// Every curve reports completion once its duration has elapsed, with progress
// forced to exactly 1.0 on that final tick.
package curve

import (
	"time"
)

// Linear advances progress uniformly over the duration.
type Linear struct{ D time.Duration }

func (c Linear) OnTick(elapsed time.Duration) (float64, bool) {
	t, done := fraction(elapsed, c.D)
	return t, done
}

// EaseInEaseOut accelerates through the first half and decelerates through
// the second.
type EaseInEaseOut struct{ D time.Duration }

func (c EaseInEaseOut) OnTick(elapsed time.Duration) (float64, bool) {
	t, done := fraction(elapsed, c.D)
	if done {
		return 1, true
	}
	if t <= 0.5 {
		return 2 * t * t, false
	}
	return 1 - 2*(1-t)*(1-t), false
}

// Acceleration starts slowly and speeds up: progress = t².
type Acceleration struct{ D time.Duration }

func (c Acceleration) OnTick(elapsed time.Duration) (float64, bool) {
	t, done := fraction(elapsed, c.D)
	return t * t, done
}

// Deceleration starts quickly and slows down: progress = t·(2−t).
type Deceleration struct{ D time.Duration }

func (c Deceleration) OnTick(elapsed time.Duration) (float64, bool) {
	t, done := fraction(elapsed, c.D)
	return t * (2 - t), done
}

// fraction maps elapsed onto [0,1] of the duration. At or past the duration
// (or for a non-positive duration) it reports exactly 1 and completion.
func fraction(elapsed, d time.Duration) (float64, bool) {
	if d <= 0 || elapsed >= d {
		return 1, true
	}
	if elapsed < 0 {
		return 0, false
	}
	return float64(elapsed) / float64(d), false
}
