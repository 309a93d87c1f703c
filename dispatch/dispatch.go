// Package dispatch delivers property writes safely to targets owned by a
// single-goroutine execution context. Targets declare their affiliation via
// the Owned interface; writes to owned targets are enqueued onto the owner's
// inbox and executed there, everything else is written in place.
package dispatch

import "tween/internal/logging"

// Setter applies one value to a target. property.Accessor satisfies it.
type Setter interface {
	Set(target any, v any) error
}

// Owned marks targets affiliated with a dispatch loop. A nil loop means the
// target is not currently owned and may be written directly.
type Owned interface {
	DispatchLoop() *Loop
}

// IsForeign reports whether writes to target must be marshaled.
func IsForeign(target any) bool {
	o, ok := target.(Owned)
	return ok && o.DispatchLoop() != nil
}

// Apply writes v to target through set. When the target is owned by a loop
// the write is posted onto that loop and Apply returns immediately, without
// waiting for the write to land; set errors on the loop are logged there.
// A failed Post (closed loop, full inbox) is returned to the caller.
func Apply(target any, set Setter, v any) error {
	if o, ok := target.(Owned); ok {
		if l := o.DispatchLoop(); l != nil {
			return l.Post(func() {
				if err := set.Set(target, v); err != nil {
					logging.L().Error("dispatch: marshaled write failed", "err", err)
				}
			})
		}
	}
	return set.Set(target, v)
}
