package transition

import (
	"tween/interp"
	"tween/property"
)

// binding records one animated property. Except for the target's live value,
// which changes every tick, a binding never changes after creation.
type binding struct {
	target   any
	accessor property.Accessor
	start    any // independent copy taken at binding time
	end      any // caller-supplied, assumed immutable
	ip       interp.Interpolator
	foreign  bool // target owned by a dispatch loop at binding time
}
