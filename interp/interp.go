// Package interp holds the process-wide registry mapping a value's type to
// the strategy used to interpolate it. The registry must be fully populated
// (RegisterDefaults or explicit Register calls) before any transition
// controller is constructed; registration is not expected after that point.
package interp

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// Interpolator computes intermediate values between two values of one type.
type Interpolator interface {
	// Clone returns an independent copy of v. Start values are cloned at
	// binding time so later mutation of the live property cannot alias them.
	Clone(v any) any

	// ValueAt returns the value between start and end for the given
	// progress. Progress may fall outside [0,1] (overshooting curves);
	// implementations must not assume clamped input.
	ValueAt(start, end any, progress float64) any
}

// ErrUnsupportedType is returned by Lookup/For when no interpolator is
// registered for a value's type.
var ErrUnsupportedType = errors.New("interp: unsupported value type")

var (
	mu       sync.RWMutex
	registry = map[reflect.Type]Interpolator{}
)

// Register associates a value type with an interpolation strategy.
// The last registration for a type wins.
func Register(t reflect.Type, ip Interpolator) {
	mu.Lock()
	registry[t] = ip
	mu.Unlock()
}

// RegisterFor is a typed convenience wrapper around Register.
func RegisterFor[T any](ip Interpolator) {
	Register(reflect.TypeOf((*T)(nil)).Elem(), ip)
}

// Lookup returns the interpolator registered for t.
func Lookup(t reflect.Type) (Interpolator, error) {
	mu.RLock()
	ip, ok := registry[t]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
	return ip, nil
}

// For returns the interpolator registered for v's dynamic type.
func For(v any) (Interpolator, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil value", ErrUnsupportedType)
	}
	return Lookup(reflect.TypeOf(v))
}
