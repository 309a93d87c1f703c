package interp

import (
	"math"
	"reflect"
)

// Number covers the built-in numeric kinds the default registry handles.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Numeric interpolates any numeric type linearly:
// start + (end-start)*progress. Integer kinds round to the nearest value.
type Numeric[T Number] struct{}

func (Numeric[T]) Clone(v any) any { return v.(T) }

func (Numeric[T]) ValueAt(start, end any, progress float64) any {
	a, b := start.(T), end.(T)
	// Endpoints land exactly, independent of float drift in the middle.
	switch progress {
	case 0:
		return a
	case 1:
		return b
	}
	f := float64(a) + (float64(b)-float64(a))*progress
	if isFloat[T]() {
		return T(f)
	}
	return T(math.Round(f))
}

func isFloat[T Number]() bool {
	k := reflect.TypeOf((*T)(nil)).Elem().Kind()
	return k == reflect.Float32 || k == reflect.Float64
}
