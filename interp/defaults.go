package interp

import (
	"image/color"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// RegisterDefaults populates the registry with the built-in strategies.
// Call it once at startup, before constructing any transition controller;
// the registry is deliberately not populated by package init so that
// initialization order stays explicit.
func RegisterDefaults() {
	RegisterFor[int](Numeric[int]{})
	RegisterFor[int32](Numeric[int32]{})
	RegisterFor[int64](Numeric[int64]{})
	RegisterFor[float32](Numeric[float32]{})
	RegisterFor[float64](Numeric[float64]{})
	RegisterFor[time.Duration](Numeric[time.Duration]{})
	RegisterFor[string](Text{})
	RegisterFor[colorful.Color](Blend{})
	RegisterFor[color.RGBA](RGBA{})
}
