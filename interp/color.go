package interp

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Blend interpolates colorful.Color values channel-wise in RGB space and
// re-clamps to the valid [0,1] range afterwards, so overshooting progress
// never produces an out-of-gamut color.
type Blend struct{}

func (Blend) Clone(v any) any { return v.(colorful.Color) }

func (Blend) ValueAt(start, end any, progress float64) any {
	a, b := start.(colorful.Color), end.(colorful.Color)
	switch progress {
	case 0:
		return a
	case 1:
		return b
	}
	return a.BlendRgb(b, progress).Clamped()
}

// RGBA interpolates image/color.RGBA channel-wise, clamping each channel
// to [0,255].
type RGBA struct{}

func (RGBA) Clone(v any) any { return v.(color.RGBA) }

func (RGBA) ValueAt(start, end any, progress float64) any {
	a, b := start.(color.RGBA), end.(color.RGBA)
	switch progress {
	case 0:
		return a
	case 1:
		return b
	}
	return color.RGBA{
		R: channelAt(a.R, b.R, progress),
		G: channelAt(a.G, b.G, progress),
		B: channelAt(a.B, b.B, progress),
		A: channelAt(a.A, b.A, progress),
	}
}

func channelAt(a, b uint8, progress float64) uint8 {
	f := math.Round(float64(a) + (float64(b)-float64(a))*progress)
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return uint8(f)
}
