package interp

import "math"

// Text interpolates strings per character: both values are space-padded to a
// common length, each rune is interpolated linearly by its code point, and the
// result is trimmed to the interpolated length. Strings are immutable, so
// Clone returns the value unchanged.
type Text struct{}

func (Text) Clone(v any) any { return v.(string) }

func (Text) ValueAt(start, end any, progress float64) any {
	a, b := []rune(start.(string)), []rune(end.(string))
	switch progress {
	case 0:
		return start
	case 1:
		return end
	}

	width := len(a)
	if len(b) > width {
		width = len(b)
	}
	length := int(math.Round(float64(len(a)) + (float64(len(b))-float64(len(a)))*progress))
	if length < 0 {
		length = 0
	}
	if length > width {
		length = width
	}

	out := make([]rune, length)
	for i := range out {
		out[i] = runeAt(padded(a, i), padded(b, i), progress)
	}
	return string(out)
}

func padded(rs []rune, i int) rune {
	if i < len(rs) {
		return rs[i]
	}
	return ' '
}

func runeAt(a, b rune, progress float64) rune {
	r := rune(math.Round(float64(a) + (float64(b)-float64(a))*progress))
	if r < ' ' {
		r = ' '
	}
	return r
}
