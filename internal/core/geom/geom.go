// Package geom holds the small numeric helpers used by the
// font-measurement subsystem.
package geom

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// ClampF64 constrains x to stay within the range [lo, hi].
func ClampF64(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}

// MaxF64 returns the greater of two doubles.
func MaxF64(a, b float64) float64 {
	return math.Max(a, b)
}

// Quant64 rounds a floating-point coordinate to the nearest 1/64 pixel.
// Used to stabilize measurements against subpixel jitter.
func Quant64(v float64) float64 {
	return math.Round(v*64.0) / 64.0
}

// Fixed-Point Arithmetic

// Unfix converts a fixed.Int26_6 value (1/64 fractional precision) to float64.
func Unfix(x fixed.Int26_6) float64 {
	const shift, mask = 6, 1<<6 - 1
	if x >= 0 {
		return float64(x>>shift) + float64(x&mask)/64
	}
	x = -x
	if x >= 0 {
		return -(float64(x>>shift) + float64(x&mask)/64)
	}
	return 0
}

// Fix converts a float64 to fixed.Int26_6, rounding to the nearest
// representable value.
func Fix(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
