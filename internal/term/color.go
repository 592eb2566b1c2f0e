// Package term turns rendered buffers into 256-color terminal output.
package term

import (
	"fmt"
	"math"

	"github.com/fogleman/fauxgl"
	"github.com/muesli/termenv"
)

// Grayscale ramp of the 256-color palette starts here.
const grayBase = 0xE8

// Dither2 is a 2x4 ordered dither: it reports whether a cell at (x, y)
// lights up at level (0-4).
func Dither2(level, x, y int) bool {
	return level > (2*y+3*(x%2))%4
}

// Dither thresholds v in [0,1] through Dither2.
func Dither(v float64, x, y int) bool {
	return Dither2(int(clamp(v*5, 0, 4)), x, y)
}

// Gray256 maps a gray level in [0,1] to the 24-step grayscale ramp,
// dithering the fractional step by position. Values that overflow the
// ramp map to bright white (15).
func Gray256(v float64, x, y int) uint8 {
	val := clamp(v*24.25, 0, 24.24)
	step := int(val)
	if Dither2(int((val-math.Floor(val))*4), x, y) {
		step++
	}
	idx := grayBase + step
	if idx > 255 {
		return 0x0F
	}
	return uint8(idx)
}

// To256 maps a color to a palette index. Gray colors use the dithered
// ramp; anything else goes to the nearest ANSI256 entry.
func To256(c fauxgl.Color, x, y int) uint8 {
	if c.R == c.G && c.G == c.B {
		return Gray256(c.R, x, y)
	}
	n := c.NRGBA()
	conv := termenv.ANSI256.Convert(termenv.RGBColor(fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)))
	if a, ok := conv.(termenv.ANSI256Color); ok {
		return uint8(a)
	}
	if a, ok := conv.(termenv.ANSIColor); ok {
		return uint8(a)
	}
	return 0
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
