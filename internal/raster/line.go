package raster

import "iter"

// LineStep is one pixel of a digital line. T runs from 0 at the start
// to 1 at the end.
type LineStep struct {
	X, Y int
	T    float64
}

// LineSteps walks the pixels from (sx, sy) to (ex, ey), one unit along the
// major axis per step. Equal endpoints yield a single step with T = 0.
// The sequence can be ranged over any number of times.
func LineSteps(sx, sy, ex, ey int) iter.Seq[LineStep] {
	return func(yield func(LineStep) bool) {
		if sx == ex && sy == ey {
			yield(LineStep{X: sx, Y: sy})
			return
		}
		dx, dy := ex-sx, ey-sy
		if abs(dx) >= abs(dy) {
			walk(sx, sy, dx, dy, func(major, minor int, t float64) bool {
				return yield(LineStep{X: major, Y: minor, T: t})
			})
		} else {
			walk(sy, sx, dy, dx, func(major, minor int, t float64) bool {
				return yield(LineStep{X: minor, Y: major, T: t})
			})
		}
	}
}

// walk steps along the major axis with integer proportional stepping on
// the minor axis. |dmajor| must be > 0.
func walk(smajor, sminor, dmajor, dminor int, yield func(major, minor int, t float64) bool) {
	n := abs(dmajor)
	step := 1
	if dmajor < 0 {
		step = -1
	}
	for i := 0; i <= n; i++ {
		if !yield(smajor+i*step, sminor+(i*dminor)/n, float64(i)/float64(n)) {
			return
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
