package raster

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineStepsSinglePoint(t *testing.T) {
	got := slices.Collect(LineSteps(3, 5, 3, 5))
	assert.Equal(t, []LineStep{{X: 3, Y: 5, T: 0}}, got)
}

func TestLineStepsAdjacent(t *testing.T) {
	got := slices.Collect(LineSteps(0, 0, 1, 0))
	assert.Equal(t, []LineStep{{X: 0, Y: 0, T: 0}, {X: 1, Y: 0, T: 1}}, got)
}

func TestLineStepsMajorAxis(t *testing.T) {
	tests := []struct {
		name           string
		sx, sy, ex, ey int
		want           [][2]int
	}{
		{"shallow", 0, 0, 4, 2, [][2]int{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}}},
		{"steep", 0, 0, 1, 3, [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 3}}},
		{"backward", 3, 0, 0, 0, [][2]int{{3, 0}, {2, 0}, {1, 0}, {0, 0}}},
		{"diagonal down", 0, 2, 2, 0, [][2]int{{0, 2}, {1, 1}, {2, 0}}},
		{"negative minor", 0, 0, 3, -1, [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, -1}}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var got [][2]int
			var ts []float64
			for s := range LineSteps(test.sx, test.sy, test.ex, test.ey) {
				got = append(got, [2]int{s.X, s.Y})
				ts = append(ts, s.T)
			}
			assert.Equal(t, test.want, got)
			require.NotEmpty(t, ts)
			assert.Equal(t, 0.0, ts[0])
			assert.Equal(t, 1.0, ts[len(ts)-1])
			assert.True(t, slices.IsSorted(ts))
		})
	}
}

func TestLineStepsRestartable(t *testing.T) {
	seq := LineSteps(0, 0, 5, 3)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)
}

func TestLineStepsEarlyStop(t *testing.T) {
	n := 0
	for range LineSteps(0, 0, 10, 0) {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}
