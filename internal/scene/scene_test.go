package scene

import (
	"math"
	"testing"

	"github.com/fogleman/fauxgl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starfield/internal/raster"
)

func covered[T any](b *raster.DepthBuffer[T]) int {
	n := 0
	for y := 0; y < b.Height; y++ {
		for _, c := range b.Row(y) {
			if c.Valid {
				n++
			}
		}
	}
	return n
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		s, err := Lookup(name)
		require.NoError(t, err, name)
		assert.NotNil(t, s)
	}
	_, err := Lookup("teapot")
	assert.Error(t, err)
	assert.Equal(t, []string{"gradient", "perspective", "pertest"}, Names())
}

func TestGradientDisc(t *testing.T) {
	buf := raster.NewDepthBuffer[fauxgl.Color](20, 20)
	NewGradient().Draw(buf, 0)

	_, _, ok := buf.Lookup(0, 0)
	assert.False(t, ok, "corner is outside the disc")

	c, _, ok := buf.Lookup(10, 10)
	require.True(t, ok)
	assert.Greater(t, c.R, 0.85)
	assert.Equal(t, c.R, c.G)

	// Pulse fades to black at t = pi.
	NewGradient().Draw(buf, math.Pi)
	c, _, ok = buf.Lookup(10, 10)
	require.True(t, ok)
	assert.InDelta(t, 0, c.R, 1e-9)
}

func TestPerspectiveBothSides(t *testing.T) {
	p := NewPerspective()
	buf := raster.NewDepthBuffer[fauxgl.Color](40, 20)
	for _, tm := range []float64{0, 1, math.Pi} {
		p.Draw(buf, tm)
		assert.NotZero(t, covered(buf), "t=%v", tm)
		_, _, ok := buf.Lookup(20, 10)
		assert.True(t, ok, "center covered at t=%v", tm)
	}

	// Face-on, the quad spans NDC +-1/1.5.
	p.Draw(buf, 0)
	_, _, ok := buf.Lookup(0, 10)
	assert.False(t, ok)
}

func TestPerTest(t *testing.T) {
	buf := raster.NewDepthBuffer[fauxgl.Color](100, 50)
	NewPerTest().Draw(buf, 0)
	assert.NotZero(t, covered(buf))
}

func TestStarsDeterministic(t *testing.T) {
	a := raster.NewDepthBuffer[rune](100, 50)
	b := raster.NewDepthBuffer[rune](100, 50)
	NewStars(7).Draw(a, 0.3)
	NewStars(7).Draw(b, 0.3)
	assert.Equal(t, a, b)
	assert.NotZero(t, covered(a))

	var sawColon bool
	for y := 0; y < a.Height; y++ {
		for _, c := range a.Row(y) {
			if c.Valid && c.Value == ':' {
				sawColon = true
			}
		}
	}
	assert.True(t, sawColon, "triangle drawn")
}

func TestStarDigit(t *testing.T) {
	r, ok := starDigit(0, raster.Vec4{Z: 0.45})
	assert.True(t, ok)
	assert.Equal(t, '4', r)
	r, _ = starDigit(0, raster.Vec4{Z: -0.1})
	assert.Equal(t, '?', r)
}
