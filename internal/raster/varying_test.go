package raster

import (
	"testing"

	"github.com/fogleman/fauxgl"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestCombineScalar(t *testing.T) {
	got := Scalar(0).Combine([]Term[Scalar]{{0.25, 4}, {0.75, 8}})
	assert.InDelta(t, 7.0, float64(got), 1e-12)
}

func TestCombineSingleTermIdentity(t *testing.T) {
	v := Vec3{X: 1, Y: -2, Z: 3}
	assert.Equal(t, v, Vec3{}.Combine([]Term[Vec3]{{1, v}}))
}

func TestCombineNoRenormalization(t *testing.T) {
	got := Vec2{}.Combine([]Term[Vec2]{{2, Vec2{X: 1, Y: 1}}, {3, Vec2{X: 1}}})
	assert.Equal(t, Vec2{X: 5, Y: 2}, got)
}

func TestCombineVec4(t *testing.T) {
	a := Vec4{X: 1, Y: 2, Z: 3, W: 4}
	b := Vec4{X: -1, Y: 0, Z: 1, W: 0}
	got := Vec4{}.Combine([]Term[Vec4]{{0.5, a}, {0.5, b}})
	assert.Equal(t, Vec4{X: 0, Y: 1, Z: 2, W: 2}, got)
}

func TestCombineFauxglTypes(t *testing.T) {
	// fauxgl vectors and colors interpolate without wrappers.
	v := Combine([]Term[fauxgl.Vector]{{0.5, fauxgl.V(2, 0, 0)}, {0.5, fauxgl.V(0, 2, 0)}})
	assert.Equal(t, fauxgl.V(1, 1, 0), v)

	c := Color{}.Combine([]Term[Color]{{0.5, Color(fauxgl.Gray(1))}, {0.5, Color(fauxgl.Gray(0))}})
	assert.InDelta(t, 0.5, c.R, 1e-12)
	assert.InDelta(t, 0.5, c.G, 1e-12)
	assert.InDelta(t, 0.5, c.B, 1e-12)
}

func TestCombineEmptyPanics(t *testing.T) {
	assert.Panics(t, func() { Vec3{}.Combine(nil) })
}

func TestVec3Conversion(t *testing.T) {
	got := Vec3(r3.Vec{X: 1}).MulScalar(2)
	assert.Equal(t, r3.Vec{X: 2}, r3.Vec(got))
}
