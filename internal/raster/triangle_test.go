package raster

import (
	"testing"

	"github.com/fogleman/fauxgl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func ndc(v fauxgl.VectorW) r2.Vec { return r2.Vec{X: v.X / v.W, Y: v.Y / v.W} }

func TestTriangleWeightsAtVertices(t *testing.T) {
	tests := []struct {
		name string
		p    [3]fauxgl.VectorW
	}{
		{"orthographic", [3]fauxgl.VectorW{
			{X: -0.5, Y: -0.5, Z: 0, W: 1},
			{X: 0.5, Y: -0.5, Z: 0.2, W: 1},
			{X: 0, Y: 0.5, Z: 0.4, W: 1},
		}},
		{"perspective", [3]fauxgl.VectorW{
			{X: -1, Y: -1, Z: 0.5, W: 2},
			{X: 1.5, Y: -1.5, Z: 1.5, W: 3},
			{X: 0, Y: 0.5, Z: 0, W: 1},
		}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tri, ok := newTriangle(test.p)
			require.True(t, ok)
			for i, v := range test.p {
				w, ok := tri.weights(ndc(v))
				require.True(t, ok)
				for j := range w {
					want := 0.0
					if i == j {
						want = 1
					}
					assert.InDelta(t, want, w[j], 1e-9, "vertex %d weight %d", i, j)
				}
			}
		})
	}
}

func TestTriangleWeightsSumToOne(t *testing.T) {
	tri, ok := newTriangle([3]fauxgl.VectorW{
		{X: -1, Y: -1, Z: 0.5, W: 2},
		{X: 1.5, Y: -1.5, Z: 1.5, W: 3},
		{X: 0, Y: 0.5, Z: 0, W: 1},
	})
	require.True(t, ok)
	for _, s := range []r2.Vec{{X: 0, Y: 0}, {X: 0.1, Y: -0.2}, {X: -0.3, Y: 0.1}} {
		w, ok := tri.weights(s)
		require.True(t, ok)
		assert.InDelta(t, 1.0, w[0]+w[1]+w[2], 1e-9)
	}
}

func TestTriangleReciprocalW(t *testing.T) {
	p := [3]fauxgl.VectorW{
		{X: -1, Y: -1, Z: 0.5, W: 2},
		{X: 1.5, Y: -1.5, Z: 1.5, W: 3},
		{X: 0, Y: 0.5, Z: 0, W: 1},
	}
	tri, ok := newTriangle(p)
	require.True(t, ok)
	for _, v := range p {
		got := r2.Dot(tri.vec, ndc(v)) + tri.num
		assert.InDelta(t, 1/v.W, got, 1e-9)
	}
}

func TestTriangleDegenerate(t *testing.T) {
	tests := []struct {
		name string
		p    [3]fauxgl.VectorW
	}{
		{"collinear", [3]fauxgl.VectorW{{X: 0, Y: 0, W: 1}, {X: 0.5, Y: 0.5, W: 1}, {X: 1, Y: 1, W: 1}}},
		{"repeated vertex", [3]fauxgl.VectorW{{X: 0, Y: 0, W: 1}, {X: 0, Y: 0, W: 1}, {X: 1, Y: 0, W: 1}}},
		{"zero w", [3]fauxgl.VectorW{{X: 0, Y: 0, W: 0}, {X: 1, Y: 0, W: 1}, {X: 0, Y: 1, W: 1}}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, ok := newTriangle(test.p)
			assert.False(t, ok)
		})
	}
}

func TestClipPolygon(t *testing.T) {
	// x <= 0.5
	h := halfPlane{n: r2.Vec{X: 1}, o: -0.5}
	got := clipPolygon(viewport(), h)
	want := []r2.Vec{{X: -1, Y: -1}, {X: 0.5, Y: -1}, {X: 0.5, Y: 1}, {X: -1, Y: 1}}
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i].X, got[i].X, 1e-12)
		assert.InDelta(t, want[i].Y, got[i].Y, 1e-12)
	}

	// x <= -2 removes everything.
	assert.Empty(t, clipPolygon(viewport(), halfPlane{n: r2.Vec{X: 1}, o: 2}))
	assert.Empty(t, clipPolygon(nil, h))
}

func TestClockwiseTriangleCoversNothing(t *testing.T) {
	tri, ok := newTriangle([3]fauxgl.VectorW{
		{X: -0.5, Y: -0.5, W: 1},
		{X: 0, Y: 0.5, W: 1},
		{X: 0.5, Y: -0.5, W: 1},
	})
	require.True(t, ok)
	assert.Empty(t, tri.clip(viewport()))
}
