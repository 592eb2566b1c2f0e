package raster

import (
	"fmt"

	"github.com/fogleman/fauxgl"
)

// VertexFunc transforms one input attribute into a clip-space position and
// the varying handed to rasterization.
type VertexFunc[U, A, V any] func(uniform U, attr A) (fauxgl.VectorW, V)

// FragmentFunc evaluates an interpolated varying. Returning false discards
// the pixel.
type FragmentFunc[U, V, T any] func(uniform U, v V) (T, bool)

// Process runs vertex over every attribute and rasterizes patches with the
// results.
func Process[U, A any, V Varying[V], T any](
	buf *DepthBuffer[T],
	uniform U,
	attrs []A,
	patches []Patch,
	vertex VertexFunc[U, A, V],
	fragment FragmentFunc[U, V, T],
) {
	positions := make([]fauxgl.VectorW, len(attrs))
	varyings := make([]V, len(attrs))
	for i, a := range attrs {
		positions[i], varyings[i] = vertex(uniform, a)
	}
	Render(buf, uniform, positions, varyings, patches, fragment)
}

// Render rasterizes already transformed geometry into buf.
//
// Points and lines are placed with CenterToXY on the raw x, y of their
// positions and take depth from the raw z; only triangles divide by w.
// Render panics when positions and varyings differ in length or a patch
// references a missing vertex.
func Render[U any, V Varying[V], T any](
	buf *DepthBuffer[T],
	uniform U,
	positions []fauxgl.VectorW,
	varyings []V,
	patches []Patch,
	fragment FragmentFunc[U, V, T],
) {
	if len(positions) != len(varyings) {
		panic(fmt.Sprintf("raster: %d positions but %d varyings", len(positions), len(varyings)))
	}
	for _, p := range patches {
		switch p.Kind {
		case PatchPoint:
			renderPoint(buf, uniform, positions[p.Index[0]], varyings[p.Index[0]], fragment)
		case PatchLine:
			a, b := p.Index[0], p.Index[1]
			renderLine(buf, uniform,
				[2]fauxgl.VectorW{positions[a], positions[b]},
				[2]V{varyings[a], varyings[b]},
				fragment)
		case PatchTri:
			a, b, c := p.Index[0], p.Index[1], p.Index[2]
			RenderTriangle(buf, uniform,
				[3]fauxgl.VectorW{positions[a], positions[b], positions[c]},
				[3]V{varyings[a], varyings[b], varyings[c]},
				fragment)
		default:
			panic(fmt.Sprintf("raster: unknown patch kind %v", p.Kind))
		}
	}
}

func renderPoint[U any, V any, T any](buf *DepthBuffer[T], uniform U, pos fauxgl.VectorW, v V, fragment FragmentFunc[U, V, T]) {
	x, y, ok := buf.CenterToXY(pos.X, pos.Y)
	if !ok {
		return
	}
	if val, ok := fragment(uniform, v); ok {
		buf.Apply(x, y, val, pos.Z)
	}
}

func renderLine[U any, V Varying[V], T any](buf *DepthBuffer[T], uniform U, pos [2]fauxgl.VectorW, v [2]V, fragment FragmentFunc[U, V, T]) {
	ax, ay, ok := buf.CenterToXY(pos[0].X, pos[0].Y)
	if !ok {
		return
	}
	bx, by, ok := buf.CenterToXY(pos[1].X, pos[1].Y)
	if !ok {
		return
	}

	var zero V
	terms := make([]Term[V], 2)
	loc := make([]Term[Vec4], 2)
	for step := range LineSteps(ax, ay, bx, by) {
		terms[0] = Term[V]{Weight: step.T, Value: v[1]}
		terms[1] = Term[V]{Weight: 1 - step.T, Value: v[0]}
		loc[0] = Term[Vec4]{Weight: step.T, Value: Vec4(pos[1])}
		loc[1] = Term[Vec4]{Weight: 1 - step.T, Value: Vec4(pos[0])}
		if val, ok := fragment(uniform, zero.Combine(terms)); ok {
			buf.Apply(step.X, step.Y, val, Combine(loc).Z)
		}
	}
}
