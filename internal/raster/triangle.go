package raster

import (
	"math"

	"github.com/fogleman/fauxgl"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// RenderTriangle rasterizes one clip-space triangle with perspective-correct
// interpolation of its varyings.
//
// The triangle is clipped against the [-1,1] viewport in normalized device
// coordinates, the clipped polygon is walked column by column and every
// candidate pixel center is re-tested against the three edges. Only
// counter-clockwise triangles (in NDC, y up) cover any pixels; degenerate
// triangles are skipped.
func RenderTriangle[U any, V Varying[V], T any](
	buf *DepthBuffer[T],
	uniform U,
	pos [3]fauxgl.VectorW,
	varying [3]V,
	fragment FragmentFunc[U, V, T],
) {
	if buf.Width == 0 || buf.Height == 0 {
		return
	}
	tri, ok := newTriangle(pos)
	if !ok {
		return
	}
	poly := tri.clip(viewport())
	if len(poly) < 3 {
		return
	}

	var zero V
	terms := make([]Term[V], 3)
	scanPolygon(poly, buf.Width, buf.Height, func(x, y int, s r2.Vec) {
		if !tri.inside(s) {
			return
		}
		w, ok := tri.weights(s)
		if !ok {
			return
		}
		for i := range terms {
			terms[i] = Term[V]{Weight: w[i], Value: varying[i]}
		}
		v, ok := fragment(uniform, zero.Combine(terms))
		if !ok {
			return
		}
		buf.Apply(x, y, v, w[0]*pos[0].Z+w[1]*pos[1].Z+w[2]*pos[2].Z)
	})
}

// halfPlane is the screen-space edge test dot(s, n) + o <= 0.
type halfPlane struct {
	n r2.Vec
	o float64
}

func (h halfPlane) eval(s r2.Vec) float64 { return r2.Dot(s, h.n) + h.o }

// triangle is the per-triangle setup shared by every pixel.
type triangle struct {
	edges [3]halfPlane

	// 1/w(s) = dot(vec, s) + num over screen space.
	vec r2.Vec
	num float64

	cross [3]r3.Vec  // cross(b, c) of the (x, y, w) triple starting at i
	det   [3]float64 // dot(a, cross(b, c)) of the same triple
}

func newTriangle(p [3]fauxgl.VectorW) (triangle, bool) {
	var t triangle
	var denom, dx, dy float64
	for i := 0; i < 3; i++ {
		a, b, c := p[i], p[(i+1)%3], p[(i+2)%3]

		// Edge b->c in NDC, scaled by b.W*c.W so no divide is needed.
		d := r2.Sub(r2.Scale(b.W, r2.Vec{X: c.X, Y: c.Y}), r2.Scale(c.W, r2.Vec{X: b.X, Y: b.Y}))
		if r2.Norm(d) == 0 {
			return t, false
		}
		u := r2.Unit(d)
		n := r2.Vec{X: u.Y, Y: -u.X}
		t.edges[i] = halfPlane{n: n, o: -r2.Dot(n, r2.Scale(1/b.W, r2.Vec{X: b.X, Y: b.Y}))}

		denom += a.W * (c.X*b.Y - b.X*c.Y)
		dx += a.W * (c.X - b.X)
		dy += a.W * (c.Y - b.Y)
	}
	if denom == 0 {
		return t, false
	}
	t.vec = r2.Vec{X: -dy / denom, Y: dx / denom}

	// Solve num at the vertex with the largest |z|; later vertices win ties.
	ref := p[0]
	for _, v := range p[1:] {
		if math.Abs(v.Z) >= math.Abs(ref.Z) {
			ref = v
		}
	}
	t.num = (1 - r2.Dot(t.vec, r2.Vec{X: ref.X, Y: ref.Y})) / ref.W

	for i := 0; i < 3; i++ {
		a, b, c := homogeneous(p[i]), homogeneous(p[(i+1)%3]), homogeneous(p[(i+2)%3])
		t.cross[i] = r3.Cross(b, c)
		t.det[i] = r3.Dot(a, t.cross[i])
		if t.det[i] == 0 {
			return t, false
		}
	}

	if !finite(t.vec.X, t.vec.Y, t.num) {
		return t, false
	}
	for _, e := range t.edges {
		if !finite(e.n.X, e.n.Y, e.o) {
			return t, false
		}
	}
	return t, true
}

func homogeneous(v fauxgl.VectorW) r3.Vec { return r3.Vec{X: v.X, Y: v.Y, Z: v.W} }

// inside reports whether s is on or inside all three edges.
func (t *triangle) inside(s r2.Vec) bool {
	for _, e := range t.edges {
		if e.eval(s) > 0 {
			return false
		}
	}
	return true
}

// weights returns the perspective-correct barycentric weights at screen
// point s. They sum to 1.
func (t *triangle) weights(s r2.Vec) ([3]float64, bool) {
	var w [3]float64
	val := 1 / (r2.Dot(t.vec, s) + t.num)
	if !finite(val) {
		return w, false
	}
	q := r3.Vec{X: s.X * val, Y: s.Y * val, Z: val}
	for i := range w {
		w[i] = r3.Dot(q, t.cross[i]) / t.det[i]
	}
	return w, true
}

// clip intersects poly with the three edge half-planes.
func (t *triangle) clip(poly []r2.Vec) []r2.Vec {
	for _, e := range t.edges {
		poly = clipPolygon(poly, e)
		if len(poly) < 3 {
			return nil
		}
	}
	return poly
}

// viewport is the NDC square, counter-clockwise.
func viewport() []r2.Vec {
	return []r2.Vec{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}}
}

// clipPolygon is one Sutherland-Hodgman pass: inside vertices are kept and
// a crossing vertex is inserted wherever consecutive vertices disagree.
func clipPolygon(poly []r2.Vec, h halfPlane) []r2.Vec {
	if len(poly) == 0 {
		return nil
	}
	out := make([]r2.Vec, 0, len(poly)+1)
	prev := poly[len(poly)-1]
	fp := h.eval(prev)
	for _, cur := range poly {
		fc := h.eval(cur)
		if (fc <= 0) != (fp <= 0) {
			out = append(out, r2.Add(prev, r2.Scale(fp/(fp-fc), r2.Sub(cur, prev))))
		}
		if fc <= 0 {
			out = append(out, cur)
		}
		prev, fp = cur, fc
	}
	return out
}

// scanPolygon calls visit for every candidate pixel of the convex polygon
// poly. Starting at the leftmost vertex, one chain walks forward and one
// backward around the polygon as the column moves right, and each column's
// row span is taken from the current edge of both chains. Candidates carry
// one pixel of slack on every side; visit does the exact coverage test.
func scanPolygon(poly []r2.Vec, width, height int, visit func(x, y int, s r2.Vec)) {
	n := len(poly)
	start := 0
	minX, maxX := poly[0].X, poly[0].X
	for i, v := range poly {
		if v.X < minX {
			minX, start = v.X, i
		}
		maxX = math.Max(maxX, v.X)
	}
	next := func(i int) int { return (i + 1) % n }
	prev := func(i int) int { return (i + n - 1) % n }

	fw, fh := float64(width), float64(height)
	x0 := clampInt(int(math.Ceil((minX+1)*fw/2-0.5))-1, 0, width-1)
	x1 := clampInt(int(math.Floor((maxX+1)*fw/2-0.5))+1, 0, width-1)

	fwd, bwd := start, start
	for xi := x0; xi <= x1; xi++ {
		sx := pixelCenter(xi, width)
		cx := math.Min(math.Max(sx, minX), maxX)
		for k := 0; k < n && poly[next(fwd)].X < cx; k++ {
			fwd = next(fwd)
		}
		for k := 0; k < n && poly[prev(bwd)].X < cx; k++ {
			bwd = prev(bwd)
		}
		alo, ahi := edgeSpan(poly[fwd], poly[next(fwd)], cx)
		blo, bhi := edgeSpan(poly[bwd], poly[prev(bwd)], cx)
		ylo, yhi := math.Min(alo, blo), math.Max(ahi, bhi)

		y0 := clampInt(int(math.Ceil((ylo+1)*fh/2-0.5))-1, 0, height-1)
		y1 := clampInt(int(math.Floor((yhi+1)*fh/2-0.5))+1, 0, height-1)
		for yi := y0; yi <= y1; yi++ {
			visit(xi, yi, r2.Vec{X: sx, Y: pixelCenter(yi, height)})
		}
	}
}

// edgeSpan returns the y range of edge a->b at column x, extrapolating the
// edge line. Vertical edges span both endpoints.
func edgeSpan(a, b r2.Vec, x float64) (lo, hi float64) {
	if a.X == b.X {
		return math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	}
	y := a.Y + (x-a.X)*(b.Y-a.Y)/(b.X-a.X)
	return y, y
}

// pixelCenter maps cell index i to its center in [-1,1].
func pixelCenter(i, dim int) float64 {
	return 2*(float64(i)+0.5)/float64(dim) - 1
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
