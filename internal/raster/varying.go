package raster

import (
	"github.com/fogleman/fauxgl"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Term is one weighted value of an affine combination.
type Term[V any] struct {
	Weight float64
	Value  V
}

// Varying is implemented by attribute types the rasterizer can interpolate.
//
// Combine returns the weighted sum of terms. The receiver is not consulted,
// the rasterizer calls it on the zero value of V. Weights are not
// renormalized, and terms must not be retained after the call returns
// since the rasterizer reuses the slice between pixels.
type Varying[V any] interface {
	Combine(terms []Term[V]) V
}

// Linear is satisfied by vector-like types with addition and scalar scaling,
// e.g. fauxgl.Vector and fauxgl.Color.
type Linear[V any] interface {
	Add(V) V
	MulScalar(float64) V
}

// Combine is the default weighted sum for Linear types: a left fold
// starting from the first scaled term. It panics on an empty term list.
func Combine[V Linear[V]](terms []Term[V]) V {
	acc := terms[0].Value.MulScalar(terms[0].Weight)
	for _, t := range terms[1:] {
		acc = acc.Add(t.Value.MulScalar(t.Weight))
	}
	return acc
}

// Scalar is a float64 varying.
type Scalar float64

func (a Scalar) Add(b Scalar) Scalar { return a + b }
func (a Scalar) MulScalar(s float64) Scalar { return a * Scalar(s) }
func (Scalar) Combine(terms []Term[Scalar]) Scalar { return Combine(terms) }

// Vec2 is a 2D varying, e.g. a texture-coordinate-like parameter.
type Vec2 r2.Vec

func (a Vec2) Add(b Vec2) Vec2 { return Vec2(r2.Add(r2.Vec(a), r2.Vec(b))) }
func (a Vec2) MulScalar(s float64) Vec2 { return Vec2(r2.Scale(s, r2.Vec(a))) }
func (Vec2) Combine(terms []Term[Vec2]) Vec2 { return Combine(terms) }

// Vec3 is a 3D varying such as a normal or a position.
type Vec3 r3.Vec

func (a Vec3) Add(b Vec3) Vec3 { return Vec3(r3.Add(r3.Vec(a), r3.Vec(b))) }
func (a Vec3) MulScalar(s float64) Vec3 { return Vec3(r3.Scale(s, r3.Vec(a))) }
func (Vec3) Combine(terms []Term[Vec3]) Vec3 { return Combine(terms) }

// Vec4 is a homogeneous 4-vector varying. Clip-space positions are
// interpolated through it.
type Vec4 fauxgl.VectorW

func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z, W: a.W + b.W}
}

func (a Vec4) MulScalar(s float64) Vec4 {
	return Vec4{X: a.X * s, Y: a.Y * s, Z: a.Z * s, W: a.W * s}
}

func (Vec4) Combine(terms []Term[Vec4]) Vec4 { return Combine(terms) }

// Color is an RGBA varying.
type Color fauxgl.Color

func (a Color) Add(b Color) Color {
	return Color(fauxgl.Color(a).Add(fauxgl.Color(b)))
}

func (a Color) MulScalar(s float64) Color {
	return Color(fauxgl.Color(a).MulScalar(s))
}

func (Color) Combine(terms []Term[Color]) Color { return Combine(terms) }
