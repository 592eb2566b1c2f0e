package scene

import (
	"github.com/fogleman/fauxgl"

	"starfield/internal/raster"
)

// Perspective spins the quad about the y axis under a perspective divide.
// Both windings of both triangles are drawn so the back face shows too.
type Perspective struct {
	patches []raster.Patch
}

// Distance from the eye to the quad's rotation axis, in w units.
const eyeDistance = 1.5

func NewPerspective() *Perspective {
	return &Perspective{patches: []raster.Patch{
		raster.Tri(0, 1, 2), raster.Tri(3, 2, 1),
		raster.Tri(2, 1, 0), raster.Tri(1, 2, 3),
	}}
}

func (p *Perspective) Draw(buf *raster.DepthBuffer[fauxgl.Color], t float64) {
	buf.Clear()
	raster.Process(buf, t, quad, p.patches, perspectiveVertex, perspectiveFragment)
}

func perspectiveVertex(t float64, v raster.Vec2) (fauxgl.VectorW, raster.Vec2) {
	r := fauxgl.Rotate(fauxgl.V(0, 1, 0), t).MulPosition(fauxgl.V(v.X, v.Y, 0))
	return fauxgl.VectorW{X: r.X, Y: r.Y, Z: r.Z, W: r.Z + eyeDistance}, v
}

// perspectiveFragment fills the quad outside the disc with mid gray.
func perspectiveFragment(t float64, v raster.Vec2) (fauxgl.Color, bool) {
	if c, ok := discShade(t, v); ok {
		return c, true
	}
	return fauxgl.Gray(0.5), true
}
