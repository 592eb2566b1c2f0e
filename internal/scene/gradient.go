package scene

import (
	"github.com/fogleman/fauxgl"

	"starfield/internal/raster"
)

// Gradient is a flat screen-filling quad shaded with a pulsing disc.
type Gradient struct {
	patches []raster.Patch
}

func NewGradient() *Gradient {
	return &Gradient{patches: []raster.Patch{raster.Tri(0, 1, 2), raster.Tri(2, 1, 3)}}
}

func (g *Gradient) Draw(buf *raster.DepthBuffer[fauxgl.Color], t float64) {
	buf.Clear()
	raster.Process(buf, t, quad, g.patches, gradientVertex, gradientFragment)
}

func gradientVertex(_ float64, v raster.Vec2) (fauxgl.VectorW, raster.Vec2) {
	return fauxgl.VectorW{X: v.X, Y: v.Y, Z: 0, W: 1}, v
}

func gradientFragment(t float64, v raster.Vec2) (fauxgl.Color, bool) {
	return discShade(t, v)
}
