package scene

import (
	"github.com/fogleman/fauxgl"

	"starfield/internal/raster"
)

// PerTest is a single hand-placed perspective triangle rendered from
// pre-transformed positions, for eyeballing perspective interpolation.
type PerTest struct {
	positions []fauxgl.VectorW
	data      []raster.Vec2
	patches   []raster.Patch
}

func NewPerTest() *PerTest {
	return &PerTest{
		positions: []fauxgl.VectorW{
			{X: -1, Y: 1, Z: 2, W: 2},
			{X: -1, Y: 0, Z: 2, W: 2},
			{X: -1, Y: 0, Z: 3, W: 3},
		},
		data: []raster.Vec2{
			{X: 1, Y: -1},
			{X: -2, Y: 1},
			{X: 1, Y: 1},
		},
		patches: []raster.Patch{raster.Tri(0, 1, 2)},
	}
}

func (p *PerTest) Draw(buf *raster.DepthBuffer[fauxgl.Color], t float64) {
	buf.Clear()
	raster.Render(buf, t, p.positions, p.data, p.patches, perspectiveFragment)
}
