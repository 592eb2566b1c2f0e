package scene

import (
	"math"

	"github.com/fogleman/fauxgl"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"starfield/internal/raster"
)

const (
	starCount = 100
	lineCount = 10
)

// Stars is a random point cloud with a few connecting lines and a
// double-sided triangle, all spinning about the y axis. It draws
// characters rather than colors.
type Stars struct {
	points  []raster.Vec4
	lines   []raster.Patch
	dots    []raster.Patch
	tri     []raster.Vec4
	triFace []raster.Patch
}

// NewStars scatters the star field from seed.
func NewStars(seed uint64) *Stars {
	src := rand.NewSource(seed)
	coord := distuv.Uniform{Min: -0.5, Max: 0.5, Src: src}
	rng := rand.New(src)

	s := &Stars{}
	for i := 0; i < starCount; i++ {
		s.points = append(s.points, raster.Vec4{X: coord.Rand(), Y: coord.Rand(), Z: coord.Rand()})
		s.dots = append(s.dots, raster.Point(i))
	}
	for i := 0; i < lineCount; i++ {
		s.lines = append(s.lines, raster.Line(rng.Intn(starCount), rng.Intn(starCount)))
	}

	s.tri = []raster.Vec4{{X: 0, Y: 0, Z: 0}, {X: 1, Y: -0.5, Z: 0}, {X: 0.5, Y: 1, Z: 0}}
	face := raster.Tri(0, 1, 2)
	s.triFace = []raster.Patch{face, face.Reverse()}
	return s
}

// Draw clears buf and renders the field rotated by t radians.
func (s *Stars) Draw(buf *raster.DepthBuffer[rune], t float64) {
	buf.Clear()
	raster.Process(buf, t, s.points, s.dots, starVertex, starDigit)
	raster.Process(buf, t, s.points, s.lines, starVertex, glyph('X'))
	raster.Process(buf, t, s.tri, s.triFace, starVertex, glyph(':'))
}

// starVertex spins about y and passes the clip position on as the varying
// so fragments can read depth.
func starVertex(t float64, v raster.Vec4) (fauxgl.VectorW, raster.Vec4) {
	sin, cos := math.Sincos(t)
	p := fauxgl.VectorW{X: v.X*cos + v.Z*sin, Y: v.Y, Z: v.Z*cos - v.X*sin, W: 1}
	return p, raster.Vec4(p)
}

// starDigit labels a star with its depth decile, '?' behind the origin.
func starDigit(_ float64, p raster.Vec4) (rune, bool) {
	if p.Z < 0 {
		return '?', true
	}
	return '0' + rune(math.Floor(p.Z*10)), true
}

func glyph(r rune) raster.FragmentFunc[float64, raster.Vec4, rune] {
	return func(float64, raster.Vec4) (rune, bool) { return r, true }
}
