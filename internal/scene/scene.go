// Package scene holds the demo scenes driven by the cmd programs.
package scene

import (
	"fmt"
	"math"
	"sort"

	"github.com/fogleman/fauxgl"

	"starfield/internal/raster"
)

// Scene renders one frame of an animation into a color buffer.
type Scene interface {
	// Draw clears buf and renders the scene at time t.
	Draw(buf *raster.DepthBuffer[fauxgl.Color], t float64)
}

var registry = map[string]func() Scene{
	"gradient":    func() Scene { return NewGradient() },
	"perspective": func() Scene { return NewPerspective() },
	"pertest":     func() Scene { return NewPerTest() },
}

// Lookup returns a fresh instance of the named color scene.
func Lookup(name string) (Scene, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("scene: unknown scene %q (have %v)", name, Names())
	}
	return f(), nil
}

// Names lists the registered color scenes in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// quad is the full-viewport square split into two counter-clockwise
// triangles.
var quad = []raster.Vec2{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: 1, Y: 1}}

// discShade is the pulsing radial falloff shared by the quad scenes.
// ok is false outside the unit disc.
func discShade(t float64, v raster.Vec2) (fauxgl.Color, bool) {
	r := math.Hypot(v.X, v.Y)
	if r >= 1 {
		return fauxgl.Color{}, false
	}
	return fauxgl.Gray((0.5 + math.Cos(t)/2) * (1 - r)), true
}
