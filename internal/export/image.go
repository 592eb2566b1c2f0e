// Package export writes rendered frames to image files.
package export

import (
	"image"

	"github.com/fogleman/fauxgl"
	"golang.org/x/image/draw"

	"starfield/internal/raster"
)

// ToNRGBA converts a color buffer to an image, filling empty cells with bg.
// Buffer row 0 is the bottom of the image.
func ToNRGBA(buf *raster.DepthBuffer[fauxgl.Color], bg fauxgl.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	background := bg.NRGBA()
	for y := 0; y < buf.Height; y++ {
		off := img.PixOffset(0, buf.Height-1-y)
		for x, s := range buf.Row(y) {
			c := background
			if s.Valid {
				c = s.Value.NRGBA()
			}
			i := off + x*4
			img.Pix[i] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
		}
	}
	return img
}

// Upscale enlarges img by an integer factor with nearest-neighbour
// sampling, which keeps pixel edges hard. factor <= 1 returns img.
func Upscale(img *image.NRGBA, factor int) *image.NRGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
