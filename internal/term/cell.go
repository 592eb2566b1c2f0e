package term

import (
	"strings"

	"github.com/fogleman/fauxgl"
	"github.com/muesli/termenv"

	"starfield/internal/raster"
)

// Cell is one terminal character with 256-color foreground and background.
type Cell struct {
	FG, BG uint8
	Ch     rune
}

const defaultFG = 7

// ColorString renders cells as one string, emitting a color escape only
// when the foreground or background changes from the previous cell.
func ColorString(cells []Cell) string {
	var sb strings.Builder
	var fg, bg int = -1, -1
	for _, c := range cells {
		if int(c.FG) != fg {
			sb.WriteString(termenv.CSI + termenv.ANSI256Color(c.FG).Sequence(false) + "m")
			fg = int(c.FG)
		}
		if int(c.BG) != bg {
			sb.WriteString(termenv.CSI + termenv.ANSI256Color(c.BG).Sequence(true) + "m")
			bg = int(c.BG)
		}
		sb.WriteRune(c.Ch)
	}
	return sb.String()
}

// Quantize maps a color buffer to background-colored blank cells. Empty
// cells become black.
func Quantize(src *raster.DepthBuffer[fauxgl.Color]) *raster.Buffer[Cell] {
	dst := raster.NewBuffer(src.Width, src.Height, Cell{FG: defaultFG, Ch: ' '})
	for y := 0; y < src.Height; y++ {
		row := dst.Row(y)
		for x, s := range src.Row(y) {
			if s.Valid {
				row[x].BG = To256(s.Value, x, y)
			}
		}
	}
	return dst
}

// Glyphs maps a character buffer to cells on a black background.
func Glyphs(src *raster.DepthBuffer[rune]) *raster.Buffer[Cell] {
	dst := raster.NewBuffer(src.Width, src.Height, Cell{FG: defaultFG, Ch: ' '})
	for y := 0; y < src.Height; y++ {
		row := dst.Row(y)
		for x, s := range src.Row(y) {
			if s.Valid {
				row[x].Ch = s.Value
			}
		}
	}
	return dst
}
