package term

import "starfield/internal/raster"

var blocks = [16]rune{' ', '▘', '▝', '▀', '▖', '▌', '▞', '▛', '▗', '▚', '▐', '▜', '▄', '▙', '▟', '█'}

// BlockGlyph returns the quadrant block character for the 2x2 cells with
// lower-left corner (x, y). Rows grow upward, so (x, y+1) is the upper
// left quadrant.
func BlockGlyph(buf *raster.Buffer[bool], x, y int) rune {
	idx := 0
	if buf.At(x, y+1) {
		idx |= 1
	}
	if buf.At(x+1, y+1) {
		idx |= 2
	}
	if buf.At(x, y) {
		idx |= 4
	}
	if buf.At(x+1, y) {
		idx |= 8
	}
	return blocks[idx]
}
