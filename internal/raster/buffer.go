// Package raster is a software rendering pipeline: clip-space vertices,
// point/line/triangle patches and per-fragment callbacks are rasterized
// into a depth-tested buffer.
package raster

import (
	"image"
	"math"
)

// Buffer is a fixed-size row-major grid. X is the fast-varying axis.
type Buffer[T any] struct {
	Width  int
	Height int
	cells  []T // len = Width*Height
}

// NewBuffer allocates a width x height buffer with every cell set to fill.
// Zero dimensions give an empty buffer; negative dimensions panic.
func NewBuffer[T any](width, height int, fill T) *Buffer[T] {
	if width < 0 || height < 0 {
		panic("raster: negative buffer dimensions")
	}
	b := &Buffer[T]{
		Width:  width,
		Height: height,
		cells:  make([]T, width*height),
	}
	b.Fill(fill)
	return b
}

func (b *Buffer[T]) index(x, y int) int {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		panic("raster: buffer access out of bounds")
	}
	return b.Width*y + x
}

// At returns the cell at (x, y). It panics when (x, y) is out of bounds.
func (b *Buffer[T]) At(x, y int) T {
	return b.cells[b.index(x, y)]
}

// Ptr returns a reference to the cell at (x, y).
func (b *Buffer[T]) Ptr(x, y int) *T {
	return &b.cells[b.index(x, y)]
}

// Set overwrites the cell at (x, y) unconditionally.
func (b *Buffer[T]) Set(x, y int, v T) {
	b.cells[b.index(x, y)] = v
}

// Fill sets every cell to v.
func (b *Buffer[T]) Fill(v T) {
	for i := range b.cells {
		b.cells[i] = v
	}
}

// Row returns row y as a slice aliasing the buffer.
func (b *Buffer[T]) Row(y int) []T {
	if y < 0 || y >= b.Height {
		panic("raster: row out of bounds")
	}
	return b.cells[y*b.Width : (y+1)*b.Width]
}

// Bounds returns the rectangle covered by the buffer.
func (b *Buffer[T]) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// InBounds reports whether (x, y) addresses a cell.
func (b *Buffer[T]) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// RatioToXY maps a coordinate in [0,1]x[0,1] to a cell with floor(r*size)
// on each axis. ok is false when the result falls outside the buffer.
func (b *Buffer[T]) RatioToXY(rx, ry float64) (x, y int, ok bool) {
	x, okx := distribute(b.Width, rx)
	y, oky := distribute(b.Height, ry)
	if !okx || !oky {
		return 0, 0, false
	}
	return x, y, true
}

// CenterToXY is RatioToXY for coordinates in [-1,1]x[-1,1], which is how
// normalized device coordinates become cell addresses.
func (b *Buffer[T]) CenterToXY(cx, cy float64) (x, y int, ok bool) {
	return b.RatioToXY((cx+1)/2, (cy+1)/2)
}

// distribute compares in float space so NaN and huge ratios never reach
// the int conversion.
func distribute(size int, pos float64) (int, bool) {
	f := math.Floor(pos * float64(size))
	if !(f >= 0 && f < float64(size)) {
		return 0, false
	}
	return int(f), true
}

// Sample is a depth buffer cell. Valid is false for an empty cell.
type Sample[T any] struct {
	Value T
	Depth float64
	Valid bool
}

// DepthBuffer is a Buffer of optional (value, depth) samples. A cell keeps
// the sample with the largest depth written since the last Clear; ties keep
// the earlier write.
type DepthBuffer[T any] struct {
	Buffer[Sample[T]]
}

// NewDepthBuffer allocates an empty width x height depth buffer.
func NewDepthBuffer[T any](width, height int) *DepthBuffer[T] {
	return &DepthBuffer[T]{Buffer: *NewBuffer(width, height, Sample[T]{})}
}

// Apply writes v at (x, y) if the cell is empty or depth is strictly
// greater than the stored depth.
func (b *DepthBuffer[T]) Apply(x, y int, v T, depth float64) {
	c := &b.cells[b.index(x, y)]
	if c.Valid && !(depth > c.Depth) {
		return
	}
	*c = Sample[T]{Value: v, Depth: depth, Valid: true}
}

// Lookup returns the sample at (x, y); ok is false for an empty cell.
func (b *DepthBuffer[T]) Lookup(x, y int) (v T, depth float64, ok bool) {
	c := b.cells[b.index(x, y)]
	return c.Value, c.Depth, c.Valid
}

// Clear empties every cell. Call it once per frame before reusing the buffer.
func (b *DepthBuffer[T]) Clear() {
	clear(b.cells)
}
