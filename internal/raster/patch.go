package raster

import "fmt"

// PatchKind is the topology of a Patch.
type PatchKind uint8

const (
	PatchPoint PatchKind = iota + 1
	PatchLine
	PatchTri
)

func (k PatchKind) String() string {
	switch k {
	case PatchPoint:
		return "point"
	case PatchLine:
		return "line"
	case PatchTri:
		return "tri"
	}
	return fmt.Sprintf("PatchKind(%d)", uint8(k))
}

// Patch is a primitive referencing vertex indices. Only the first
// Kind-many entries of Index are meaningful; unused entries are zero so
// patches compare with ==.
type Patch struct {
	Kind  PatchKind
	Index [3]int
}

// Point returns a point patch.
func Point(i int) Patch { return Patch{Kind: PatchPoint, Index: [3]int{i}} }

// Line returns a line patch from a to b.
func Line(a, b int) Patch { return Patch{Kind: PatchLine, Index: [3]int{a, b}} }

// Tri returns a triangle patch. Triangles are only drawn when their
// vertices are counter-clockwise in normalized device coordinates.
func Tri(a, b, c int) Patch { return Patch{Kind: PatchTri, Index: [3]int{a, b, c}} }

// Reverse returns the patch with its endpoint order reversed. For
// triangles this flips the winding.
func (p Patch) Reverse() Patch {
	switch p.Kind {
	case PatchLine:
		return Line(p.Index[1], p.Index[0])
	case PatchTri:
		return Tri(p.Index[2], p.Index[1], p.Index[0])
	}
	return p
}

func (p Patch) String() string {
	switch p.Kind {
	case PatchPoint:
		return fmt.Sprintf("Point(%d)", p.Index[0])
	case PatchLine:
		return fmt.Sprintf("Line(%d, %d)", p.Index[0], p.Index[1])
	case PatchTri:
		return fmt.Sprintf("Tri(%d, %d, %d)", p.Index[0], p.Index[1], p.Index[2])
	}
	return p.Kind.String()
}
