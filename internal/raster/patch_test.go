package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatchReverse(t *testing.T) {
	tests := []struct {
		p, want Patch
	}{
		{Point(4), Point(4)},
		{Line(1, 2), Line(2, 1)},
		{Tri(0, 1, 2), Tri(2, 1, 0)},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.p.Reverse(), test.p.String())
		assert.Equal(t, test.p, test.p.Reverse().Reverse(), test.p.String())
	}
}

func TestPatchString(t *testing.T) {
	assert.Equal(t, "Point(3)", Point(3).String())
	assert.Equal(t, "Line(0, 9)", Line(0, 9).String())
	assert.Equal(t, "Tri(1, 2, 3)", Tri(1, 2, 3).String())
	assert.Equal(t, "PatchKind(0)", Patch{}.String())
}
