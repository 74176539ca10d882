package render

import (
	"github.com/taigrr/qube/pkg/term"
)

// Buffer holds one frame's cells as three parallel row-major slices:
// displayed glyph, color, and reciprocal depth, indexed y*width+x. The
// slices always share the same length and are resized together.
type Buffer struct {
	Width  int
	Height int
	Glyphs []byte
	Colors []term.Color
	Depth  []float64
}

// NewBuffer allocates a cleared buffer.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize reallocates all three slices for the new dimensions and clears
// them. A resize always yields a blank canvas.
func (b *Buffer) Resize(width, height int) {
	b.Width = width
	b.Height = height
	n := width * height
	b.Glyphs = make([]byte, n)
	b.Colors = make([]term.Color, n)
	b.Depth = make([]float64, n)
	b.Clear()
}

// Clear resets every cell to blank: space glyph, reset color, and depth 0
// ("infinitely far" under the reciprocal-depth convention).
func (b *Buffer) Clear() {
	for i := range b.Glyphs {
		b.Glyphs[i] = ' '
		b.Colors[i] = term.Reset
		b.Depth[i] = 0
	}
}

// Plot writes one sample into the cell at (x, y). Samples whose linear
// index falls outside the buffer are silently discarded; off-screen
// points are expected for a rotating object. A sample lands only when
// its reciprocal depth exceeds the stored one — ties lose, so the first
// writer at a given depth keeps the cell. Glyph, color, and depth are
// stored together.
func (b *Buffer) Plot(x, y int, ooz float64, color term.Color, glyph byte) {
	i := y*b.Width + x
	if i < 0 || i >= len(b.Glyphs) {
		return
	}
	if ooz > b.Depth[i] {
		b.Depth[i] = ooz
		b.Colors[i] = color
		b.Glyphs[i] = glyph
	}
}
