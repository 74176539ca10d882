package render

import (
	"github.com/taigrr/qube/pkg/math3d"
	"github.com/taigrr/qube/pkg/term"
)

// Compositor owns all frame state: the current cell buffer, the previous
// frame's glyphs and colors, the projector, and the cube being rendered.
// It renders each frame from scratch and writes only the cells that
// changed since the previous frame to the screen, which bounds output
// volume to the visually changed area.
//
// The compositor is single-threaded by contract: every method must be
// called from the render loop.
type Compositor struct {
	scr   *term.Screen
	cur   *Buffer
	prevG []byte
	prevC []term.Color

	proj    Projector
	cube    *Cube
	light   math3d.Vec3
	spacing float64

	frames int
}

// NewCompositor creates a compositor for the given viewport and unit
// light direction, writing to scr.
func NewCompositor(scr *term.Screen, width, height int, light math3d.Vec3) *Compositor {
	c := &Compositor{
		scr:   scr,
		cube:  NewCube(),
		light: light,
	}
	c.Resize(width, height)
	return c
}

// Resize reallocates the buffers for new viewport dimensions and
// recomputes the derived constants (projection scale, sample spacing).
// The previous-frame buffers come back blank, so the next frame repaints
// fully. Resizing to the current dimensions is equivalent to resizing
// once.
func (c *Compositor) Resize(width, height int) {
	c.cur = NewBuffer(width, height)
	c.prevG = make([]byte, width*height)
	c.prevC = make([]term.Color, width*height)
	for i := range c.prevG {
		c.prevG[i] = ' '
		c.prevC[i] = term.Reset
	}
	c.proj.SetViewport(width, height)
	// Sample density scales with terminal resolution so faces stay solid.
	c.spacing = 3.0 / float64(width)
}

// Viewport returns the current viewport dimensions.
func (c *Compositor) Viewport() (width, height int) {
	return c.proj.Viewport()
}

// Scale returns the current projection scale constant.
func (c *Compositor) Scale() float64 {
	return c.proj.Scale()
}

// Spacing returns the current surface sample spacing.
func (c *Compositor) Spacing() float64 {
	return c.spacing
}

// Frames returns the number of frames rendered so far.
func (c *Compositor) Frames() int {
	return c.frames
}

// RenderFrame renders the cube at the given rotation and flushes the
// cell diff to the terminal. Two consecutive frames with identical
// rotation and viewport emit nothing on the second call.
func (c *Compositor) RenderFrame(rot math3d.RotationState) error {
	copy(c.prevG, c.cur.Glyphs)
	copy(c.prevC, c.cur.Colors)
	c.cur.Clear()

	for _, pair := range c.cube.Pairs {
		c.cube.SamplePair(pair, c.spacing, rot, c.light, func(p math3d.Vec3, col term.Color, lum float64) {
			x, y, ooz := c.proj.Project(p, rot)
			c.cur.Plot(x, y, ooz, col, GlyphFor(lum))
		})
	}

	c.emitDiff()
	c.frames++
	return c.scr.Flush()
}

// emitDiff walks the cell buffers and writes every cell whose glyph or
// color changed since the previous frame: cursor move, style reset,
// color, glyph. Unchanged cells are skipped entirely.
func (c *Compositor) emitDiff() {
	for i := range c.cur.Glyphs {
		if c.cur.Glyphs[i] == c.prevG[i] && c.cur.Colors[i] == c.prevC[i] {
			continue
		}
		x := i % c.cur.Width
		y := i / c.cur.Width
		c.scr.MoveTo(y+1, x+1)
		c.scr.ResetStyle()
		c.scr.SetColor(c.cur.Colors[i])
		c.scr.Put(c.cur.Glyphs[i])
	}
}
