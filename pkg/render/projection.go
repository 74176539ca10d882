// Package render implements the qube rasterization pipeline: rotation and
// perspective projection, analytic cube surface sampling, reciprocal-depth
// resolution, luminance shading, and diff-based frame compositing.
package render

import (
	"math"

	"github.com/taigrr/qube/pkg/math3d"
)

const (
	// CubeSize is the edge length of the rendered cube.
	CubeSize = 1.0

	// K2 is the viewer distance added to rotated z before the
	// perspective divide. The cube's half-diagonal is
	// √3/2·CubeSize ≈ 0.87, so z+K2 stays above 9 for every rotation
	// and the divide never degenerates.
	K2 = 10.0
)

// Projector maps rotated 3D points onto screen cells with a reciprocal
// depth. The scale constant K1 is derived from the viewport width so the
// projected cube size tracks the terminal width regardless of aspect.
type Projector struct {
	width  int
	height int
	k1     float64
}

// NewProjector creates a projector for the given viewport.
func NewProjector(width, height int) Projector {
	p := Projector{}
	p.SetViewport(width, height)
	return p
}

// SetViewport updates the viewport dimensions and recomputes K1.
func (p *Projector) SetViewport(width, height int) {
	p.width = width
	p.height = height
	p.k1 = (float64(width) * K2 * 3) / (8 * (math.Sqrt(3) * CubeSize))
}

// Viewport returns the current viewport dimensions.
func (p Projector) Viewport() (width, height int) {
	return p.width, p.height
}

// Scale returns the projection scale constant K1.
func (p Projector) Scale() float64 {
	return p.k1
}

// Project rotates point and projects it to a screen cell, returning the
// cell coordinates and the reciprocal depth ooz = 1/(z+K2). Larger ooz
// means closer to the viewer. Coordinates may fall outside the viewport;
// rejecting them is the plotter's job.
func (p Projector) Project(point math3d.Vec3, rot math3d.RotationState) (x, y int, ooz float64) {
	r := rot.Apply(point)
	ooz = 1 / (r.Z + K2)
	x = int(float64(p.width/2) + p.k1*ooz*r.X)
	y = int(float64(p.height/2) - p.k1*ooz*r.Y)
	return x, y, ooz
}
