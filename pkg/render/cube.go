package render

import (
	"github.com/taigrr/qube/pkg/math3d"
	"github.com/taigrr/qube/pkg/term"
)

// GridTolerance is the half-width of a grid-line band around the
// inner-third boundaries of a face.
const GridTolerance = 0.04

// Axis identifies which coordinate a face pair holds fixed.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// vector returns the unit vector along the axis, which is also the
// outward normal of the pair's front face.
func (a Axis) vector() math3d.Vec3 {
	switch a {
	case AxisX:
		return math3d.V3(1, 0, 0)
	case AxisY:
		return math3d.V3(0, 1, 0)
	default:
		return math3d.V3(0, 0, 1)
	}
}

// point assembles a surface point: fixed on the axis, u and v on the two
// free coordinates.
func (a Axis) point(fixed, u, v float64) math3d.Vec3 {
	switch a {
	case AxisX:
		return math3d.V3(fixed, u, v)
	case AxisY:
		return math3d.V3(u, fixed, v)
	default:
		return math3d.V3(u, v, fixed)
	}
}

// FacePair describes one pair of opposite cube faces: the axis they sit
// on and the colors of the front (+axis) and back (-axis) face.
type FacePair struct {
	Axis  Axis
	Front term.Color
	Back  term.Color
}

// Cube samples the surface of an axis-aligned cube analytically; there is
// no mesh. Each of the three face pairs shares one sampling routine
// parameterized by its axis.
type Cube struct {
	Size      float64
	GridTol   float64
	GridColor term.Color
	Pairs     [3]FacePair
}

// NewCube returns a cube with the screensaver palette: each axis pair
// shares a hue, split into a lit front and a back variant, with black
// grid lines carving every face into a 3×3 grid.
func NewCube() *Cube {
	return &Cube{
		Size:      CubeSize,
		GridTol:   GridTolerance,
		GridColor: term.Black,
		Pairs: [3]FacePair{
			{Axis: AxisZ, Front: term.Yellow, Back: term.White},
			{Axis: AxisY, Front: term.Green, Back: term.Blue},
			{Axis: AxisX, Front: term.BoldRed, Back: term.Red},
		},
	}
}

// onGridLine reports whether a face coordinate falls inside a tolerance
// band around either inner-third boundary (±(Size/2 − Size/3)).
func (c *Cube) onGridLine(t float64) bool {
	b := c.Size/2 - c.Size/3
	return (t > -b-c.GridTol && t < -b+c.GridTol) ||
		(t > b-c.GridTol && t < b+c.GridTol)
}

// SamplePair walks a uniform grid over one face pair and emits the front
// and back surface point of every grid cell with its color and face
// luminance. Luminance is computed once per face, not per sample. The
// output is a point cloud: solidity relies on spacing staying at or below
// one sample per screen cell, which is why spacing derives from the
// viewport width.
func (c *Cube) SamplePair(pair FacePair, spacing float64, rot math3d.RotationState, light math3d.Vec3, emit func(point math3d.Vec3, color term.Color, luminance float64)) {
	n := pair.Axis.vector()
	lumFront := FaceLuminance(n, rot, light)
	lumBack := FaceLuminance(n.Negate(), rot, light)

	half := c.Size / 2
	for u := -half; u <= half; u += spacing {
		for v := -half; v <= half; v += spacing {
			front, back := pair.Front, pair.Back
			if c.onGridLine(u) || c.onGridLine(v) {
				front, back = c.GridColor, c.GridColor
			}
			emit(pair.Axis.point(half, u, v), front, lumFront)
			emit(pair.Axis.point(-half, u, v), back, lumBack)
		}
	}
}
