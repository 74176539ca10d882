package render

import (
	"github.com/taigrr/qube/pkg/math3d"
)

// Ramp orders twelve glyphs from visually sparse to dense. Quantized
// luminance indexes into it to fake shading with text.
const Ramp = ".,-~:;=!*#$@"

// FaceLuminance rotates a face's outward normal and returns its dot
// product with the light direction. Both vectors are unit length, so the
// result lies in [-1, 1]: positive toward the light, negative away from
// it. A flat face shares one luminance across all of its samples, so this
// runs once per face per frame.
func FaceLuminance(normal math3d.Vec3, rot math3d.RotationState, light math3d.Vec3) float64 {
	// Rotation preserves length, but normalize anyway so accumulated
	// float error cannot push the dot product out of range.
	return rot.Apply(normal).Normalize().Dot(light)
}

// GlyphFor maps a luminance value to a ramp glyph. Unlit faces
// (luminance <= 0) get the sparsest glyph.
func GlyphFor(luminance float64) byte {
	if luminance <= 0 {
		return Ramp[0]
	}
	i := int(luminance * 11)
	if i > len(Ramp)-1 {
		i = len(Ramp) - 1
	}
	return Ramp[i]
}
