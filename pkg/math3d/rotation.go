package math3d

import "math"

// RotationState caches the six trig terms of a three-angle Euler rotation
// (ZYX convention: A around the screen-facing axis, B around the vertical
// axis, C around the horizontal axis) so that every sample of a frame
// shares one sin/cos evaluation per angle.
//
// A RotationState is a value: build one per frame from the accumulated
// angles and treat it as read-only while rendering.
type RotationState struct {
	SinA, CosA float64
	SinB, CosB float64
	SinC, CosC float64
}

// NewRotation builds a RotationState from angles a, b, c in radians.
func NewRotation(a, b, c float64) RotationState {
	return RotationState{
		SinA: math.Sin(a), CosA: math.Cos(a),
		SinB: math.Sin(b), CosB: math.Cos(b),
		SinC: math.Sin(c), CosC: math.Cos(c),
	}
}

// Apply rotates v by the composite rotation matrix.
func (r RotationState) Apply(v Vec3) Vec3 {
	return Vec3{
		X: r.CosA*r.CosB*v.X + (r.CosA*r.SinB*r.SinC-r.SinA*r.CosC)*v.Y + (r.CosA*r.SinB*r.CosC+r.SinA*r.SinC)*v.Z,
		Y: r.SinA*r.CosB*v.X + (r.SinA*r.SinB*r.SinC+r.CosA*r.CosC)*v.Y + (r.SinA*r.SinB*r.CosC-r.CosA*r.SinC)*v.Z,
		Z: -v.X*r.SinB + v.Y*r.CosB*r.SinC + v.Z*r.CosB*r.CosC,
	}
}
