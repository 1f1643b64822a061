package mathutil

import "math"

// RotateAroundAxis rotates v by theta radians around axis (Rodrigues).
// axis is expected to be unit length.
func (v Vec3) RotateAroundAxis(theta float64, axis Vec3) Vec3 {
	c, s := math.Cos(theta), math.Sin(theta)
	return v.Scale(c).
		Add(axis.Cross(v).Scale(s)).
		Add(axis.Scale(axis.Dot(v) * (1 - c)))
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}
