package scene

import (
	"math"

	"sphere-tracer/internal/mathutil"
)

// Camera is a pinhole camera. The image plane sits one unit along Direction
// and spans [-0.5, 0.5] in both screen axes.
type Camera struct {
	Position  mathutil.Vec3 `json:"position"`
	Direction mathutil.Vec3 `json:"direction"`
}

// DefaultCamera looks down +X from the origin.
func DefaultCamera() Camera {
	return Camera{Direction: mathutil.Vec3{1, 0, 0}}
}

// worldVertical is the axis screen v runs along when the camera looks down +X.
var worldVertical = mathutil.Vec3{0, 0, 1}

// Basis returns a matrix with columns forward, right and vertical.
// For Direction (1,0,0) it is the identity.
func (c Camera) Basis() mathutil.Mat3 {
	forward := c.Direction.Normalize()

	vertical := worldVertical
	if math.Abs(forward.Dot(vertical)) > 1-1e-9 {
		vertical = mathutil.Vec3{0, -1, 0}
	}
	right := vertical.Cross(forward).Normalize()
	vertical = forward.Cross(right)

	return mathutil.Mat3Cols(forward, right, vertical)
}

// RayDirection returns the unit direction through screen offset (u, v).
func (c Camera) RayDirection(u, v float64) mathutil.Vec3 {
	return c.Basis().MulVec3(mathutil.Vec3{1, u, v}).Normalize()
}
