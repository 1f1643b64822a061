package raster

import (
	"sphere-tracer/internal/mathutil"
	"sphere-tracer/internal/scene"
)

// Shade accumulates the direct light reaching a hit point.
//
// Each light contributes the average of sphere and light colour scaled by
// the cosine between surface normal and light direction. The cosine is not
// clamped; back-facing lights end up at zero through the per-channel clamp.
func Shade(hit scene.Hit, lights []scene.Light) mathutil.Color {
	total := mathutil.Black()
	normal := hit.Point.Sub(hit.Sphere.Position).Normalize()
	base := hit.Sphere.Color

	for _, l := range lights {
		lightDir := l.Position.Sub(hit.Point).Normalize()
		deflection := normal.Dot(lightDir)

		total.AddAssign(mathutil.Color{
			R: mathutil.Clamp((base.R+l.Color.R)/2*deflection, 0, 1),
			G: mathutil.Clamp((base.G+l.Color.G)/2*deflection, 0, 1),
			B: mathutil.Clamp((base.B+l.Color.B)/2*deflection, 0, 1),
			A: base.A,
		})
	}
	return total
}

// Trace returns the colour seen along a ray; opaque black on a miss.
func Trace(sc *scene.Scene, origin, dir mathutil.Vec3) mathutil.Color {
	hit, ok := sc.Intersect(origin, dir)
	if !ok {
		return mathutil.Black()
	}
	return Shade(hit, sc.Lights)
}
