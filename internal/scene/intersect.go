package scene

import (
	"math"

	"sphere-tracer/internal/mathutil"
)

// Hit describes where a ray met a sphere.
type Hit struct {
	Sphere   Sphere
	Distance float64
	Point    mathutil.Vec3
}

// Intersect returns the distance along dir (unit length) from origin to the
// first forward intersection with the sphere.
func (s Sphere) Intersect(origin, dir mathutil.Vec3) (float64, bool) {
	L := s.Position.Sub(origin)
	r2 := s.Radius * s.Radius

	// Centre behind the ray start: only reachable from inside the sphere.
	tca := L.Dot(dir)
	if tca < 0 && L.Dot(L) > r2 {
		return 0, false
	}

	d2 := L.Dot(L) - tca*tca
	if d2 > r2 {
		return 0, false
	}

	thc := math.Sqrt(r2 - d2)
	t0, t1 := tca-thc, tca+thc
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	if t0 < 0 {
		t0 = t1
		if t0 < 0 {
			return 0, false
		}
	}
	return t0, true
}

// Intersect finds the nearest sphere hit along the ray. When two spheres are
// hit at the same distance the earlier one in the scene wins.
func (sc *Scene) Intersect(origin, dir mathutil.Vec3) (Hit, bool) {
	var best Hit
	found := false
	for _, s := range sc.Spheres {
		t, ok := s.Intersect(origin, dir)
		if !ok || (found && t >= best.Distance) {
			continue
		}
		best = Hit{Sphere: s, Distance: t}
		found = true
	}
	if !found {
		return Hit{}, false
	}
	best.Point = origin.Add(dir.Scale(best.Distance))
	return best, true
}
