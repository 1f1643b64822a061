package scene

import (
	"errors"
	"fmt"
	"math"

	"sphere-tracer/internal/mathutil"
)

// ErrInvalidRadius is returned by New for a sphere whose radius is not positive.
var ErrInvalidRadius = errors.New("scene: sphere radius must be positive")

// Sphere is a solid-coloured sphere primitive.
type Sphere struct {
	Position mathutil.Vec3  `json:"position"`
	Radius   float64        `json:"radius"`
	Color    mathutil.Color `json:"color"`
}

// Light is a point light source.
type Light struct {
	Position mathutil.Vec3  `json:"position"`
	Color    mathutil.Color `json:"color"`
}

// Scene owns the spheres and lights of one render.
// It is built once and read concurrently by the render loop.
type Scene struct {
	Spheres []Sphere
	Lights  []Light
}

// New copies spheres and lights into a Scene, rejecting invalid spheres.
func New(spheres []Sphere, lights []Light) (*Scene, error) {
	for i, s := range spheres {
		if !(s.Radius > 0) || math.IsInf(s.Radius, 0) {
			return nil, fmt.Errorf("sphere %d radius %v: %w", i, s.Radius, ErrInvalidRadius)
		}
	}
	return &Scene{
		Spheres: append([]Sphere(nil), spheres...),
		Lights:  append([]Light(nil), lights...),
	}, nil
}

// DefaultSpheres returns the built-in sphere arrangement.
func DefaultSpheres() []Sphere {
	return []Sphere{
		{Position: mathutil.Vec3{4, 0, 0}, Radius: 0.6, Color: mathutil.RGB(1, 0, 0)},
		{Position: mathutil.Vec3{4, -1.2, -0.2}, Radius: 0.3, Color: mathutil.RGB(0, 1, 0)},
		{Position: mathutil.Vec3{4, 1.2, 0.2}, Radius: 0.3, Color: mathutil.RGB(0, 0, 1)},
		{Position: mathutil.Vec3{4, -1, -0.8}, Radius: 0.2, Color: mathutil.RGB(0, 1, 1)},
		{Position: mathutil.Vec3{4, 1, 0.8}, Radius: 0.2, Color: mathutil.RGB(1, 1, 0)},
	}
}

// DefaultLights returns the built-in light setup.
func DefaultLights() []Light {
	return []Light{
		{Position: mathutil.Vec3{0, 0, -8}, Color: mathutil.RGB(0.3, 0.3, 0.3)},
		{Position: mathutil.Vec3{8, 0, 4}, Color: mathutil.RGB(0.2, 0.2, 0.2)},
		{Position: mathutil.Vec3{0, 0, 0}, Color: mathutil.RGB(0.01, 0.01, 0.01)},
	}
}

// Default returns the built-in scene.
func Default() *Scene {
	return &Scene{Spheres: DefaultSpheres(), Lights: DefaultLights()}
}
