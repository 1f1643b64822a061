package raster

import (
	"math"
	"testing"

	"sphere-tracer/internal/mathutil"
	"sphere-tracer/internal/scene"
)

func referenceScene(t *testing.T) *scene.Scene {
	t.Helper()
	sc, err := scene.New(
		[]scene.Sphere{{Position: mathutil.Vec3{4, 0, 0}, Radius: 0.6, Color: mathutil.Color{R: 1, A: 1}}},
		[]scene.Light{{Position: mathutil.Vec3{0, 0, -8}, Color: mathutil.RGB(0.3, 0.3, 0.3)}},
	)
	if err != nil {
		t.Fatal(err)
	}
	return sc
}

func TestTrace_CentreRayHitsRedSphere(t *testing.T) {
	sc := referenceScene(t)

	dir := scene.DefaultCamera().RayDirection(0, 0)
	if _, ok := sc.Intersect(mathutil.Vec3{}, dir); !ok {
		t.Fatal("centre ray should hit the sphere")
	}

	c := Trace(sc, mathutil.Vec3{}, dir)
	if !(c.R > c.G && c.R > c.B) {
		t.Errorf("expected red-dominant colour, got %+v", c)
	}

	// Hit point (3.4,0,0), normal -X, light direction (-3.4,0,-8)/|..|.
	deflection := 3.4 / math.Sqrt(3.4*3.4+64)
	if math.Abs(c.R-0.65*deflection) > 1e-9 || math.Abs(c.G-0.15*deflection) > 1e-9 {
		t.Errorf("unexpected shading %+v for deflection %v", c, deflection)
	}
	if c.A != 1 {
		t.Errorf("expected opaque result, got alpha %v", c.A)
	}
}

func TestTrace_MissIsOpaqueBlack(t *testing.T) {
	sc := referenceScene(t)
	c := Trace(sc, mathutil.Vec3{}, mathutil.Vec3{-1, 0, 0})
	if c != mathutil.Black() {
		t.Errorf("expected opaque black, got %+v", c)
	}
}

func TestShade_BackFacingLightContributesNothing(t *testing.T) {
	hit := scene.Hit{
		Sphere: scene.Sphere{Position: mathutil.Vec3{}, Radius: 1, Color: mathutil.RGB(1, 1, 1)},
		Point:  mathutil.Vec3{-1, 0, 0},
	}
	lights := []scene.Light{{Position: mathutil.Vec3{5, 0, 0}, Color: mathutil.RGB(1, 1, 1)}}

	if c := Shade(hit, lights); c != mathutil.Black() {
		t.Errorf("expected black, got %+v", c)
	}
}

func TestShade_LightsSaturate(t *testing.T) {
	hit := scene.Hit{
		Sphere: scene.Sphere{Position: mathutil.Vec3{}, Radius: 1, Color: mathutil.RGB(1, 1, 1)},
		Point:  mathutil.Vec3{-1, 0, 0},
	}
	light := scene.Light{Position: mathutil.Vec3{-5, 0, 0}, Color: mathutil.RGB(1, 1, 1)}

	c := Shade(hit, []scene.Light{light, light, light})
	expected := mathutil.Color{R: 1, G: 1, B: 1, A: 1}
	if c != expected {
		t.Errorf("Expected %+v, got %+v", expected, c)
	}
}

func TestShade_NoLights(t *testing.T) {
	hit := scene.Hit{Sphere: scene.Sphere{Radius: 1, Color: mathutil.RGB(1, 0, 0)}, Point: mathutil.Vec3{1, 0, 0}}
	if c := Shade(hit, nil); c != mathutil.Black() {
		t.Errorf("expected black without lights, got %+v", c)
	}
}
