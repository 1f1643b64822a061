package raster

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"sphere-tracer/internal/scene"
)

func TestRender_CentrePixelIsRed(t *testing.T) {
	sc := referenceScene(t)

	// Odd size so pixel (5,5) has u = v = 0.
	fb, err := Render(sc, scene.DefaultCamera(), Options{Width: 11, Height: 11, Workers: 1})
	if err != nil {
		t.Fatal(err)
	}
	px := fb.At(5, 5)
	if !(px[0] > px[1] && px[0] > px[2]) {
		t.Errorf("expected red-dominant centre pixel, got %v", px)
	}
	if px[3] != 255 {
		t.Errorf("expected opaque pixel, got %v", px)
	}

	corner := fb.At(0, 0)
	if corner != [4]uint8{0, 0, 0, 255} {
		t.Errorf("expected opaque black corner, got %v", corner)
	}
}

func TestRender_Deterministic(t *testing.T) {
	sc := scene.Default()
	cam := scene.DefaultCamera()

	a, err := Render(sc, cam, Options{Width: 64, Height: 48, Workers: 1})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Render(sc, cam, Options{Width: 64, Height: 48, Workers: 1})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Color, b.Color) {
		t.Error("two sequential renders differ")
	}

	for _, workers := range []int{2, 7, 0, 100} {
		c, err := Render(sc, cam, Options{Width: 64, Height: 48, Workers: workers})
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(a.Color, c.Color) {
			t.Errorf("render with %d workers differs from sequential", workers)
		}
	}
}

func TestRender_InvalidSize(t *testing.T) {
	sizes := [][2]int{{0, 10}, {10, 0}, {-1, 5}}
	for _, s := range sizes {
		_, err := Render(scene.Default(), scene.DefaultCamera(), Options{Width: s[0], Height: s[1]})
		if !errors.Is(err, ErrInvalidSize) {
			t.Errorf("%v: expected ErrInvalidSize, got %v", s, err)
		}
	}
}

func TestRender_Progress(t *testing.T) {
	tests := []struct {
		name   string
		height int
		calls  int
	}{
		{"Multiple of ten", 20, 10},
		{"Not a multiple", 25, 13},
		{"Fewer than ten rows", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var mu sync.Mutex
			var seen []int
			_, err := Render(scene.Default(), scene.DefaultCamera(), Options{
				Width:   4,
				Height:  tt.height,
				Workers: 3,
				Progress: func(done, total int) {
					mu.Lock()
					defer mu.Unlock()
					if total != tt.height {
						t.Errorf("total: expected %d, got %d", tt.height, total)
					}
					seen = append(seen, done)
				},
			})
			if err != nil {
				t.Fatal(err)
			}
			if len(seen) != tt.calls {
				t.Errorf("expected %d progress calls, got %v", tt.calls, seen)
			}
			last := 0
			for _, n := range seen {
				if n > last {
					last = n
				}
			}
			if last != tt.height {
				t.Errorf("final progress %d, expected %d", last, tt.height)
			}
		})
	}
}
