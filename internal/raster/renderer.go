package raster

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"sphere-tracer/internal/mathutil"
	"sphere-tracer/internal/scene"
)

// ErrInvalidSize is returned for non-positive image dimensions.
var ErrInvalidSize = errors.New("raster: image dimensions must be positive")

// Options controls a render.
type Options struct {
	Width   int
	Height  int
	Workers int // <= 0 means NumCPU

	// Progress, if set, is called every Height/10 finished rows and once at
	// the end. Calls may come from any worker goroutine but never overlap.
	Progress func(done, total int)
}

// Render casts one ray per pixel and returns the filled frame buffer.
// The result does not depend on the number of workers.
func Render(sc *scene.Scene, cam scene.Camera, opts Options) (*FrameBuffer, error) {
	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > h {
		workers = h
	}

	fb := NewFrameBuffer(w, h)
	basis := cam.Basis()

	step := h / 10
	if step < 1 {
		step = 1
	}
	var finished atomic.Int64
	var progressMu sync.Mutex

	// Worker pool over rows
	rowChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rowChan {
				renderRow(fb, sc, cam.Position, basis, y)
				n := int(finished.Add(1))
				if opts.Progress != nil && n%step == 0 {
					progressMu.Lock()
					opts.Progress(n, h)
					progressMu.Unlock()
				}
			}
		}()
	}

	for y := 0; y < h; y++ {
		rowChan <- y
	}
	close(rowChan)
	wg.Wait()

	if opts.Progress != nil && h%step != 0 {
		opts.Progress(h, h)
	}
	return fb, nil
}

func renderRow(fb *FrameBuffer, sc *scene.Scene, origin mathutil.Vec3, basis mathutil.Mat3, y int) {
	v := (float64(y)+0.5)/float64(fb.Height) - 0.5
	for x := 0; x < fb.Width; x++ {
		u := (float64(x)+0.5)/float64(fb.Width) - 0.5
		dir := basis.MulVec3(mathutil.Vec3{1, u, v}).Normalize()
		fb.SetColor(x, y, Trace(sc, origin, dir))
	}
}
