package raster

import (
	"image"

	"sphere-tracer/internal/mathutil"
)

// FrameBuffer holds the rendering target as a flat slice for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8 // RGBA interleaved, len = W*H*4
}

// NewFrameBuffer allocates a zeroed colour buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, w*h*4),
	}
}

// SetColor writes c to pixel (x, y) as 8-bit RGBA.
func (fb *FrameBuffer) SetColor(x, y int, c mathutil.Color) {
	px := c.ToRGBA8()
	i := (y*fb.Width + x) * 4
	copy(fb.Color[i:i+4], px[:])
}

// At returns the RGBA bytes of pixel (x, y).
func (fb *FrameBuffer) At(x, y int) [4]uint8 {
	i := (y*fb.Width + x) * 4
	return [4]uint8{fb.Color[i], fb.Color[i+1], fb.Color[i+2], fb.Color[i+3]}
}

// Image copies the buffer into an NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}
