package mathutil

import (
	"encoding/json"
	"fmt"
)

// Color is an RGBA colour with channels nominally in [0,1].
type Color struct {
	R, G, B, A float64
}

// Black returns opaque black, the colour of a pixel whose ray hits nothing.
func Black() Color {
	return Color{A: 1}
}

// RGB returns an opaque colour.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Add sums channels and clamps every channel, alpha included, into [0,1].
func (c Color) Add(o Color) Color {
	return Color{
		R: Clamp(c.R+o.R, 0, 1),
		G: Clamp(c.G+o.G, 0, 1),
		B: Clamp(c.B+o.B, 0, 1),
		A: Clamp(c.A+o.A, 0, 1),
	}
}

// AddAssign is the in-place form of Add.
func (c *Color) AddAssign(o Color) {
	*c = c.Add(o)
}

// ToRGBA8 converts to 8-bit channels by truncating c*255.
func (c Color) ToRGBA8() [4]uint8 {
	return [4]uint8{
		to8(c.R),
		to8(c.G),
		to8(c.B),
		to8(c.A),
	}
}

func to8(v float64) uint8 {
	return uint8(Clamp(v, 0, 1) * 255)
}

// MarshalJSON writes the colour as [r, g, b, a].
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]float64{c.R, c.G, c.B, c.A})
}

// UnmarshalJSON accepts [r, g, b] (opaque) or [r, g, b, a].
func (c *Color) UnmarshalJSON(data []byte) error {
	var ch []float64
	if err := json.Unmarshal(data, &ch); err != nil {
		return fmt.Errorf("color: %w", err)
	}
	switch len(ch) {
	case 3:
		*c = RGB(ch[0], ch[1], ch[2])
	case 4:
		*c = Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}
	default:
		return fmt.Errorf("color: want 3 or 4 channels, got %d", len(ch))
	}
	return nil
}
