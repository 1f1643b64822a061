package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Thumbnail scales img down so its longer side is maxSize, keeping the aspect
// ratio. Images that already fit are returned unchanged.
func Thumbnail(img *image.NRGBA, maxSize int) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return img
	}

	tw, th := maxSize, maxSize
	if w >= h {
		th = max(1, h*maxSize/w)
	} else {
		tw = max(1, w*maxSize/h)
	}

	// Downsample with CatmullRom (approximates Lanczos)
	dst := image.NewNRGBA(image.Rect(0, 0, tw, th))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
