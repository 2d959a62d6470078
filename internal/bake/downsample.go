package bake

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample reduces an opaque texture with CatmullRom filtering
// (approximates Lanczos).
func Downsample(img *image.NRGBA, width, height int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= width && b.Dy() <= height {
		return img
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	// Filter ringing can leave alpha just under opaque at the seams.
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 255
	}
	return dst
}
