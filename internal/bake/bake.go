// Package bake samples colorings into lookup textures that downstream
// renderers can index by direction or by scalar value.
package bake

import (
	"image"
	"math"

	"github.com/cockroachdb/errors"

	"sphere-colormap/internal/colormap"
	"sphere-colormap/internal/mathutil"
	"sphere-colormap/internal/sphere"
)

// ErrSize is returned for non-positive texture dimensions.
var ErrSize = errors.New("invalid texture size")

// Direction returns the unit vector sampled at pixel center (x+0.5, y+0.5)
// of a width×height equirectangular texture. Longitude runs from -π at the
// left edge to π at the right, latitude from +π/2 at the top to -π/2 at
// the bottom.
func Direction(x, y, width, height int) mathutil.Vec3 {
	lon := (float64(x)+0.5)/float64(width)*2*math.Pi - math.Pi
	lat := math.Pi/2 - (float64(y)+0.5)/float64(height)*math.Pi
	cl := math.Cos(lat)
	return mathutil.Vec3{cl * math.Cos(lon), cl * math.Sin(lon), math.Sin(lat)}
}

// Equirect colors every pixel of a width×height equirectangular texture
// with m. With supersample > 1 the texture is rendered that many times
// larger and filtered down.
func Equirect(m sphere.Map, width, height, supersample int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrSize, "bake: %dx%d", width, height)
	}
	if supersample < 1 {
		supersample = 1
	}
	rw, rh := width*supersample, height*supersample

	dirs := make([]mathutil.Vec3, 0, rw*rh)
	for y := 0; y < rh; y++ {
		for x := 0; x < rw; x++ {
			dirs = append(dirs, Direction(x, y, rw, rh))
		}
	}
	colors, err := m.Color(dirs)
	if err != nil {
		return nil, errors.Wrapf(err, "bake: %s", m.Name())
	}

	img := image.NewNRGBA(image.Rect(0, 0, rw, rh))
	fill(img, colors)

	if supersample > 1 {
		img = Downsample(img, width, height)
	}
	return img, nil
}

// Strip renders cm left (0) to right (1) as a width×height colorbar.
func Strip(cm colormap.Scalar, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrSize, "bake: strip %dx%d", width, height)
	}
	ts := make([]float64, width)
	for x := range ts {
		if width > 1 {
			ts[x] = float64(x) / float64(width-1)
		}
	}
	row := colormap.Apply(cm, ts)

	colors := make([]colormap.RGB, 0, width*height)
	for y := 0; y < height; y++ {
		colors = append(colors, row...)
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	fill(img, colors)
	return img, nil
}

// fill writes colors row-major into img, fully opaque.
func fill(img *image.NRGBA, colors []colormap.RGB) {
	for i, c := range colors {
		n := c.NRGBA()
		p := i * 4
		img.Pix[p] = n.R
		img.Pix[p+1] = n.G
		img.Pix[p+2] = n.B
		img.Pix[p+3] = n.A
	}
}
