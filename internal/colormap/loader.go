package colormap

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
)

// LoadImage reads a gradient strip (PNG, JPEG, TGA or BMP, chosen by file
// extension) and returns it as a Listed colormap. A wide image is sampled
// along its middle row from left to right; a tall one along its middle
// column from bottom to top. Alpha is ignored.
func LoadImage(path string) (Listed, error) {
	var decode func(io.Reader) (image.Image, error)
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		decode = png.Decode
	case ".jpg", ".jpeg":
		decode = jpeg.Decode
	case ".tga":
		// tga registers with an empty magic, so image.Decode cannot be trusted
		decode = tga.Decode
	case ".bmp":
		decode = bmp.Decode
	default:
		return nil, errors.Wrapf(ErrInvalidColormap, "colormap: unknown gradient extension %q: %s", ext, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "colormap: open %s", path)
	}
	defer f.Close()

	img, err := decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "colormap: decode %s", path)
	}
	return FromImage(img)
}

// FromImage samples a decoded gradient strip, see LoadImage.
func FromImage(img image.Image) (Listed, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 2 && h < 2 {
		return nil, errors.Wrapf(ErrInvalidColormap, "colormap: gradient %dx%d too small", w, h)
	}

	var l Listed
	if w >= h {
		y := b.Min.Y + h/2
		l = make(Listed, w)
		for x := 0; x < w; x++ {
			l[x] = sample(img, b.Min.X+x, y)
		}
	} else {
		x := b.Min.X + w/2
		l = make(Listed, h)
		for y := 0; y < h; y++ {
			l[h-1-y] = sample(img, x, b.Min.Y+y)
		}
	}
	return l, nil
}

func sample(img image.Image, x, y int) RGB {
	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	return FromNRGBA(c)
}
