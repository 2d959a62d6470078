// Package colormap provides scalar colormaps: functions from a normalized
// value in [0,1] to an RGB color, used as building blocks by the sphere
// coloring schemes.
package colormap

import (
	"image/color"
	"math"

	"github.com/cockroachdb/errors"
)

// ErrInvalidColormap is returned when a colormap is missing or produces
// colors outside [0,1]³.
var ErrInvalidColormap = errors.New("invalid colormap")

// RGB is a color with components in [0,1].
type RGB [3]float64

// Lerp blends c toward o by weight w (0 keeps c, 1 gives o).
func (c RGB) Lerp(o RGB, w float64) RGB {
	return RGB{
		c[0]*(1-w) + o[0]*w,
		c[1]*(1-w) + o[1]*w,
		c[2]*(1-w) + o[2]*w,
	}
}

// InRange reports whether every component is finite and within [0,1].
func (c RGB) InRange() bool {
	for _, v := range c {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return false
		}
	}
	return true
}

// NRGBA converts to an opaque 8-bit color.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c[0]), G: to8(c[1]), B: to8(c[2]), A: 255}
}

// FromNRGBA converts an 8-bit color, ignoring alpha.
func FromNRGBA(c color.NRGBA) RGB {
	return RGB{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}

func to8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Scalar maps a normalized value to a color. Implementations must be pure
// and safe for concurrent use. Values outside [0,1] are clamped, except
// for cyclic maps which wrap.
type Scalar interface {
	At(t float64) RGB
}

// Func adapts an ordinary function to Scalar.
type Func func(t float64) RGB

func (f Func) At(t float64) RGB { return f(t) }

// Apply evaluates cm over a batch of scalars.
func Apply(cm Scalar, ts []float64) []RGB {
	out := make([]RGB, len(ts))
	for i, t := range ts {
		out[i] = cm.At(t)
	}
	return out
}

// validationSamples is the number of evenly spaced points Validate checks.
const validationSamples = 33

// Validate samples cm across [0,1] and fails if any color is out of range.
func Validate(cm Scalar) error {
	switch m := cm.(type) {
	case nil:
		return errors.Wrap(ErrInvalidColormap, "colormap: nil")
	case Func:
		if m == nil {
			return errors.Wrap(ErrInvalidColormap, "colormap: nil func")
		}
	case Listed:
		if len(m) == 0 {
			return errors.Wrap(ErrInvalidColormap, "colormap: no colors")
		}
	case Segmented:
		if len(m.R) == 0 || len(m.G) == 0 || len(m.B) == 0 {
			return errors.Wrap(ErrInvalidColormap, "colormap: channel without knots")
		}
	}
	for i := 0; i < validationSamples; i++ {
		t := float64(i) / (validationSamples - 1)
		if c := cm.At(t); !c.InRange() {
			return errors.Wrapf(ErrInvalidColormap, "colormap: At(%.4g) = %v", t, c)
		}
	}
	return nil
}

// Gamma returns cm with its domain warped as t^g, e.g. Gamma(Plasma, 2)
// spends more of the range on the high end.
func Gamma(cm Scalar, g float64) Scalar {
	return Func(func(t float64) RGB {
		return cm.At(math.Pow(clamp01(t), g))
	})
}

func clamp01(t float64) float64 {
	if t < 0 || math.IsNaN(t) {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
