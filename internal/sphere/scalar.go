package sphere

import (
	"math"

	"sphere-colormap/internal/colormap"
	"sphere-colormap/internal/mathutil"
)

// ScalarOptions configures the schemes that reduce a direction to one
// value and look it up in a scalar colormap.
type ScalarOptions struct {
	Options
	// Colormap overrides the scheme default (Jet for Inc, HSV for Azy).
	Colormap colormap.Scalar
	// Asymmetric maps the two ends of the value range to opposite ends of
	// the colormap instead of folding them together.
	Asymmetric bool
}

func newScalar(opts ScalarOptions, def colormap.Scalar) (Pipeline, colormap.Scalar, error) {
	p, err := NewPipeline(opts.Options)
	if err != nil {
		return Pipeline{}, nil, err
	}
	cm := opts.Colormap
	if cm == nil {
		return p, def, nil
	}
	if err := colormap.Validate(cm); err != nil {
		return Pipeline{}, nil, err
	}
	return p, cm, nil
}

// Inc colors by inclination, the angle from the XY plane. Symmetric (the
// default) gives both poles the same color; asymmetric spreads south pole
// to north pole over the whole colormap.
type Inc struct {
	Pipeline
	cmap      colormap.Scalar
	symmetric bool
}

func NewInc(opts ScalarOptions) (*Inc, error) {
	p, cm, err := newScalar(opts, colormap.Jet)
	if err != nil {
		return nil, err
	}
	return &Inc{Pipeline: p, cmap: cm, symmetric: !opts.Asymmetric}, nil
}

func (*Inc) Name() string { return "Inc" }

func (m *Inc) Color(vectors []mathutil.Vec3) ([]colormap.RGB, error) {
	return colorScalar(m.Pipeline, vectors, m.value, m.cmap)
}

func (m *Inc) value(u mathutil.Vec3) float64 {
	inc := math.Asin(clampUnit(u[2])) / (math.Pi / 2)
	if m.symmetric {
		return math.Abs(inc)
	}
	return 0.5 * (inc + 1)
}

// Azy colors by azimuth around Z. Symmetric (the default) folds opposite
// azimuths together, so az and az+π share a color and the colormap runs
// twice around the circle. Asymmetric spreads -π..π over the colormap once,
// leaving a seam at ±π unless the colormap is cyclic.
type Azy struct {
	Pipeline
	cmap      colormap.Scalar
	symmetric bool
}

func NewAzy(opts ScalarOptions) (*Azy, error) {
	p, cm, err := newScalar(opts, colormap.HSV)
	if err != nil {
		return nil, err
	}
	return &Azy{Pipeline: p, cmap: cm, symmetric: !opts.Asymmetric}, nil
}

func (*Azy) Name() string { return "Azy" }

func (m *Azy) Color(vectors []mathutil.Vec3) ([]colormap.RGB, error) {
	return colorScalar(m.Pipeline, vectors, m.value, m.cmap)
}

func (m *Azy) value(u mathutil.Vec3) float64 {
	a := azimuth(u) / math.Pi
	if m.symmetric {
		return wrap(a, 1)
	}
	return 0.5 * (a + 1)
}
