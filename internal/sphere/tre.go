package sphere

import (
	"sphere-colormap/internal/colormap"
	"sphere-colormap/internal/mathutil"
)

// Tre colors a direction by the absolute values of its components, so data
// that is mostly along x, y or z shows as red, green or blue.
type Tre struct {
	Pipeline
}

func NewTre(opts Options) (*Tre, error) {
	p, err := NewPipeline(opts)
	if err != nil {
		return nil, err
	}
	return &Tre{Pipeline: p}, nil
}

func (*Tre) Name() string { return "Tre" }

func (m *Tre) Color(vectors []mathutil.Vec3) ([]colormap.RGB, error) {
	return colorEach(m.Pipeline, vectors, treColor)
}

func treColor(u mathutil.Vec3) colormap.RGB {
	return colormap.RGB(u.Abs())
}
