package sphere

import (
	"math"

	"sphere-colormap/internal/colormap"
	"sphere-colormap/internal/mathutil"
)

// Duo suits data lying mostly in the XY plane. Opposite azimuths share a
// hue, and directions tilting toward ±Z fade to gray.
type Duo struct {
	Pipeline
}

var duoGray = colormap.RGB{0.5, 0.5, 0.5}

func NewDuo(opts Options) (*Duo, error) {
	p, err := NewPipeline(opts)
	if err != nil {
		return nil, err
	}
	return &Duo{Pipeline: p}, nil
}

func (*Duo) Name() string { return "Duo" }

func (m *Duo) Color(vectors []mathutil.Vec3) ([]colormap.RGB, error) {
	return colorEach(m.Pipeline, vectors, duoColor)
}

func duoColor(u mathutil.Vec3) colormap.RGB {
	s := wrap(azimuth(u), math.Pi)
	return colormap.HSV.At(s / math.Pi).Lerp(duoGray, u[2]*u[2])
}
