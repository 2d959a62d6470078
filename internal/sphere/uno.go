package sphere

import (
	"math"

	"sphere-colormap/internal/colormap"
	"sphere-colormap/internal/mathutil"
)

// Uno suits data concentrated around ±Z. Hue follows the azimuth, with the
// southern hemisphere shifted half a turn; directions close to the poles
// fade to white and directions close to the equator to dark gray.
type Uno struct {
	Pipeline
}

const unoSharpness = 8

var (
	unoPole    = colormap.RGB{1, 1, 1}
	unoEquator = colormap.RGB{0.25, 0.25, 0.25}
)

func NewUno(opts Options) (*Uno, error) {
	p, err := NewPipeline(opts)
	if err != nil {
		return nil, err
	}
	return &Uno{Pipeline: p}, nil
}

func (*Uno) Name() string { return "Uno" }

func (m *Uno) Color(vectors []mathutil.Vec3) ([]colormap.RGB, error) {
	return colorEach(m.Pipeline, vectors, unoColor)
}

func unoColor(u mathutil.Vec3) colormap.RGB {
	s := azimuth(u)
	if u[2] < 0 {
		s += math.Pi
	}
	s = wrap(s, 2*math.Pi)

	z2 := u[2] * u[2]
	c := colormap.HSV.At(s / (2 * math.Pi))
	c = c.Lerp(unoPole, math.Pow(z2, unoSharpness))
	return c.Lerp(unoEquator, math.Pow(1-z2, unoSharpness))
}
