package sphere

import (
	"math"

	"sphere-colormap/internal/colormap"
	"sphere-colormap/internal/mathutil"
)

// Ico suits data with no predominant orientation. Colors are blended from
// twelve anchors placed at the vertices of a regular icosahedron, so there
// is no singular axis. Antipodal anchors share a color.
type Ico struct {
	Pipeline
}

// IcoWeightPower sharpens the barycentric blend toward the nearest anchor.
const IcoWeightPower = 2

// Anchor is a fixed direction with its assigned color.
type Anchor struct {
	Dir   mathutil.Vec3
	Color colormap.RGB
}

// icoAnchors are the twelve icosahedron vertices and their colors. Every
// face has three distinct colors.
var icoAnchors = buildIcoAnchors()

// IcoAnchors returns a copy of the anchor table used by Ico.
func IcoAnchors() [12]Anchor {
	return icoAnchors
}

func buildIcoAnchors() [12]Anchor {
	phi := mathutil.Phi
	n := math.Sqrt(1 + phi*phi)
	dirs := [6]mathutil.Vec3{
		{0, 1, phi}, {0, -1, phi}, {1, phi, 0},
		{-1, phi, 0}, {phi, 0, 1}, {-phi, 0, 1},
	}
	colors := [6]colormap.RGB{
		{1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 1, 1}, {0, 0, 1}, {1, 0, 1},
	}

	var a [12]Anchor
	for i, d := range dirs {
		d = d.Scale(1 / n)
		a[i] = Anchor{Dir: d, Color: colors[i]}
		a[i+6] = Anchor{Dir: d.Scale(-1), Color: colors[i]}
	}
	return a
}

func NewIco(opts Options) (*Ico, error) {
	p, err := NewPipeline(opts)
	if err != nil {
		return nil, err
	}
	return &Ico{Pipeline: p}, nil
}

func (*Ico) Name() string { return "Ico" }

func (m *Ico) Color(vectors []mathutil.Vec3) ([]colormap.RGB, error) {
	return colorEach(m.Pipeline, vectors, icoColor)
}

// nearest3 returns the indices of the three anchors with the largest
// projection on u, largest first.
func nearest3(u mathutil.Vec3) [3]int {
	best := [3]int{-1, -1, -1}
	var dots [3]float64
	for i := range icoAnchors {
		d := u.Dot(icoAnchors[i].Dir)
		for k := 0; k < 3; k++ {
			if best[k] < 0 || d > dots[k] {
				copy(best[k+1:], best[k:2])
				copy(dots[k+1:], dots[k:2])
				best[k], dots[k] = i, d
				break
			}
		}
	}
	return best
}

func icoColor(u mathutil.Vec3) colormap.RGB {
	ijk := nearest3(u)
	vi, vj, vk := icoAnchors[ijk[0]].Dir, icoAnchors[ijk[1]].Dir, icoAnchors[ijk[2]].Dir

	// Spherical barycentric weights. Inside the triangle all three share the
	// sign of the triple product; orient them by it and drop whatever falls
	// outside before sharpening.
	w := [3]float64{
		u.Dot(vj.Cross(vk)),
		u.Dot(vk.Cross(vi)),
		u.Dot(vi.Cross(vj)),
	}
	sign := 1.0
	if vi.Dot(vj.Cross(vk)) < 0 {
		sign = -1
	}

	var sum float64
	for n := range w {
		x := math.Max(0, sign*w[n])
		w[n] = math.Pow(x, IcoWeightPower)
		sum += w[n]
	}
	if !(sum > 0) {
		return icoAnchors[ijk[0]].Color
	}

	var c colormap.RGB
	for n, idx := range ijk {
		a := icoAnchors[idx].Color
		for ch := 0; ch < 3; ch++ {
			c[ch] += w[n] * a[ch]
		}
	}
	for ch := range c {
		c[ch] /= sum
	}
	return c
}
