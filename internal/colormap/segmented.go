package colormap

import "math"

// Knot is one breakpoint of a channel: value Y at position X.
type Knot struct {
	X, Y float64
}

// Segmented interpolates each channel linearly between its own knots.
// Knots of every channel must start at X=0, end at X=1 and be increasing.
type Segmented struct {
	R, G, B []Knot
}

func (s Segmented) At(t float64) RGB {
	t = clamp01(t)
	return RGB{channel(s.R, t), channel(s.G, t), channel(s.B, t)}
}

func channel(knots []Knot, t float64) float64 {
	if len(knots) == 0 {
		return math.NaN()
	}
	for i := 1; i < len(knots); i++ {
		k0, k1 := knots[i-1], knots[i]
		if t > k1.X {
			continue
		}
		span := k1.X - k0.X
		if span <= 0 {
			return k1.Y
		}
		f := (t - k0.X) / span
		return k0.Y + f*(k1.Y-k0.Y)
	}
	return knots[len(knots)-1].Y
}

// Jet is the full-spectrum blue → cyan → yellow → red map.
var Jet = Segmented{
	R: []Knot{{0, 0}, {0.35, 0}, {0.66, 1}, {0.89, 1}, {1, 0.5}},
	G: []Knot{{0, 0}, {0.125, 0}, {0.375, 1}, {0.64, 1}, {0.91, 0}, {1, 0}},
	B: []Knot{{0, 0.5}, {0.11, 1}, {0.34, 1}, {0.65, 0}, {1, 0}},
}
