// Package sphere maps directions to colors so that nearby directions get
// similar colors. Each scheme (Tre, Uno, Duo, Ico, Inc, Azy) shares the same
// preprocessing Pipeline and differs only in how a unit vector becomes RGB.
//
// Schemes are immutable after construction and safe for concurrent use.
package sphere

import (
	"math"

	"sphere-colormap/internal/colormap"
	"sphere-colormap/internal/mathutil"
)

// Map colors a batch of directions. Vectors need not be unit length but
// must be non-zero; the result has one color per input, in order.
type Map interface {
	Name() string
	Color(vectors []mathutil.Vec3) ([]colormap.RGB, error)
}

// colorEach runs the pipeline and applies fn to every normalized vector.
func colorEach(p Pipeline, vectors []mathutil.Vec3, fn func(mathutil.Vec3) colormap.RGB) ([]colormap.RGB, error) {
	unit, err := p.Prepare(vectors)
	if err != nil {
		return nil, err
	}
	out := make([]colormap.RGB, len(unit))
	for i, u := range unit {
		out[i] = fn(u)
	}
	return out, nil
}

// colorScalar runs the pipeline, reduces every vector to a scalar with fn
// and evaluates cm over the whole batch.
func colorScalar(p Pipeline, vectors []mathutil.Vec3, fn func(mathutil.Vec3) float64, cm colormap.Scalar) ([]colormap.RGB, error) {
	unit, err := p.Prepare(vectors)
	if err != nil {
		return nil, err
	}
	ts := make([]float64, len(unit))
	for i, u := range unit {
		ts[i] = fn(u)
	}
	return colormap.Apply(cm, ts), nil
}

// wrap folds a into [0, period).
func wrap(a, period float64) float64 {
	r := math.Mod(a, period)
	if r < 0 {
		r += period
	}
	if r >= period {
		r -= period
	}
	return r
}

// azimuth is the angle of v around +Z in (-π, π].
func azimuth(v mathutil.Vec3) float64 {
	return math.Atan2(v[1], v[0])
}

// clampUnit keeps normalized components inside asin's domain.
func clampUnit(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}
