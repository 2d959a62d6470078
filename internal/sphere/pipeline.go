package sphere

import (
	"github.com/cockroachdb/errors"

	"sphere-colormap/internal/mathutil"
)

// Options configures the preprocessing shared by every scheme. The zero
// value applies normalization only.
type Options struct {
	// Pole is the direction treated as +Z after reorientation.
	Pole *mathutil.Vec3
	// Up is the reference used to orient the frame around Pole. When nil,
	// +Y is used (or +X if +Y is nearly parallel to Pole).
	Up *mathutil.Vec3
	// Rotation is applied instead of a frame built from Pole. Its rows are
	// the new x, y and z axes and must be orthonormal.
	Rotation *mathutil.Mat3
	// Ordering permutes the input axes before rotation: component c of the
	// result is component Ordering[c] of the input.
	Ordering []int
}

// Pipeline holds the immutable preprocessing derived from Options: axis
// permutation, then rotation, then normalization.
type Pipeline struct {
	ordering [3]int
	permute  bool
	rotation mathutil.Mat3
	rotate   bool
}

// NewPipeline validates opts and builds the pipeline.
func NewPipeline(opts Options) (Pipeline, error) {
	var p Pipeline

	if opts.Ordering != nil {
		ord, err := parseOrdering(opts.Ordering)
		if err != nil {
			return Pipeline{}, err
		}
		p.ordering = ord
		p.permute = true
	}

	switch {
	case opts.Rotation != nil:
		R := *opts.Rotation
		if !R.IsOrthonormal() {
			return Pipeline{}, errors.Wrapf(ErrInvalidRotation, "sphere: rotation %v", R)
		}
		p.rotation = R
		p.rotate = true
	case opts.Pole != nil:
		R, err := mathutil.Basis(*opts.Pole, opts.Up)
		if err != nil {
			return Pipeline{}, errors.WithSecondaryError(
				errors.Wrapf(ErrInvalidDirection, "sphere: pole %v (%v)", *opts.Pole, err), err)
		}
		p.rotation = R
		p.rotate = true
	case opts.Up != nil:
		return Pipeline{}, errors.Wrap(ErrInvalidDirection, "sphere: up reference given without pole")
	}

	return p, nil
}

func parseOrdering(o []int) ([3]int, error) {
	var ord [3]int
	if len(o) != 3 {
		return ord, errors.Wrapf(ErrInvalidOrdering, "sphere: ordering %v has %d entries", o, len(o))
	}
	var seen [3]bool
	for i, a := range o {
		if a < 0 || a > 2 || seen[a] {
			return ord, errors.Wrapf(ErrInvalidOrdering, "sphere: ordering %v", o)
		}
		seen[a] = true
		ord[i] = a
	}
	return ord, nil
}

// Rotation returns the configured rotation, or identity when none is set.
func (p Pipeline) Rotation() mathutil.Mat3 {
	if !p.rotate {
		return mathutil.Mat3Identity()
	}
	return p.rotation
}

// Prepare permutes, rotates and normalizes each vector. The input is not
// modified. The first vector that cannot be normalized fails the batch
// with a *RowError.
func (p Pipeline) Prepare(vectors []mathutil.Vec3) ([]mathutil.Vec3, error) {
	out := make([]mathutil.Vec3, len(vectors))
	for i, v := range vectors {
		w := v
		if p.permute {
			w = mathutil.Vec3{w[p.ordering[0]], w[p.ordering[1]], w[p.ordering[2]]}
		}
		if p.rotate {
			w = p.rotation.MulVec3(w)
		}
		u, ok := w.Unit()
		if !ok {
			return nil, &RowError{Row: i, Vector: v}
		}
		out[i] = u
	}
	return out, nil
}
