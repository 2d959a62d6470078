package mathutil

import (
	"math"

	"github.com/cockroachdb/errors"
)

var (
	// ErrZeroVector is returned when a direction has zero (or non-finite) length.
	ErrZeroVector = errors.New("zero-length direction")
	// ErrDegenerateBasis is returned when the up reference is parallel to the pole.
	ErrDegenerateBasis = errors.New("up reference parallel to pole")
)

// RotX returns a 3×3 rotation matrix around the X axis. Angle in radians.
func RotX(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// RotY returns a 3×3 rotation matrix around the Y axis.
func RotY(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// RotZ returns a 3×3 rotation matrix around the Z axis.
func RotZ(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// EulerDeg returns RotZ(z)·RotY(y)·RotX(x) for angles in degrees, so the X
// rotation is applied to a vector first.
func EulerDeg(x, y, z float64) Mat3 {
	return Mat3Mul(RotZ(Deg2Rad(z)), Mat3Mul(RotY(Deg2Rad(y)), RotX(Deg2Rad(x))))
}

// Basis returns the right-handed orthonormal frame whose rows are [x, y, z],
// with z the normalized pole and y the up reference made orthogonal to it.
// Multiplying a vector by the result expresses it in that frame.
//
// With up == nil the reference is +Y, or +X when +Y is within
// |dot| > 0.9 of the pole. A caller-supplied up is used as given.
func Basis(z Vec3, up *Vec3) (Mat3, error) {
	z, ok := z.Unit()
	if !ok {
		return Mat3{}, errors.Wrap(ErrZeroVector, "basis: pole")
	}

	var y Vec3
	if up == nil {
		y = AxisY
		if math.Abs(y.Dot(z)) > parallelLimit {
			y = AxisX
		}
	} else {
		if !up.IsFinite() {
			return Mat3{}, errors.Wrap(ErrZeroVector, "basis: up")
		}
		y = *up
	}

	p := y.Sub(z.Scale(y.Dot(z)))
	if p.Len() <= 1e-9*y.Len() {
		return Mat3{}, errors.Wrapf(ErrDegenerateBasis, "basis: pole %v", z)
	}
	y, ok = p.Unit()
	if !ok {
		return Mat3{}, errors.Wrapf(ErrDegenerateBasis, "basis: pole %v", z)
	}

	x := y.Cross(z)
	return Mat3Rows(x, y, z), nil
}
