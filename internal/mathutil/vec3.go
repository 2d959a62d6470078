package mathutil

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats/scalar"
)

// Vec3 is a 3-component vector (value type, stack-allocated).
type Vec3 [3]float64

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Abs returns the vector with nonnegative components.
func (v Vec3) Abs() Vec3 {
	return Vec3{math.Abs(v[0]), math.Abs(v[1]), math.Abs(v[2])}
}

// Unit returns v scaled to length 1. ok is false when v has zero length or
// a non-finite component, in which case the zero vector is returned.
func (v Vec3) Unit() (u Vec3, ok bool) {
	l := v.Len()
	if !(l > 0) || math.IsInf(l, 0) {
		return Vec3{}, false
	}
	return Vec3{v[0] / l, v[1] / l, v[2] / l}, true
}

// Normalize is Unit without the validity flag.
func (v Vec3) Normalize() Vec3 {
	u, _ := v.Unit()
	return u
}

// ApproxEqual reports whether every component of a and b differs by at most tol.
func (a Vec3) ApproxEqual(b Vec3, tol float64) bool {
	for i := 0; i < 3; i++ {
		if !scalar.EqualWithinAbs(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec3) IsFinite() bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// FromR3 converts a geo r3 vector, as produced by point-cloud libraries.
func FromR3(v r3.Vector) Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// R3 converts v to a geo r3 vector.
func (v Vec3) R3() r3.Vector {
	return r3.Vector{X: v[0], Y: v[1], Z: v[2]}
}
