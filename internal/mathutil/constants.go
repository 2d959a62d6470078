package mathutil

import "math"

// Phi is the golden ratio (1+√5)/2.
var Phi = (1 + math.Sqrt(5)) / 2

// Canonical axes.
var (
	AxisX = Vec3{1, 0, 0}
	AxisY = Vec3{0, 1, 0}
	AxisZ = Vec3{0, 0, 1}
)

// parallelLimit is the |dot| above which the default up reference is
// considered too close to the pole and AxisX is used instead.
const parallelLimit = 0.9

// OrthoTolerance bounds the deviation of R·Rᵀ from identity accepted as orthonormal.
const OrthoTolerance = 1e-6
