package sphere

import (
	"github.com/golang/geo/r3"

	"sphere-colormap/internal/colormap"
	"sphere-colormap/internal/mathutil"
)

// ColorR3 colors point-cloud directions given as r3 vectors.
func ColorR3(m Map, points []r3.Vector) ([]colormap.RGB, error) {
	vectors := make([]mathutil.Vec3, len(points))
	for i, p := range points {
		vectors[i] = mathutil.FromR3(p)
	}
	return m.Color(vectors)
}
