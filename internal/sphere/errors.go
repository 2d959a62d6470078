package sphere

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"sphere-colormap/internal/colormap"
	"sphere-colormap/internal/mathutil"
)

var (
	// ErrInvalidDirection covers a zero or non-finite pole, a degenerate up
	// reference, and input rows that cannot be normalized.
	ErrInvalidDirection = errors.New("invalid direction")
	// ErrInvalidOrdering is returned when an axis ordering is not a
	// permutation of {0, 1, 2}.
	ErrInvalidOrdering = errors.New("invalid axis ordering")
	// ErrInvalidRotation is returned when a supplied rotation is not orthonormal.
	ErrInvalidRotation = errors.New("invalid rotation")
	// ErrUnknownScheme is returned by Build for an unrecognized scheme name.
	ErrUnknownScheme = errors.New("unknown scheme")
	// ErrInvalidColormap is returned when Inc or Azy is given a colormap
	// that produces colors outside [0,1]³.
	ErrInvalidColormap = colormap.ErrInvalidColormap
)

// RowError reports an input vector that could not be normalized. A batch
// containing such a row fails as a whole; Row is the index of the first
// offending vector.
type RowError struct {
	Row    int
	Vector mathutil.Vec3
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: cannot normalize %v", e.Row, e.Vector)
}

func (e *RowError) Unwrap() error { return ErrInvalidDirection }
