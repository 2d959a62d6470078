package sphere

import (
	"context"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"sphere-colormap/internal/colormap"
	"sphere-colormap/internal/mathutil"
)

// DefaultChunk is the batch slice size used by ColorParallel when none is given.
const DefaultChunk = 4096

// ColorParallel colors vectors in chunks of the given size using up to
// workers goroutines (unlimited when workers <= 0). The result matches
// m.Color: same order, and a bad row fails the call with the *RowError of
// the lowest offending index.
func ColorParallel(ctx context.Context, m Map, vectors []mathutil.Vec3, workers, chunk int) ([]colormap.RGB, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if chunk <= 0 {
		chunk = DefaultChunk
	}
	if len(vectors) <= chunk {
		return m.Color(vectors)
	}

	n := len(vectors)
	out := make([]colormap.RGB, n)
	errs := make([]error, (n+chunk-1)/chunk)

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for c := range errs {
		start := c * chunk
		end := min(start+chunk, n)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			colors, err := m.Color(vectors[start:end])
			if err != nil {
				var re *RowError
				if errors.As(err, &re) {
					err = &RowError{Row: re.Row + start, Vector: re.Vector}
				}
				errs[c] = err
				return nil
			}
			copy(out[start:end], colors)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
