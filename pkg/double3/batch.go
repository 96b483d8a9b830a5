package double3

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/opd-ai/go-worldmath/pkg/mathf"
)

// ErrLengthMismatch is returned when a batch output slice is shorter than
// its input.
var ErrLengthMismatch = errors.New("result slice shorter than input")

// cancelCheckInterval is how many vectors a worker transforms between
// context checks.
const cancelCheckInterval = 1024

// TransformBatchParallel behaves like TransformBatch but splits the input into
// contiguous chunks transformed by up to workers goroutines. results[i] always
// corresponds to vectors[i]. workers <= 0 uses GOMAXPROCS. On cancellation
// the context error is returned and results is partially written.
func TransformBatchParallel(ctx context.Context, vectors []Vector, transform mathf.Matrix, results []Vector, workers int) error {
	if len(results) < len(vectors) {
		return fmt.Errorf("transform batch of %d vectors into %d results: %w", len(vectors), len(results), ErrLengthMismatch)
	}
	if len(vectors) == 0 {
		return ctx.Err()
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(vectors) {
		workers = len(vectors)
	}

	chunk := (len(vectors) + workers - 1) / workers
	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(vectors); start += chunk {
		end := min(start+chunk, len(vectors))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if (i-start)%cancelCheckInterval == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				TransformMatrixTo(vectors[i], transform, &results[i])
			}
			return nil
		})
	}
	return g.Wait()
}
