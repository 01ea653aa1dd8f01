package absplit

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	// batchParallelThreshold is the batch size above which assignment is
	// sharded across goroutines. Below it the goroutine overhead outweighs
	// one hash per element.
	batchParallelThreshold = 4096

	// batchChunkSize is the number of identifiers each goroutine processes
	// per task.
	batchChunkSize = 1024
)

// AssignBatch applies Assign independently to each identifier.
//
// The result is order-preserving and element-wise identical to calling
// Assign on each identifier in sequence: labels[i] corresponds to
// identifiers[i]. Because assignment is pure and stateless, large batches
// are sharded across goroutines with no synchronization; results land by
// index, not arrival order.
//
// The batch fails fast on the first canonicalization error, identifying the
// offending index. There are no partial results and no retries; the inputs
// are deterministic, so retrying a failed element is meaningless.
//
// Parameters:
//   - ctx: Context for cancellation between chunks
//   - identifiers: Subject identifiers, each canonicalizable per Assign
//
// Returns:
//   - []string: Group labels, parallel to identifiers
//   - error: types.ErrUnsupportedIdentifier (wrapped with the index) or ctx.Err()
func (s *Splitter) AssignBatch(ctx context.Context, identifiers []any) ([]string, error) {
	start := time.Now()

	labels := make([]string, len(identifiers))
	if len(identifiers) == 0 {
		return labels, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(identifiers) <= batchParallelThreshold {
		if err := s.assignRange(identifiers, labels, 0); err != nil {
			return nil, err
		}

		s.metrics.ObserveBatch(s.salt, len(identifiers), time.Since(start))

		return labels, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for lo := 0; lo < len(identifiers); lo += batchChunkSize {
		hi := min(lo+batchChunkSize, len(identifiers))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			return s.assignRange(identifiers[lo:hi], labels[lo:hi], lo)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.metrics.ObserveBatch(s.salt, len(identifiers), time.Since(start))

	return labels, nil
}

// assignRange assigns a contiguous chunk, writing labels in place.
// offset is the chunk's position in the original batch, used for error context.
func (s *Splitter) assignRange(identifiers []any, labels []string, offset int) error {
	for i, id := range identifiers {
		label, err := s.Assign(id)
		if err != nil {
			return fmt.Errorf("identifier at index %d: %w", offset+i, err)
		}
		labels[i] = label
	}

	return nil
}
