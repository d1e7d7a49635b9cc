package validate

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/gofhir/catalog/model"
	"github.com/gofhir/catalog/pkg/issue"
)

// BatchResult holds the outcome of ValidateBatch. Results is in input
// order; entries for records not reached before cancellation are nil.
type BatchResult struct {
	Results   []*issue.Result
	Total     int
	Completed int
	Invalid   int
}

// ValidateBatch validates records in parallel with at most workers
// goroutines (runtime.NumCPU() when workers <= 0). Records not yet started
// when ctx is cancelled are skipped.
func (e *Engine) ValidateBatch(ctx context.Context, roots []model.Element, workers int) *BatchResult {
	out := &BatchResult{Results: make([]*issue.Result, len(roots)), Total: len(roots)}
	if len(roots) == 0 {
		return out
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(min(workers, len(roots)))
	for i, root := range roots {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			out.Results[i] = e.Validate(root)
			return nil
		})
	}
	_ = g.Wait()

	for _, res := range out.Results {
		if res == nil {
			continue
		}
		out.Completed++
		if res.HasErrors() {
			out.Invalid++
		}
	}
	if out.Completed < out.Total {
		e.log.Warn("batch validation cancelled after %d of %d records", out.Completed, out.Total)
	}
	return out
}
