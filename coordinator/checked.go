package coordinator

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// RunContext is Run with lock failures returned instead of aborting the
// process. The first failing worker cancels the others; they stop between
// increments. Cancelling ctx stops the run the same way.
func (co *Coordinator) RunContext(ctx context.Context) (int, error) {
	g, gctx := errgroup.WithContext(ctx)

	for i := 0; i < co.cfg.Workers; i++ {
		i := i
		g.Go(func() error {
			for it := 0; it < co.cfg.Iterations; it++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := co.counter.Increment(); err != nil {
					return fmt.Errorf("worker %d: %w", i, err)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	v, err := co.counter.Value()
	if err != nil {
		return 0, fmt.Errorf("read result: %w", err)
	}
	co.tracer.Value("counter", v)
	return v, nil
}
