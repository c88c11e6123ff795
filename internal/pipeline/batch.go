package pipeline

import (
	"context"

	"github.com/nao1215/creditroll/internal/model"
	"golang.org/x/sync/errgroup"
)

// executeConcurrently runs the steps in goroutines, at most p.concurrency
// at a time. Each step owns a different group of credits, so they do not
// race on the document. The first failure cancels the context handed to
// the steps still running and is the error returned.
func (p *Pipeline) executeConcurrently(ctx context.Context, credits *model.Credits) error {
	p.logger.Debug("running steps concurrently",
		"steps", len(p.steps),
		"concurrency", p.concurrency,
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for _, step := range p.steps {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			return p.runStep(ctx, step, credits)
		})
	}

	return g.Wait()
}
