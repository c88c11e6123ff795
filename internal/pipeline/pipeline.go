package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nao1215/creditroll/internal/model"
)

// Step defines the interface that all pipeline steps must implement.
// A step fills one group of the credits document.
type Step interface {
	// Do executes the step and stores its roster in credits.
	// Any error aborts the pipeline.
	Do(ctx context.Context, credits *model.Credits) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline orchestrates the execution of multiple steps.
type Pipeline struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger

	// concurrency is the number of steps that may run at once.
	// 1 runs them in the order they were added.
	concurrency int
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, slog.Default is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithConcurrency sets how many steps may run at once.
// Non-positive values are ignored.
func WithConcurrency(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added using AddStep after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps:       make([]Step, 0),
		concurrency: 1,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddStep appends a step to the pipeline.
// Steps are executed in the order they are added.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all pipeline steps and returns the first error.
// With a concurrency of 1 the steps run in order and context cancellation
// is checked before each one.
func (p *Pipeline) Execute(ctx context.Context, credits *model.Credits) error {
	start := time.Now()

	var err error
	if p.concurrency > 1 && len(p.steps) > 1 {
		err = p.executeConcurrently(ctx, credits)
	} else {
		err = p.executeSequentially(ctx, credits)
	}
	if err != nil {
		return err
	}

	p.logger.Debug("pipeline complete",
		"steps", len(p.steps),
		"elapsed", time.Since(start),
	)
	return nil
}

func (p *Pipeline) executeSequentially(ctx context.Context, credits *model.Credits) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"reason", ctx.Err(),
			)
			return ctx.Err()
		default:
		}

		if err := p.runStep(ctx, step, credits); err != nil {
			return err
		}
	}
	return nil
}

// runStep executes one step with logging and names it in the error.
func (p *Pipeline) runStep(ctx context.Context, step Step, credits *model.Credits) error {
	p.logger.Info("executing step", "step", step.Name())

	if err := step.Do(ctx, credits); err != nil {
		p.logger.Error("step failed",
			"step", step.Name(),
			"error", err,
		)
		return fmt.Errorf("%s: %w", step.Name(), err)
	}

	p.logger.Debug("step completed", "step", step.Name())
	return nil
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
