package analyst

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Runner lets GenerateBatch schedule work with any concurrency model.
type Runner interface {
	Go(fn func() error) // schedule
	Wait() error        // join / propagate first err
}

// DefaultRunner returns the default implementation backed by errgroup.Group.
func DefaultRunner(ctx context.Context) Runner {
	return NewLimitedRunner(ctx, runtime.NumCPU())
}

// NewLimitedRunner creates a runner with bounded concurrency.
func NewLimitedRunner(ctx context.Context, maxConcurrency int) Runner {
	eg, _ := errgroup.WithContext(ctx)
	return &errGroupRunner{
		eg:  eg,
		sem: make(chan struct{}, maxConcurrency),
	}
}

type errGroupRunner struct {
	eg  *errgroup.Group
	sem chan struct{} // concurrency gate
}

func (r *errGroupRunner) Go(fn func() error) {
	r.eg.Go(func() error {
		r.sem <- struct{}{}        // acquire
		defer func() { <-r.sem }() // release
		return fn()
	})
}

func (r *errGroupRunner) Wait() error { return r.eg.Wait() }

// BatchOptions configures a batch run.
type BatchOptions struct {
	Runner Runner       // nil → DefaultRunner
	Call   []CallOption // applied to every request in the batch
}

// BatchOption mutates the batch configuration.
type BatchOption func(*BatchOptions)

// WithRunner substitutes the scheduler, e.g. NewLimitedRunner for a lower
// concurrency ceiling.
func WithRunner(r Runner) BatchOption {
	return func(o *BatchOptions) { o.Runner = r }
}

// WithCallOptions applies the same per-call options to every request.
func WithCallOptions(opts ...CallOption) BatchOption {
	return func(o *BatchOptions) { o.Call = opts }
}

// GenerateBatch runs one analysis per request concurrently and returns the
// results in request order. Calls are independent round trips, so no
// coordination beyond the scheduler is needed, and because each call
// degrades instead of failing the batch as a whole never fails either.
func (c *Client) GenerateBatch(ctx context.Context, reqs []AnalysisRequest, opts ...BatchOption) []*Result {
	var bo BatchOptions
	for _, opt := range opts {
		opt(&bo)
	}

	r := bo.Runner
	if r == nil {
		r = DefaultRunner(ctx)
	}

	results := make([]*Result, len(reqs))
	for i, req := range reqs {
		i, req := i, req
		r.Go(func() error {
			results[i] = c.GenerateDetailedAnalysis(ctx, req, bo.Call...)
			return nil
		})
	}

	// Tasks never return errors; Wait is only a join point.
	_ = r.Wait()
	return results
}
