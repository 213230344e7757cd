package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"gridsift/domain/run"
)

// BatchService processes several input files concurrently. Every
// input gets its own run: an independent output directory and
// independent in-memory state, so workers share nothing but the
// worker limit.
type BatchService struct {
	extract *ExtractService
	workers int
}

// BatchResult pairs one input with its outcome. Err is set when that
// input's run failed; other inputs are unaffected.
type BatchResult struct {
	Input   string
	Summary *run.Summary
	Err     error
}

// NewBatchService creates a batch service with a bounded worker pool.
func NewBatchService(extract *ExtractService, workers int) *BatchService {
	if workers < 1 {
		workers = 1
	}
	return &BatchService{extract: extract, workers: workers}
}

// Run processes the inputs and returns one result per input, in input
// order. Per-input failures are collected, never fatal for the batch;
// only context cancellation stops the whole pass.
func (s *BatchService) Run(ctx context.Context, inputs []string) ([]BatchResult, error) {
	results := make([]BatchResult, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = BatchResult{Input: input, Err: err}
				return err
			}
			summary, err := s.extract.Run(ctx, ExtractRequest{InputPath: input})
			results[i] = BatchResult{Input: input, Summary: summary, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
