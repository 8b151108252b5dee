package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-numwords"
)

// Result is the outcome of one conversion. Text holds the fallback when Err is set.
type Result struct {
	Input string
	Text  string
	Err   error
}

// Convert spells every input with at most workers conversions in flight.
// Results keep the order of inputs. Conversion errors are reported per
// result; only cancellation of ctx fails the batch.
func Convert(ctx context.Context, engine *numwords.Engine, locale string, inputs []string, workers int, opts ...numwords.FormatOption) ([]Result, error) {
	results := make([]Result, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, input := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			text, err := engine.Format(locale, input, opts...)
			results[i] = Result{Input: input, Text: text, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
