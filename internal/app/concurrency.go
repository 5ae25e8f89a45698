package app

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// PartialResult holds a value or the error that prevented it.
type PartialResult[T any] struct {
	Value T
	Err   error
}

// mapLimit calls fn for every key with at most limit calls in flight and
// returns the results in key order. A failure never cancels the other keys.
// Keys still waiting for a slot once ctx is done report ctx.Err() without
// calling fn. A limit of 1 processes keys strictly in order.
func mapLimit[K, V any](
	ctx context.Context,
	limit int,
	keys []K,
	fn func(context.Context, K) (V, error),
) []PartialResult[V] {
	results := make([]PartialResult[V], len(keys))

	var g errgroup.Group
	g.SetLimit(max(limit, 1))

	for i, key := range keys {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}

			value, err := fn(ctx, key)
			results[i] = PartialResult[V]{Value: value, Err: err}
			return nil
		})
	}

	_ = g.Wait()

	return results
}
