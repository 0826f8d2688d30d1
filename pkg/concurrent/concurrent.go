package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Concurrent runs action for every element in its own goroutine and waits
// for all of them. It returns the first error encountered.
func Concurrent[T any](items []T, action func(T) error) error {
	errGroup := errgroup.Group{}
	for _, item := range items {
		errGroup.Go(func() error {
			return action(item)
		})
	}
	return errGroup.Wait()
}

// Map applies fn to every element with at most limit calls in flight and
// returns the results in input order. A limit below one means no limit.
// The first error cancels the context passed to the remaining calls.
func Map[T, R any](ctx context.Context, items []T, limit int, fn func(context.Context, T) (R, error)) ([]R, error) {
	errGroup, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		errGroup.SetLimit(limit)
	}

	results := make([]R, len(items))
	for i, item := range items {
		errGroup.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := fn(ctx, item)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := errGroup.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
