// Package batch runs independent requests side by side and tallies how they
// settled.
package batch

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds how many requests are in flight at once.
const DefaultConcurrency = 8

// Result partitions a batch into successes and failures.
type Result struct {
	Succeeded []string
	Failed    []string
	Errors    map[string]error
}

// Total is the number of items attempted.
func (r Result) Total() int { return len(r.Succeeded) + len(r.Failed) }

// Settle calls fn once per id and waits for every call to finish. A failing
// call never stops the others, and no order between calls is assumed.
// limit <= 0 means DefaultConcurrency.
func Settle(ctx context.Context, ids []string, limit int, fn func(context.Context, string) error) Result {
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	var (
		g   errgroup.Group
		mu  sync.Mutex
		res = Result{Errors: make(map[string]error)}
	)
	g.SetLimit(limit)

	for _, id := range ids {
		g.Go(func() error {
			err := fn(ctx, id)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				res.Failed = append(res.Failed, id)
				res.Errors[id] = err
				return nil
			}
			res.Succeeded = append(res.Succeeded, id)
			return nil
		})
	}
	_ = g.Wait()
	return res
}
