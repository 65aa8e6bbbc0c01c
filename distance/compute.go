// SPDX-License-Identifier: MIT
//
// File: compute.go
// Role: All-pairs shortest paths on an unweighted graph via one BFS per source.
// Complexity: O(N·(N+E)) time, O(N²) space.

package distance

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/valvenet/bfs"
)

// Compute returns the all-pairs distance table of g.
// It never fails: missing paths are stored as Unreachable.
func Compute(g bfs.Adjacency) *Table {
	t := newTable(g.Len())
	for s := 0; s < t.n; s++ {
		// cannot fail: s is in range, the context is never cancelled
		_ = walkRow(context.Background(), g, s, t.row(s))
	}
	return t
}

// ComputeParallel is Compute with sources distributed over up to workers
// goroutines. Each source owns its row, so workers share nothing but the
// read-only graph. workers <= 0 means one goroutine per source.
//
// The only error is the context error on cancellation.
func ComputeParallel(ctx context.Context, g bfs.Adjacency, workers int) (*Table, error) {
	t := newTable(g.Len())

	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for s := 0; s < t.n; s++ {
		s := s
		eg.Go(func() error {
			return walkRow(ctx, g, s, t.row(s))
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return t, nil
}

// walkRow fills row with BFS depths from s as nodes are dequeued.
// Entries of unreached nodes keep their Unreachable initial value.
func walkRow(ctx context.Context, g bfs.Adjacency, s int, row []uint32) error {
	_, err := bfs.Walk(g, s, bfs.WithContext(ctx), bfs.WithOnVisit(func(id, depth int) error {
		row[id] = uint32(depth)
		return nil
	}))
	return err
}
