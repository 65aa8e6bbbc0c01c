// Package bfs provides breadth-first search over an index-based adjacency,
// returning unweighted shortest-path depths and visit order.
//
// Edges have unit weight, so the first time a node is reached is its
// shortest distance; neighbour iteration order affects Order but never Depth.
package bfs

import "fmt"

// walker encapsulates mutable BFS state.
type walker struct {
	graph Adjacency
	opts  Options
	queue []int
	res   *Result
}

// Walk runs breadth-first search on g starting from source.
// Returns ErrGraphNil, ErrSourceOutOfRange, ErrOptionViolation,
// a wrapped OnVisit error, or the context error on cancellation.
//
// Complexity: O(V + E) time, O(V) memory.
func Walk(g Adjacency, source int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Len()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %d (graph has %d nodes)", ErrSourceOutOfRange, source, n)
	}

	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]int, 0, n),
		res: &Result{
			Order: make([]int, 0, n),
			Depth: make([]int, n),
		},
	}
	for i := range w.res.Depth {
		w.res.Depth[i] = Unreached
	}

	w.enqueue(source, 0)
	return w.res, w.loop()
}

func (w *walker) enqueue(id, depth int) {
	w.res.Depth[id] = depth
	w.queue = append(w.queue, id)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		id := w.queue[head]
		depth := w.res.Depth[id]
		w.res.Order = append(w.res.Order, id)
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
		}

		next := depth + 1
		for _, nbr := range w.graph.Neighbors(id) {
			if w.res.Depth[nbr] == Unreached {
				w.enqueue(nbr, next)
			}
		}
	}
	return nil
}
