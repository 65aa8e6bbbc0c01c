// Package bfs provides tunable options and error definitions
// for breadth-first search over an index-based adjacency.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil adjacency is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrSourceOutOfRange is returned when the source index is not a node.
	ErrSourceOutOfRange = errors.New("bfs: source out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Unreached is the Depth value of nodes the walk never reached.
const Unreached = -1

// Adjacency is the read-only view BFS needs. *core.Graph satisfies it.
type Adjacency interface {
	// Len returns the number of nodes; valid indices are [0, Len()).
	Len() int
	// Neighbors returns the heads of edges leaving i.
	Neighbors(i int) []int
}

// Option configures BFS behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by Walk.
type Option func(*Options)

// Options holds parameters and callbacks to customize a walk.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a node is dequeued. A non-nil error aborts the walk.
	OnVisit func(id, depth int) error

	err error
}

// DefaultOptions returns background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(int, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation; nil is an ErrOptionViolation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the walk.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a walk:
//   - Order: nodes in visit sequence.
//   - Depth: edge count from the source per node, Unreached if never seen.
type Result struct {
	Order []int
	Depth []int
}

