// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: Two-phase graph construction (declare nodes, then resolve edges).
// Policy:
//   - The Builder owns a growable label table; indices are returned synchronously.
//   - Edges are resolved at Build time so records may reference labels declared later.

package core

import "fmt"

// pendingEdge is an edge whose endpoints are still labels.
type pendingEdge struct {
	from, to string
}

// Builder accumulates nodes and edges and produces an immutable Graph.
// A Builder is not safe for concurrent use.
type Builder struct {
	nodes []Node
	index map[string]int
	edges []pendingEdge
	err   error // first declaration error, surfaced by Build
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{index: make(map[string]int)}
}

// AddNode declares a node and returns its index.
// Indices are assigned in first-seen order starting at 0.
//
// Errors:
//   - ErrEmptyLabel if label == "".
//   - ErrDuplicateLabel if label was already declared.
//
// Both wrap ErrMalformedGraph. The first error is also remembered and
// returned again by Build.
//
// Complexity: O(1) amortized.
func (b *Builder) AddNode(label string, reward uint32) (int, error) {
	if label == "" {
		return -1, b.fail(fmt.Errorf("%w: %w", ErrMalformedGraph, ErrEmptyLabel))
	}
	if _, ok := b.index[label]; ok {
		return -1, b.fail(fmt.Errorf("%w: %w: %q", ErrMalformedGraph, ErrDuplicateLabel, label))
	}
	idx := len(b.nodes)
	b.nodes = append(b.nodes, Node{Label: label, Reward: reward})
	b.index[label] = idx

	return idx, nil
}

// AddEdge records a directed edge from → to.
// Labels are resolved by Build; nothing is validated here.
func (b *Builder) AddEdge(from, to string) {
	b.edges = append(b.edges, pendingEdge{from: from, to: to})
}

// Build resolves all pending edges and returns the Graph together with
// a copy of the label → index map, so callers can look up a start label.
//
// Errors:
//   - the first AddNode error, if any.
//   - ErrUnknownLabel (wrapping ErrMalformedGraph) naming the first edge
//     endpoint that was never declared.
//
// Complexity: O(V + E).
func (b *Builder) Build() (*Graph, map[string]int, error) {
	if b.err != nil {
		return nil, nil, b.err
	}

	adjacency := make([][]int, len(b.nodes))
	for _, e := range b.edges {
		from, ok := b.index[e.from]
		if !ok {
			return nil, nil, fmt.Errorf("%w: %w: %q (edge %s -> %s)", ErrMalformedGraph, ErrUnknownLabel, e.from, e.from, e.to)
		}
		to, ok := b.index[e.to]
		if !ok {
			return nil, nil, fmt.Errorf("%w: %w: %q (edge %s -> %s)", ErrMalformedGraph, ErrUnknownLabel, e.to, e.from, e.to)
		}
		adjacency[from] = append(adjacency[from], to)
	}

	nodes := make([]Node, len(b.nodes))
	copy(nodes, b.nodes)
	index := make(map[string]int, len(b.index))
	for label, idx := range b.index {
		index[label] = idx
	}

	g := &Graph{
		nodes:     nodes,
		adjacency: adjacency,
		index:     index,
		edges:     len(b.edges),
	}

	return g, g.LabelIndex(), nil
}

func (b *Builder) fail(err error) error {
	if b.err == nil {
		b.err = err
	}
	return err
}

// Build is the one-shot form of the Builder: declare nodes in order,
// then edges given as [from, to] label pairs.
func Build(nodes []Node, edges [][2]string) (*Graph, map[string]int, error) {
	b := NewBuilder()
	for _, n := range nodes {
		if _, err := b.AddNode(n.Label, n.Reward); err != nil {
			return nil, nil, err
		}
	}
	for _, e := range edges {
		b.AddEdge(e[0], e[1])
	}

	return b.Build()
}

// FromRecords builds a Graph from parsed records. All records are declared
// first, in order, so a record may list neighbours that appear further down.
func FromRecords(records []Record) (*Graph, error) {
	b := NewBuilder()
	for _, r := range records {
		if _, err := b.AddNode(r.Label, r.Reward); err != nil {
			return nil, err
		}
	}
	for _, r := range records {
		for _, nbr := range r.Neighbors {
			b.AddEdge(r.Label, nbr)
		}
	}

	g, _, err := b.Build()
	return g, err
}
