// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Record and Graph declarations plus sentinel errors.
// Policy:
//   - A Graph is immutable once Build returns; there are no mutators.
//   - Indices are dense, 0-based and assigned in first-seen order.
//   - Every construction failure wraps ErrMalformedGraph.

package core

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrMalformedGraph is the umbrella for every construction failure.
	// Check with errors.Is(err, core.ErrMalformedGraph).
	ErrMalformedGraph = errors.New("core: malformed graph")

	// ErrDuplicateLabel indicates a label was declared twice.
	ErrDuplicateLabel = errors.New("core: duplicate label")

	// ErrUnknownLabel indicates an edge references a label that was never declared.
	ErrUnknownLabel = errors.New("core: unknown label")

	// ErrEmptyLabel indicates a node was declared with an empty label.
	ErrEmptyLabel = errors.New("core: label is empty")
)

// Node is a labelled vertex with an associated reward.
//
// Label is only meaningful at the boundary (parsing, debugging, reporting);
// algorithms work on the node's index. A zero Reward marks a pure waypoint.
type Node struct {
	// Label is the human-readable identifier, unique within a Graph.
	Label string

	// Reward is the per-time-unit payoff once the node is activated.
	Reward uint32
}

// Record is one line of the external graph description:
// a node declaration together with the labels it leads to.
type Record struct {
	Label     string
	Reward    uint32
	Neighbors []string
}

// Graph is an immutable directed graph over dense integer indices.
//
// adjacency[i] lists the heads of edges leaving node i in insertion order.
// Undirected inputs simply declare both directions.
type Graph struct {
	nodes     []Node
	adjacency [][]int
	index     map[string]int // label → index
	edges     int
}
