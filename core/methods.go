// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Read-only accessors over an immutable Graph.
// Policy:
//   - Accessors never expose internal slices for mutation: callers get copies
//     except for Neighbors, which is documented as read-only.
//   - Out-of-range indices panic like slice indexing; they are programmer errors.

package core

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// EdgeCount returns the number of directed edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Node returns the node stored at index i.
func (g *Graph) Node(i int) Node { return g.nodes[i] }

// Label returns the label of node i.
func (g *Graph) Label(i int) string { return g.nodes[i].Label }

// Reward returns the reward of node i.
func (g *Graph) Reward(i int) uint32 { return g.nodes[i].Reward }

// Neighbors returns the heads of edges leaving i, in declaration order.
// The returned slice is shared with the Graph and must not be modified.
func (g *Graph) Neighbors(i int) []int { return g.adjacency[i] }

// Index resolves a label to its node index.
func (g *Graph) Index(label string) (int, bool) {
	idx, ok := g.index[label]
	return idx, ok
}

// LabelIndex returns a fresh copy of the label → index map.
func (g *Graph) LabelIndex() map[string]int {
	out := make(map[string]int, len(g.index))
	for label, idx := range g.index {
		out[label] = idx
	}
	return out
}

// Labels maps a slice of indices to their labels.
func (g *Graph) Labels(ids []int) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = g.nodes[id].Label
	}
	return out
}

// Rewards returns a copy of the per-node reward table, indexed by node.
func (g *Graph) Rewards() []uint32 {
	out := make([]uint32, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.Reward
	}
	return out
}

// ActiveSet returns the indices of nodes with a nonzero reward, ascending.
// These are the only nodes worth visiting.
//
// Complexity: O(V).
func (g *Graph) ActiveSet() []int {
	var active []int
	for i, n := range g.nodes {
		if n.Reward > 0 {
			active = append(active, i)
		}
	}
	return active
}
