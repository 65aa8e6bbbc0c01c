// Package distance is the distance oracle: it precomputes shortest-path
// lengths between every pair of nodes of an unweighted graph and serves
// them in O(1).
//
// Compute runs one breadth-first search per source node. Because all edges
// weigh one, the first time BFS reaches a node is its shortest distance, so
// adjacency order never changes the table. Pairs without a path hold the
// Unreachable sentinel and At reports ok == false for them; consumers treat
// that as infinite cost.
//
// ComputeParallel fans the sources out over an errgroup. Each source writes
// only its own row, so no locking is needed.
//
//	t := distance.Compute(g)
//	if d, ok := t.At(from, to); ok { ... }
package distance
