// Package partition solves the dual-agent variant: two agents start at the
// same node with the same budget, act independently, and split the active
// nodes between them. The total is the sum of two single-agent searches.
//
// Two strategies are available and the choice is always explicit:
//
//   - Exact walks the activation orders once into a budget.SubsetTable
//     (best score per subset), then scores every split of the active set
//     (2^(k-1), mirror splits skipped) with two table reads. Optimal; the
//     table takes 2^k entries, so Exact is capped at budget.MaxSubsetActive.
//   - Improve is a bounded approximation: seeded random restarts, each
//     moving one node at a time between the halves and keeping any split
//     whose score does not drop.
//
// Auto, the default, runs Exact up to ExactLimit active nodes and Improve
// beyond; Result.Strategy tells which one ran.
//
// Splits are independent, so they are spread over an errgroup. Exact
// workers share the read-only subset table; Improve restarts each own a
// budget.Maximizer. The final reduction breaks ties on the smallest mask, so results do
// not depend on the worker count.
//
//	res, err := partition.MaximizeDual(ctx, table, rewards, start, active, 26,
//		partition.WithStrategy(partition.Exact))
package partition
