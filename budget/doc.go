// Package budget is the budgeted maximizer: given a distance oracle, a
// reward per node, a start node, a set of active (reward) nodes and a time
// budget, it finds the activation order that collects the most reward
// before time runs out.
//
// Visiting v from the current node costs the travel distance plus one unit
// to activate v. The payoff of v is reward(v) multiplied by the time left
// after activation, so high-value nodes pay more the earlier they are
// reached.
//
// The search is exact: a memoised recursion over (current node, bitmask of
// still-available nodes, time left). Each state branches over every
// affordable available node and keeps the best total; with no affordable
// move the branch stops. The active set is therefore limited to MaxActive
// nodes, which is far beyond what the exponential state space can handle in
// practice anyway (tens of nodes at most).
//
// Maximize is the one-shot entry point. NewMaximizer exposes the reusable
// search object, whose memo is valid for any subset of its universe; the
// dual-agent partitioner relies on this to evaluate many splits cheaply.
// Subsets goes one step further and tabulates the best score of every
// subset from a single walk, so a split costs two table reads.
//
//	res, err := budget.Maximize(table, g.Rewards(), start, g.ActiveSet(), 30)
//	// res.Score, res.Path (res.Path[0] == start)
package budget
