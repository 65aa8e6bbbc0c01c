// Package valvenet answers one question about a small network of valves:
// which valves should be opened, in what order, and by whom, to release the
// most pressure before time runs out?
//
// Each valve is a node with a flow rate (its reward); tunnels are
// unweighted edges. Opening a valve takes one minute and then releases its
// flow rate every remaining minute, so the payoff of a valve is its rate
// times the time left after opening it.
//
// Packages, leaves first:
//
//	core/      — immutable Graph built from labelled nodes and edges
//	bfs/       — breadth-first walker over index adjacency
//	distance/  — all-pairs distance table (one BFS per source)
//	budget/    — exact memoised bitmask search for one agent
//	partition/ — two agents splitting the valves (exact or iterative improvement)
//	parser/    — puzzle text → core.Record
//	solver/    — Session facade, SolveSingleAgent / SolveDualAgent
//	config/, metrics/, cmd/valves — configuration, Prometheus metrics, CLI
//
// Quick start:
//
//	records, _ := parser.ParseString(input)
//	score, err := solver.SolveSingleAgent(records, "AA", 30)
//
//	go install github.com/katalvlaran/valvenet/cmd/valves@latest
//	valves dual input.txt --strategy exact
package valvenet
