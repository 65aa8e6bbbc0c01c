// Package fixture holds the reference valve network shared by tests
// and examples across packages.
package fixture

import "github.com/katalvlaran/valvenet/core"

// Start is the entry label of the reference network.
const Start = "AA"

// Reference answers for the sample network.
const (
	SingleBudget = 30
	SingleScore  = 1651

	DualBudget = 26
	DualScore  = 1707
)

// SampleInput is the reference network in puzzle text form.
const SampleInput = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
`

// SampleRecords returns SampleInput in record form.
func SampleRecords() []core.Record {
	return []core.Record{
		{Label: "AA", Reward: 0, Neighbors: []string{"DD", "II", "BB"}},
		{Label: "BB", Reward: 13, Neighbors: []string{"CC", "AA"}},
		{Label: "CC", Reward: 2, Neighbors: []string{"DD", "BB"}},
		{Label: "DD", Reward: 20, Neighbors: []string{"CC", "AA", "EE"}},
		{Label: "EE", Reward: 3, Neighbors: []string{"FF", "DD"}},
		{Label: "FF", Reward: 0, Neighbors: []string{"EE", "GG"}},
		{Label: "GG", Reward: 0, Neighbors: []string{"FF", "HH"}},
		{Label: "HH", Reward: 22, Neighbors: []string{"GG"}},
		{Label: "II", Reward: 0, Neighbors: []string{"AA", "JJ"}},
		{Label: "JJ", Reward: 21, Neighbors: []string{"II"}},
	}
}

// SampleGraph builds the reference network. It panics on error since the
// data is a compile-time constant.
func SampleGraph() *core.Graph {
	g, err := core.FromRecords(SampleRecords())
	if err != nil {
		panic(err)
	}
	return g
}
