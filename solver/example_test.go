package solver_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/valvenet/internal/fixture"
	"github.com/katalvlaran/valvenet/parser"
	"github.com/katalvlaran/valvenet/partition"
	"github.com/katalvlaran/valvenet/solver"
)

// ExampleSession parses the reference network once and answers both
// the single-agent and the dual-agent question from the same session.
func ExampleSession() {
	records, err := parser.ParseString(fixture.SampleInput)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	s, err := solver.NewSession(context.Background(), records)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	single, _ := s.Single(context.Background(), "AA", 30)
	fmt.Println(single.Score, single.Agents[0].Path)

	dual, _ := s.Dual(context.Background(), "AA", 26, partition.WithStrategy(partition.Exact))
	fmt.Println(dual.Score)
	// Output:
	// 1651 [AA DD BB JJ HH EE CC]
	// 1707
}
