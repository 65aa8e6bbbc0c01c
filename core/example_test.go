package core_test

import (
	"fmt"

	"github.com/katalvlaran/valvenet/core"
)

// ExampleBuilder builds a three-node ring and resolves the start label.
func ExampleBuilder() {
	b := core.NewBuilder()
	b.AddNode("AA", 0)
	b.AddNode("BB", 13)
	b.AddNode("CC", 2)
	b.AddEdge("AA", "BB")
	b.AddEdge("BB", "CC")
	b.AddEdge("CC", "AA")

	g, index, err := b.Build()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(index["AA"], g.Len(), g.Labels(g.ActiveSet()))
	// Output:
	// 0 3 [BB CC]
}
