package core_test

import (
	"fmt"

	"github.com/katalvlaran/conveyor/core"
)

// ExampleFromLinks builds a small conveyor network and inspects it.
func ExampleFromLinks() {
	// 1) Each link is one physical belt; FromLinks stores it in both directions.
	g, err := core.FromLinks([]core.Link{
		{A: "Concourse_A_Ticketing", B: "A5", Cost: 5},
		{A: "A5", B: "BaggageClaim", Cost: 5},
		{A: "A5", B: "A10", Cost: 4},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Names come back in ascending order.
	fmt.Println(g.Junctions())

	// 3) Costs are symmetric.
	ab, _ := g.Cost("A10", "A5")
	ba, _ := g.Cost("A5", "A10")
	fmt.Println(ab, ba, g.Stats().Connections)

	// Output:
	// [A10 A5 BaggageClaim Concourse_A_Ticketing]
	// 4 4 6
}
