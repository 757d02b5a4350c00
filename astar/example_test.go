package astar_test

import (
	"fmt"

	"github.com/katalvlaran/metroroute/astar"
	"github.com/katalvlaran/metroroute/sample"
)

// ExampleFastest runs the three demo scenarios on the sample network.
func ExampleFastest() {
	n := sample.Network()

	for _, sc := range sample.Scenarios {
		r, err := astar.Fastest(n, sc.From, sc.To)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Printf("%s: %d min, %v\n", sc.Title, r.Cost, r.IDs())
	}
	// Output:
	// AŞTİ → OSB: 25 min, [M1 M2 K1 K2 K3 K4]
	// Batıkent → Keçiören: 21 min, [T1 T2 T3 T4]
	// Keçiören → AŞTİ: 19 min, [T4 T3 M4 M3 M2 M1]
}

// ExampleWithLinePenalty shows an exact search with the penalty disabled.
func ExampleWithLinePenalty() {
	n := sample.Network()

	r, err := astar.Fastest(n, "K4", "T1", astar.WithLinePenalty(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(r)
	fmt.Println(r.Cost, "min")
	// Output:
	// OSB -> Demetevler -> Demetevler -> Batıkent
	// 18 min
}
