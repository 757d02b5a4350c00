package dfs_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/metroroute/dfs"
	"github.com/katalvlaran/metroroute/sample"
)

// ExampleDFS prints the post-order of a traversal of the sample network
// starting at AŞTİ (M1).
func ExampleDFS() {
	res, err := dfs.DFS(sample.Network(), "M1")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Join(res.Order, " "))
	// Output:
	// T1 K1 K2 K4 K3 T2 T4 T3 M4 M3 M2 M1
}

// ExampleComponents adds a line with no transfer to the sample network.
func ExampleComponents() {
	n := sample.Network()
	_ = n.AddStop("S1", "Airport", "Shuttle")
	_ = n.AddStop("S2", "Terminal", "Shuttle")
	_ = n.AddConnection("S1", "S2", 6)

	islands, _ := dfs.Components(context.Background(), n)
	for _, island := range islands {
		fmt.Println(len(island), island[0])
	}
	// Output:
	// 12 K1
	// 2 S1
}
