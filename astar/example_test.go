package astar_test

import (
	"fmt"

	"github.com/katalvlaran/areanav/astar"
)

// ExampleSearch plans across a tiny road network.
func ExampleSearch() {
	roads := map[string]map[string]float64{
		"home":   {"bridge": 4, "tunnel": 1},
		"bridge": {"market": 1},
		"tunnel": {"market": 6},
	}
	nb := astar.NeighborFunc[string](func(n string) []string {
		var out []string
		for m := range roads[n] {
			out = append(out, m)
		}
		return out
	})
	cost := func(a, b string) float64 { return roads[a][b] }

	res, _ := astar.Search[string]("home", "market", nb, cost, nil, astar.WithExactGoalCost())
	fmt.Println(res.Path.Steps(), res.Path.TotalCost())
	// Output:
	// [home bridge market] 5
}
