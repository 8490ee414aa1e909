package aco_test

import (
	"fmt"

	"github.com/katalvlaran/antcolony/aco"
	"github.com/katalvlaran/antcolony/geo"
)

// ExampleSolve solves a four-stop line where neighbours are 1 apart and
// every other pair is 3 apart.
func ExampleSolve() {
	pos := map[string]int{"a": 0, "b": 1, "c": 2, "d": 3}
	res, err := aco.Solve(aco.Problem[string, int]{
		Nodes: aco.SortedNodes(pos),
		Distance: func(x, y int) float64 {
			if x-y == 1 || y-x == 1 {
				return 1
			}
			return 3
		},
	}, aco.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Tour, res.Length)
	// Output: [a b c d] 3
}

// ExampleNew_geo keeps the colony to inspect the cached leg distances.
func ExampleNew_geo() {
	opts := aco.DefaultOptions()
	opts.Iterations = 20

	c, err := aco.New(aco.Problem[string, geo.Point]{
		Nodes: []aco.Node[string, geo.Point]{
			{Label: "Lisbon", Payload: geo.Point{Lat: 38.7223, Lon: -9.1393}},
			{Label: "Madrid", Payload: geo.Point{Lat: 40.4168, Lon: -3.7038}},
			{Label: "Barcelona", Payload: geo.Point{Lat: 41.3874, Lon: 2.1686}},
		},
		Distance: geo.Haversine,
	}, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := c.Run()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Tour)
	for k := 0; k+1 < len(res.Indices); k++ {
		d, _ := c.Distance(res.Indices[k], res.Indices[k+1])
		fmt.Printf("%.0f km\n", d)
	}
	// Output:
	// [Lisbon Madrid Barcelona]
	// 502 km
	// 505 km
}
