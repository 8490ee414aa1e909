// Package antcolony finds short Hamiltonian paths with Ant Colony
// Optimization.
//
// The module is organized as:
//
//	aco/            the colony: ants, pheromone cycle, distance cache, options
//	matrix/         dense float64 tables backing pheromones and distances
//	geo/            great-circle (Haversine) distances for lat/lon points
//	distcache/      cross-run distance caching (file or Redis)
//	render/         Graphviz DOT/SVG output of a solved tour
//	cmd/antcolony/  the command-line tool (solve, serve, version)
//
// Quick start:
//
//	res, err := aco.Solve(aco.Problem[string, geo.Point]{
//		Nodes:    aco.SortedNodes(cities),
//		Distance: geo.Haversine,
//	}, aco.DefaultOptions())
//
// Install the CLI:
//
//	go install github.com/katalvlaran/antcolony/cmd/antcolony@latest
package antcolony
