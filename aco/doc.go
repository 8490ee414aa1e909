// SPDX-License-Identifier: MIT

// Package aco finds short Hamiltonian paths with Ant Colony Optimization.
//
// A colony of ants repeatedly walks every node once, starting from a fixed
// origin. Each step picks the next node by roulette over
//
//	attractiveness(c) = τ(cur,c)^α · (1/d(cur,c))^β
//
// where τ is the shared pheromone table and d the caller's distance. After
// every iteration each ant lays Q/L on the edges of its tour (L = tour
// length), old pheromone evaporates by ρ, and the shortest tour seen so far
// is kept.
//
// The very first iteration ignores pheromones entirely (τ starts at zero)
// and picks uniformly at random, which seeds the table.
//
// The tour is open: it does not return to the origin, and its length does
// not include a closing edge.
//
// Entry points:
//   - Solve(problem, opts): one call, returns a Result.
//   - New + Run: keep the Colony to inspect pheromones and distances afterwards.
//   - NewAnt: the single-ant primitive, usable with any PheromoneReader.
//
// Determinism: every random draw comes from per-ant streams derived from
// Options.Seed, and deposits are merged in ant order, so a given seed gives
// the same Result for any Options.Workers value.
//
// Complexity per iteration: O(AntCount·n²) selections plus O(n²) for the
// pheromone update. Memory: three n×n tables (τ, Δτ, distances).
//
// Errors are sentinels (errors.go) wrapped with context; match with errors.Is.
//
// Example:
//
//	res, err := aco.Solve(aco.Problem[string, geo.Point]{
//		Nodes:    aco.SortedNodes(cities),
//		Distance: geo.Haversine,
//	}, aco.DefaultOptions())
package aco
