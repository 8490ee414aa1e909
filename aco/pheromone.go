// Package aco - pheromone map lifecycle.
//
// Two N×N tables live here:
//   - tau, the shared intensities ants read during selection;
//   - pending (Δτ), the deposits accumulated during the current iteration.
//
// Per iteration: deposit(route, L) for every completed ant, then update()
// (τ ← (1−ρ)·τ + Δτ over every cell, diagonal included), then resetPending().
// Deposits of one iteration are never decayed in the step that lays them.
// Every write touches (i,j) and (j,i), so both tables stay symmetric.
package aco

import (
	"fmt"

	"github.com/katalvlaran/antcolony/matrix"
)

type pheromoneMap struct {
	tau     *matrix.Dense
	pending *matrix.Dense
	rho     float64 // evaporation coefficient
	q       float64 // deposit constant
}

// newPheromoneMap allocates zero-filled τ and Δτ tables of order n.
// Complexity: O(n²).
func newPheromoneMap(n int, rho, q float64) (*pheromoneMap, error) {
	tau, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}
	pending, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}

	return &pheromoneMap{tau: tau, pending: pending, rho: rho, q: q}, nil
}

// deposit adds Q/length to Δτ on both directions of every consecutive edge
// of route. Contributions from different ants on the same edge sum.
//
// Errors: ErrDegenerateTour when length is not positive; matrix errors for
// indices outside the table.
//
// Complexity: O(len(route)).
func (p *pheromoneMap) deposit(route []int, length float64) error {
	if !(length > 0) {
		return fmt.Errorf("deposit: length %g: %w", length, ErrDegenerateTour)
	}
	amount := p.q / length

	var (
		i   int
		err error
	)
	for i = 0; i+1 < len(route); i++ {
		if err = p.pending.AddSym(route[i], route[i+1], amount); err != nil {
			return fmt.Errorf("deposit: edge %d-%d: %w", route[i], route[i+1], err)
		}
	}

	return nil
}

// update evaporates τ and merges the pending deposits in one pass.
// A cell with old value v and deposit d becomes exactly (1−ρ)·v + d.
// Both triangles receive identical arithmetic, so τ must come out exactly
// symmetric; anything else is ErrAsymmetry.
//
// Complexity: O(n²).
func (p *pheromoneMap) update() error {
	if err := matrix.Blend(p.tau, 1-p.rho, p.pending); err != nil {
		return err
	}

	return matrix.ValidateSymmetric(p.tau, 0)
}

// resetPending zeroes Δτ for the next iteration.
func (p *pheromoneMap) resetPending() { p.pending.Zero() }
