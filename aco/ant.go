// Package aco - a single tour-construction agent.
//
// An Ant owns a private partial tour and a private ordered "remaining" list.
// It reads the shared pheromone table and the distance lookup it was given,
// and never writes either.
//
// Invariants (after NewAnt/Reset succeed):
//   - tour ∪ remaining == nodes, tour ∩ remaining == ∅;
//   - tour[0] == origin; the order of remaining is the order of nodes minus
//     every node already visited (stable across removals);
//   - Complete() is false until Run has emptied remaining.
package aco

import (
	"fmt"
	"math"
	"slices"
)

// PheromoneReader is the read-only view of the pheromone table an ant uses.
// *matrix.Dense satisfies it.
type PheromoneReader interface {
	At(i, j int) (float64, error)
}

// IndexDistance returns the distance between node indices i and j.
type IndexDistance func(i, j int) (float64, error)

// AntConfig bundles an ant's collaborators and exponents.
type AntConfig struct {
	// Alpha is the pheromone exponent, Beta the inverse-distance exponent.
	Alpha, Beta float64
	// Pheromones is read during pheromone-guided selection.
	Pheromones PheromoneReader
	// Distance is consulted for attractiveness and for the distance travelled.
	Distance IndexDistance
	// Rand supplies the roulette toss and first-pass choices. nil uses the default seed.
	Rand Random
	// ZeroPolicy decides the all-zero-attractiveness case.
	ZeroPolicy ZeroPolicy
}

// Ant constructs one tour by repeated stochastic edge selection.
type Ant struct {
	cfg AntConfig

	origin    int
	location  int
	tour      []int
	remaining []int
	traveled  float64
	complete  bool
	firstPass bool

	weights []float64 // scratch aligned with remaining; reused across picks
	spare   []int     // second remaining buffer, swapped in by Reset
	seen    map[int]struct{}
}

// NewAnt creates an ant at origin over nodes (origin must be one of them).
//
// Errors: ErrNilDistance, ErrNilPheromones, ErrOriginNotInNodes,
// ErrDuplicateNode, ErrNodeOutOfRange.
//
// Complexity: O(len(nodes)).
func NewAnt(origin int, nodes []int, cfg AntConfig, firstPass bool) (*Ant, error) {
	if cfg.Distance == nil {
		return nil, acoErrorf("NewAnt", ErrNilDistance)
	}
	if cfg.Pheromones == nil {
		return nil, acoErrorf("NewAnt", ErrNilPheromones)
	}
	if cfg.Rand == nil {
		cfg.Rand = rngFromSeed(0)
	}

	a := &Ant{cfg: cfg}
	if err := a.Reset(origin, nodes, firstPass); err != nil {
		return nil, err
	}

	return a, nil
}

// Reset reinitialises the ant in place for a new tour, reusing its buffers.
// The collaborators given to NewAnt are kept.
//
// Complexity: O(len(nodes)).
func (a *Ant) Reset(origin int, nodes []int, firstPass bool) error {
	if a.seen == nil {
		a.seen = make(map[int]struct{}, len(nodes))
	}
	clear(a.seen)

	var (
		remaining = a.spare[:0]
		found     bool
	)
	for _, v := range nodes {
		if v < 0 {
			return fmt.Errorf("Reset: node %d: %w", v, ErrNodeOutOfRange)
		}
		if _, dup := a.seen[v]; dup {
			return fmt.Errorf("Reset: node %d: %w", v, ErrDuplicateNode)
		}
		a.seen[v] = struct{}{}
		if v == origin {
			found = true
			continue
		}
		remaining = append(remaining, v)
	}
	if !found {
		return fmt.Errorf("Reset: origin %d: %w", origin, ErrOriginNotInNodes)
	}

	// The ant is only touched once nodes proved valid.
	a.spare, a.remaining = a.remaining, remaining
	a.tour = append(a.tour[:0], origin)
	a.origin = origin
	a.location = origin
	a.traveled = 0
	a.complete = false
	a.firstPass = firstPass

	return nil
}

// Run walks until every node is visited, then marks the tour complete.
// Any selection or distance error aborts the walk; the ant stays incomplete.
//
// Complexity: O(n²) selections·candidates for n nodes.
func (a *Ant) Run() error {
	var (
		next int
		err  error
	)
	for len(a.remaining) > 0 {
		if next, err = a.PickNext(); err != nil {
			return err
		}
		if err = a.traverse(next); err != nil {
			return err
		}
	}
	a.complete = true

	return nil
}

// PickNext selects the next node without moving.
//
// Rule:
//  1. First pass: uniform choice among remaining (pheromones never read).
//  2. Otherwise attractiveness(c) = τ(cur,c)^α · (1/d(cur,c))^β for every
//     remaining c, in remaining order; total is their sum.
//  3. total == 0: *ZeroAttractivenessError, or a uniform choice under UniformOnZero.
//  4. One toss ∈ [0,1); walk candidates accumulating attractiveness/total and
//     return the first c with toss <= cumulative. A toss exactly on a slice
//     boundary therefore goes to the earlier candidate; a toss of exactly 0
//     goes to the first candidate, whatever its weight.
//
// A candidate at distance 0 has infinite attractiveness; the first one wins.
//
// Complexity: O(|remaining|).
func (a *Ant) PickNext() (int, error) {
	n := len(a.remaining)
	if n == 0 {
		return -1, ErrTourComplete
	}
	if a.firstPass {
		return a.remaining[a.cfg.Rand.Intn(n)], nil
	}

	var (
		total float64
		w     float64
		err   error
	)
	a.weights = a.weights[:0]
	for _, c := range a.remaining {
		if w, err = a.attractiveness(c); err != nil {
			return -1, err
		}
		if math.IsInf(w, 1) {
			return c, nil
		}
		a.weights = append(a.weights, w)
		total += w
	}

	if total == 0 {
		if a.cfg.ZeroPolicy == UniformOnZero {
			return a.remaining[a.cfg.Rand.Intn(n)], nil
		}
		scores := make(map[int]float64, n)
		for k, c := range a.remaining {
			scores[c] = a.weights[k]
		}
		return -1, &ZeroAttractivenessError{From: a.location, Attractiveness: scores}
	}

	toss := a.cfg.Rand.Float64()
	var (
		cumulative float64
		last       = -1
	)
	for k, c := range a.remaining {
		w = a.weights[k]
		cumulative += w / total
		if toss <= cumulative {
			return c, nil
		}
		if w > 0 {
			last = c
		}
	}

	// Rounding can leave the final cumulative a hair below 1.
	return last, nil
}

// attractiveness computes τ(cur,c)^α · (1/d(cur,c))^β in float64.
func (a *Ant) attractiveness(c int) (float64, error) {
	tau, err := a.cfg.Pheromones.At(a.location, c)
	if err != nil {
		return 0, fmt.Errorf("pheromone(%d,%d): %w", a.location, c, err)
	}
	d, err := a.distance(a.location, c)
	if err != nil {
		return 0, err
	}
	if d == 0 {
		return math.Inf(1), nil
	}

	return math.Pow(tau, a.cfg.Alpha) * math.Pow(1/d, a.cfg.Beta), nil
}

// traverse moves to next: append to tour, drop from remaining (order kept),
// add the edge length, relocate.
func (a *Ant) traverse(next int) error {
	idx := slices.Index(a.remaining, next)
	if idx < 0 {
		return fmt.Errorf("traverse: node %d not remaining: %w", next, ErrNodeOutOfRange)
	}
	d, err := a.distance(a.location, next)
	if err != nil {
		return err
	}

	a.remaining = slices.Delete(a.remaining, idx, idx+1)
	a.tour = append(a.tour, next)
	a.traveled += d
	a.location = next

	return nil
}

func (a *Ant) distance(i, j int) (float64, error) {
	d, err := a.cfg.Distance(i, j)
	if err != nil {
		return 0, err
	}

	return d, checkDistance(i, j, d)
}

// Route returns a copy of the completed tour; ok is false until Run finished.
func (a *Ant) Route() (tour []int, ok bool) {
	if !a.complete {
		return nil, false
	}

	return slices.Clone(a.tour), true
}

// DistanceTraveled returns the tour length; ok is false until Run finished.
func (a *Ant) DistanceTraveled() (length float64, ok bool) {
	if !a.complete {
		return 0, false
	}

	return a.traveled, true
}

// Complete reports whether Run has visited every node.
func (a *Ant) Complete() bool { return a.complete }

// Location returns the node the ant currently stands on.
func (a *Ant) Location() int { return a.location }

// Remaining returns a copy of the unvisited nodes in selection order.
func (a *Ant) Remaining() []int { return slices.Clone(a.remaining) }

// FirstPass reports whether the ant picks uniformly at random.
func (a *Ant) FirstPass() bool { return a.firstPass }
