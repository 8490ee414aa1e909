// Package aco - the colony controller.
//
// A Colony owns the pheromone map, the distance cache and the ant roster,
// runs Options.Iterations iterations and keeps the incumbent (shortest tour
// seen so far).
//
// One iteration (step):
//  1. run every ant to completion (sequentially or on a bounded errgroup);
//  2. in ant index order: deposit Q/L along the ant's tour into Δτ and offer
//     the tour to the incumbent (replaced only when strictly shorter);
//  3. τ ← (1−ρ)·τ + Δτ;
//  4. clear the first-pass flag for good;
//  5. reset every ant in place and zero Δτ.
//
// τ is only written in steps 3–5, never while ants run, so the ant phase
// can run concurrently without observing a partial update.
package aco

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/antcolony/matrix"
)

// DistanceFunc is the caller's distance oracle over node payloads.
// It must return a finite, non-negative number; anything else is reported as
// ErrInvalidDistance when the pair is first looked up. Distances are assumed
// symmetric: only one direction of each pair is ever computed.
type DistanceFunc[P any] func(a, b P) float64

// Problem is the input of a colony.
type Problem[L comparable, P any] struct {
	// Nodes lists the points; a node's index is its position here.
	Nodes []Node[L, P]
	// Distance is the oracle consulted (at most once per pair) through the cache.
	Distance DistanceFunc[P]
	// Start is the origin label of every tour; nil selects Nodes[0].
	Start *L
}

// Result is the outcome of a run.
type Result[L comparable] struct {
	// Tour is the best tour as caller-facing labels, starting at the origin.
	Tour []L
	// Indices is the same tour as node indices.
	Indices []int
	// Length is the total distance along Tour.
	Length float64
	// Found is false when no tour was completed (Iterations == 0).
	Found bool
	// Iterations is the number of completed iterations.
	Iterations int
	// BestIteration is the zero-based iteration that produced Tour.
	BestIteration int
}

// incumbent is the best tour seen so far; length only ever decreases.
type incumbent struct {
	route     []int
	length    float64
	iteration int
	set       bool
}

// Colony runs Ant Colony Optimization over a Problem.
// A Colony is not safe for concurrent use; Run parallelises internally.
type Colony[L comparable, P any] struct {
	opts     Options
	index    *nodeIndex[L]
	payloads []P
	oracle   DistanceFunc[P]

	start int
	nodes []int // 0..n-1, the node set handed to every ant

	dist *distanceCache
	pher *pheromoneMap
	ants []*Ant

	firstPass bool
	iteration int
	best      incumbent

	log *log.Logger
	obs Observer
}

// New validates opts and p, allocates the tables and creates the first-pass ants.
//
// Errors: any Options.Validate error, ErrNoNodes, ErrTooFewNodes,
// ErrNilDistance, ErrDuplicateLabel, ErrUnknownStart.
//
// Complexity: O(n² + AntCount·n).
func New[L comparable, P any](p Problem[L, P], opts Options) (*Colony[L, P], error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	switch len(p.Nodes) {
	case 0:
		return nil, ErrNoNodes
	case 1:
		return nil, ErrTooFewNodes
	}
	if p.Distance == nil {
		return nil, ErrNilDistance
	}

	index, err := newNodeIndex(p.Nodes)
	if err != nil {
		return nil, err
	}
	start := 0
	if p.Start != nil {
		var ok bool
		if start, ok = index.indexOf(*p.Start); !ok {
			return nil, fmt.Errorf("start %v: %w", *p.Start, ErrUnknownStart)
		}
	}

	n := index.len()
	c := &Colony[L, P]{
		opts:      opts,
		index:     index,
		payloads:  make([]P, n),
		oracle:    p.Distance,
		start:     start,
		nodes:     make([]int, n),
		firstPass: true,
		log:       opts.Logger,
		obs:       opts.Observer,
	}
	for i, node := range p.Nodes {
		c.payloads[i] = node.Payload
		c.nodes[i] = i
	}

	if c.dist, err = newDistanceCache(n, c.lookup); err != nil {
		return nil, err
	}
	if c.pher, err = newPheromoneMap(n, opts.Evaporation, opts.Deposit); err != nil {
		return nil, err
	}
	if err = c.resetAnts(); err != nil {
		return nil, err
	}

	return c, nil
}

// Solve is New followed by Run.
func Solve[L comparable, P any](p Problem[L, P], opts Options) (Result[L], error) {
	return SolveContext(context.Background(), p, opts)
}

// SolveContext is New followed by RunContext.
func SolveContext[L comparable, P any](ctx context.Context, p Problem[L, P], opts Options) (Result[L], error) {
	c, err := New(p, opts)
	if err != nil {
		return Result[L]{}, err
	}

	return c.RunContext(ctx)
}

// lookup calls the oracle on the payloads behind indices i and j.
func (c *Colony[L, P]) lookup(i, j int) float64 {
	return c.oracle(c.payloads[i], c.payloads[j])
}

// getDistance is the cached, symmetric distance between node indices.
func (c *Colony[L, P]) getDistance(i, j int) (float64, error) {
	return c.dist.get(i, j)
}

// resetAnts creates AntCount ants on the first call and reinitialises them
// in place afterwards, each with the current first-pass flag.
//
// Complexity: O(AntCount·n).
func (c *Colony[L, P]) resetAnts() error {
	if c.ants == nil {
		c.ants = make([]*Ant, c.opts.AntCount)
		for k := range c.ants {
			a, err := NewAnt(c.start, c.nodes, AntConfig{
				Alpha:      c.opts.Alpha,
				Beta:       c.opts.Beta,
				Pheromones: c.pher.tau,
				Distance:   c.getDistance,
				Rand:       antRNG(c.opts.Seed, k),
				ZeroPolicy: c.opts.ZeroPolicy,
			}, c.firstPass)
			if err != nil {
				return fmt.Errorf("ant %d: %w", k, err)
			}
			c.ants[k] = a
		}
		return nil
	}

	for k, a := range c.ants {
		if err := a.Reset(c.start, c.nodes, c.firstPass); err != nil {
			return fmt.Errorf("ant %d: %w", k, err)
		}
	}

	return nil
}

// Run executes the remaining iterations and returns the incumbent.
// With Iterations == 0 the result has Found == false and no error.
// Any error aborts the run; the colony must not be reused afterwards.
func (c *Colony[L, P]) Run() (Result[L], error) {
	return c.RunContext(context.Background())
}

// RunContext is Run that also stops between iterations once ctx is done,
// returning ctx's error wrapped with the iteration it interrupted.
func (c *Colony[L, P]) RunContext(ctx context.Context) (Result[L], error) {
	began := time.Now()
	for c.iteration < c.opts.Iterations {
		if err := ctx.Err(); err != nil {
			return Result[L]{}, fmt.Errorf("iteration %d: %w", c.iteration, err)
		}
		if err := c.step(); err != nil {
			return Result[L]{}, fmt.Errorf("iteration %d: %w", c.iteration, err)
		}
	}

	res := c.result()
	c.log.Info("colony finished",
		"iterations", res.Iterations,
		"found", res.Found,
		"best", res.Length,
		"lookups", c.dist.misses.Load(),
		"elapsed", time.Since(began).Round(time.Millisecond))
	c.log.Debug("final pheromones", "tau", c.pher.tau)

	return res, nil
}

// step runs one full iteration (see the package comment).
func (c *Colony[L, P]) step() error {
	if err := c.runAnts(); err != nil {
		return err
	}

	var (
		iterBest = math.Inf(1)
		improved bool
	)
	for k, a := range c.ants {
		route, ok := a.Route()
		if !ok {
			return fmt.Errorf("ant %d: %w", k, ErrIncompleteTour)
		}
		length, _ := a.DistanceTraveled()

		if err := c.accumulateDeposit(route, length); err != nil {
			return fmt.Errorf("ant %d: %w", k, err)
		}
		iterBest = min(iterBest, length)
		if c.offer(k, route, length) {
			improved = true
		}
	}

	if err := c.updatePheromoneMap(); err != nil {
		return err
	}
	c.firstPass = false
	if err := c.resetAnts(); err != nil {
		return err
	}
	c.pher.resetPending()

	stats := IterationStats{
		Iteration:      c.iteration,
		IterationBest:  iterBest,
		BestLength:     c.best.length,
		Improved:       improved,
		PheromoneTotal: c.pher.tau.Sum(),
	}
	c.log.Debug("iteration",
		"n", stats.Iteration,
		"iteration_best", stats.IterationBest,
		"best", stats.BestLength,
		"improved", stats.Improved)
	c.obs.OnIteration(stats)
	c.iteration++

	return nil
}

// runAnts drives every ant to completion. With more than one worker the ants
// run on a bounded errgroup; the first failure in ant index order is returned.
func (c *Colony[L, P]) runAnts() error {
	workers := c.opts.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	if workers <= 1 || len(c.ants) == 1 {
		for k, a := range c.ants {
			if err := a.Run(); err != nil {
				return fmt.Errorf("ant %d: %w", k, err)
			}
		}
		return nil
	}

	errs := make([]error, len(c.ants))
	var g errgroup.Group
	g.SetLimit(workers)
	for k, a := range c.ants {
		g.Go(func() error {
			errs[k] = a.Run()
			return nil
		})
	}
	_ = g.Wait()

	for k, err := range errs {
		if err != nil {
			return fmt.Errorf("ant %d: %w", k, err)
		}
	}

	return nil
}

// accumulateDeposit lays Q/L along route into Δτ.
func (c *Colony[L, P]) accumulateDeposit(route []int, length float64) error {
	return c.pher.deposit(route, length)
}

// updatePheromoneMap applies τ ← (1−ρ)·τ + Δτ.
func (c *Colony[L, P]) updatePheromoneMap() error {
	return c.pher.update()
}

// offer replaces the incumbent when length is strictly shorter (or when no
// incumbent exists yet). It reports whether a replacement happened.
func (c *Colony[L, P]) offer(ant int, route []int, length float64) bool {
	if c.best.set && !(length < c.best.length) {
		return false
	}

	imp := Improvement{
		Iteration: c.iteration,
		Ant:       ant,
		Length:    length,
		Previous:  c.best.length,
		First:     !c.best.set,
	}
	c.best = incumbent{route: route, length: length, iteration: c.iteration, set: true}
	c.log.Debug("improved", "iteration", imp.Iteration, "ant", imp.Ant, "length", imp.Length)
	c.obs.OnImprovement(imp)

	return true
}

// result snapshots the incumbent as a Result.
func (c *Colony[L, P]) result() Result[L] {
	if !c.best.set {
		return Result[L]{Iterations: c.iteration}
	}
	indices := make([]int, len(c.best.route))
	copy(indices, c.best.route)

	return Result[L]{
		Tour:          c.index.translate(indices),
		Indices:       indices,
		Length:        c.best.length,
		Found:         true,
		Iterations:    c.iteration,
		BestIteration: c.best.iteration,
	}
}

// Best returns the incumbent so far; ok is false before any tour completed.
func (c *Colony[L, P]) Best() (Result[L], bool) {
	r := c.result()
	return r, r.Found
}

// Len returns the number of nodes.
func (c *Colony[L, P]) Len() int { return c.index.len() }

// Start returns the origin index shared by every ant.
func (c *Colony[L, P]) Start() int { return c.start }

// Pheromone returns τ(i,j).
func (c *Colony[L, P]) Pheromone(i, j int) (float64, error) {
	return c.pher.tau.At(i, j)
}

// Pheromones returns a copy of τ that later iterations do not touch.
//
// Complexity: O(n²).
func (c *Colony[L, P]) Pheromones() *matrix.Dense {
	return c.pher.tau.Clone().(*matrix.Dense)
}

// Distance returns the cached distance between node indices i and j,
// consulting the oracle on first use.
func (c *Colony[L, P]) Distance(i, j int) (float64, error) {
	return c.getDistance(i, j)
}

// Label returns the caller-facing label of node index i.
func (c *Colony[L, P]) Label(i int) (L, error) {
	var zero L
	if i < 0 || i >= c.index.len() {
		return zero, fmt.Errorf("label %d: %w", i, ErrNodeOutOfRange)
	}

	return c.index.labels[i], nil
}
