// Package aco - lazily populated, symmetric distance cache.
//
// The cache sits between ants and the caller's distance function. Each pair
// is computed at most once per direction-agnostic cell; the first computed
// value is written to (i,j) and (j,i) together, so the table is symmetric on
// every write even if the underlying function is not.
//
// Concurrency:
//   - Reads take an RLock; misses call the oracle outside the lock and then
//     fill the cell under the write lock. Two ants missing the same cell at
//     once may both call the oracle; the first fill wins and both observe the
//     stored value.
package aco

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/antcolony/matrix"
)

// distanceCache memoises a pairwise distance function over node indices.
type distanceCache struct {
	mu     sync.RWMutex
	n      int
	values *matrix.Dense
	known  []bool // row-major, len n*n; true once (i,j) is filled

	lookup func(i, j int) float64
	misses atomic.Int64
}

// newDistanceCache allocates an n×n cache in front of lookup.
// Complexity: O(n²).
func newDistanceCache(n int, lookup func(i, j int) float64) (*distanceCache, error) {
	values, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}

	return &distanceCache{
		n:      n,
		values: values,
		known:  make([]bool, n*n),
		lookup: lookup,
	}, nil
}

// get returns the cached distance, computing and storing it on first use.
//
// Errors: ErrNodeOutOfRange; ErrInvalidDistance when the oracle result is
// NaN, ±Inf or negative (nothing is cached in that case).
//
// Complexity: O(1) amortised plus one oracle call per unknown pair.
func (c *distanceCache) get(i, j int) (float64, error) {
	if i < 0 || i >= c.n || j < 0 || j >= c.n {
		return 0, fmt.Errorf("distance(%d,%d): %w", i, j, ErrNodeOutOfRange)
	}

	c.mu.RLock()
	if c.known[i*c.n+j] {
		v, _ := c.values.At(i, j)
		c.mu.RUnlock()
		return v, nil
	}
	c.mu.RUnlock()

	d := c.lookup(i, j)
	c.misses.Add(1)
	if err := checkDistance(i, j, d); err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.known[i*c.n+j] {
		if err := c.values.SetSym(i, j, d); err != nil {
			return 0, err
		}
		c.known[i*c.n+j] = true
		c.known[j*c.n+i] = true
	}
	v, _ := c.values.At(i, j)

	return v, nil
}

// checkDistance enforces the oracle contract: finite and non-negative.
func checkDistance(i, j int, d float64) error {
	if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		return fmt.Errorf("distance(%d,%d)=%g: %w", i, j, d, ErrInvalidDistance)
	}

	return nil
}
