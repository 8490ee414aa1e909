// Package aco - RNG utilities shared by the colony and its ants.
//
// This file centralizes deterministic random generation.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms and worker counts.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Injection: ants depend on the small Random interface, so tests can script draws.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every ant owns its own stream,
//     created with deriveRNG during setup, never shared across goroutines.
package aco

import "math/rand"

// Random is the randomness an ant consumes.
//   - Float64 returns a uniform draw in [0,1) (the roulette toss).
//   - Intn returns a uniform index in [0,n) (first-pass choice).
//
// *math/rand.Rand satisfies it.
type Random interface {
	Float64() float64
	Intn(n int) int
}

var _ Random = (*rand.Rand)(nil)

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
// SplitMix64-style finalizer: small changes in inputs produce large,
// well-distributed output changes, so per-ant streams are uncorrelated.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// antRNG returns the stream owned by ant k of a colony seeded with seed.
// The stream depends only on (seed, k), never on scheduling, which keeps
// sequential and parallel runs identical.
//
// Complexity: O(1).
func antRNG(seed int64, k int) *rand.Rand {
	parent := seed
	if parent == 0 {
		parent = defaultRNGSeed
	}
	return rand.New(rand.NewSource(deriveSeed(parent, uint64(k))))
}
