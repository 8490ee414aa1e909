// Package aco - colony options, defaults and validation.
//
// Design principles:
//   - Deterministic, side-effect free validation.
//   - No panics on user input - only sentinel errors from errors.go.
//   - Defaults mirror the classic Ant System parameterisation.
package aco

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
)

// ZeroPolicy selects what PickNext does when every remaining candidate has
// zero attractiveness (possible while some edges have never received pheromone).
type ZeroPolicy int

const (
	// FailOnZero aborts selection with *ZeroAttractivenessError.
	FailOnZero ZeroPolicy = iota
	// UniformOnZero falls back to a uniform choice among the remaining nodes.
	UniformOnZero
)

// String returns the policy name used in configuration files.
func (p ZeroPolicy) String() string {
	switch p {
	case FailOnZero:
		return "fail"
	case UniformOnZero:
		return "uniform"
	default:
		return "unknown"
	}
}

// ParseZeroPolicy maps "fail" / "uniform" to a ZeroPolicy.
// The empty string selects FailOnZero.
func ParseZeroPolicy(s string) (ZeroPolicy, error) {
	switch s {
	case "", "fail":
		return FailOnZero, nil
	case "uniform":
		return UniformOnZero, nil
	default:
		return FailOnZero, acoErrorf(s, ErrInvalidZeroPolicy)
	}
}

// Default parameter values.
const (
	DefaultAntCount    = 50
	DefaultAlpha       = 0.5
	DefaultBeta        = 1.0
	DefaultEvaporation = 0.4
	DefaultDeposit     = 1000.0
	DefaultIterations  = 80
)

// Options configures a Colony. Read-only for the duration of a run.
type Options struct {
	// AntCount is the number of ants per iteration (≥ 1).
	AntCount int

	// Alpha is the pheromone influence exponent (≥ 0).
	Alpha float64

	// Beta is the distance influence exponent (≥ 1).
	Beta float64

	// Evaporation is ρ ∈ [0,1]: each update keeps (1−ρ) of the old pheromone.
	Evaporation float64

	// Deposit is Q (> 0): an ant with tour length L lays Q/L on each edge it used.
	Deposit float64

	// Iterations is the number of colony iterations (≥ 0). Zero yields an empty result.
	Iterations int

	// Seed drives every random draw. 0 selects a fixed default seed.
	Seed int64

	// Workers bounds how many ants run concurrently within an iteration.
	// 1 runs ants sequentially; 0 uses GOMAXPROCS. Results do not depend on it.
	Workers int

	// ZeroPolicy decides the all-zero-attractiveness case. Default FailOnZero.
	ZeroPolicy ZeroPolicy

	// Logger receives debug-level iteration traces. nil discards them.
	Logger *log.Logger

	// Observer receives iteration and improvement events. nil uses NoopObserver.
	Observer Observer
}

// DefaultOptions returns the classic parameterisation:
// 50 ants, α=0.5, β=1, ρ=0.4, Q=1000, 80 iterations, sequential, fail on zero.
func DefaultOptions() Options {
	return Options{
		AntCount:    DefaultAntCount,
		Alpha:       DefaultAlpha,
		Beta:        DefaultBeta,
		Evaporation: DefaultEvaporation,
		Deposit:     DefaultDeposit,
		Iterations:  DefaultIterations,
		Workers:     1,
		ZeroPolicy:  FailOnZero,
	}
}

// Validate checks every field against its documented range.
// The first violation is returned, wrapped with the offending field name.
//
// Complexity: O(1).
func (o Options) Validate() error {
	if o.AntCount < 1 {
		return acoErrorf("AntCount", ErrInvalidAntCount)
	}
	if !finite(o.Alpha) || o.Alpha < 0 {
		return acoErrorf("Alpha", ErrInvalidAlpha)
	}
	if !finite(o.Beta) || o.Beta < 1 {
		return acoErrorf("Beta", ErrInvalidBeta)
	}
	// NaN fails both comparisons, so test the accepted range positively.
	if !(o.Evaporation >= 0 && o.Evaporation <= 1) {
		return acoErrorf("Evaporation", ErrInvalidEvaporation)
	}
	if !finite(o.Deposit) || o.Deposit <= 0 {
		return acoErrorf("Deposit", ErrInvalidDeposit)
	}
	if o.Iterations < 0 {
		return acoErrorf("Iterations", ErrInvalidIterations)
	}
	if o.Workers < 0 {
		return acoErrorf("Workers", ErrInvalidWorkers)
	}
	switch o.ZeroPolicy {
	case FailOnZero, UniformOnZero:
	default:
		return acoErrorf("ZeroPolicy", ErrInvalidZeroPolicy)
	}

	return nil
}

// withDefaults fills the ambient collaborators (logger, observer).
func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Observer == nil {
		o.Observer = NoopObserver{}
	}

	return o
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
