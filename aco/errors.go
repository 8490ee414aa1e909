// SPDX-License-Identifier: MIT
// Package aco: sentinel error set.
//
// Every message is prefixed with "aco: ...". Context (coordinates, ant index,
// offending value) is attached with fmt.Errorf("...: %w", ErrX) at the
// detection site; callers match with errors.Is / errors.As.
//
// Taxonomy:
//   - configuration: surfaced by New/Validate, never retried;
//   - oracle contract: a distance that is NaN, ±Inf or negative, at lookup time;
//   - degenerate selection: all candidate attractiveness values are zero;
//   - degenerate deposit: a completed tour of zero length.

package aco

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Configuration errors.
var (
	// ErrInvalidAntCount is returned when AntCount < 1.
	ErrInvalidAntCount = errors.New("aco: ant count must be >= 1")

	// ErrInvalidAlpha is returned when Alpha is negative or not finite.
	ErrInvalidAlpha = errors.New("aco: alpha must be finite and >= 0")

	// ErrInvalidBeta is returned when Beta is below 1 or not finite.
	ErrInvalidBeta = errors.New("aco: beta must be finite and >= 1")

	// ErrInvalidEvaporation is returned when the evaporation coefficient is outside [0,1].
	ErrInvalidEvaporation = errors.New("aco: evaporation coefficient must be in [0,1]")

	// ErrInvalidDeposit is returned when the deposit constant is not a finite positive number.
	ErrInvalidDeposit = errors.New("aco: deposit constant must be finite and > 0")

	// ErrInvalidIterations is returned when Iterations < 0.
	ErrInvalidIterations = errors.New("aco: iteration count must be >= 0")

	// ErrInvalidWorkers is returned when Workers < 0.
	ErrInvalidWorkers = errors.New("aco: workers must be >= 0")

	// ErrInvalidZeroPolicy is returned for an unknown ZeroPolicy value.
	ErrInvalidZeroPolicy = errors.New("aco: unknown zero-attractiveness policy")

	// ErrNoNodes is returned when the node set is empty.
	ErrNoNodes = errors.New("aco: node set is empty")

	// ErrTooFewNodes is returned when the node set has a single node; a tour
	// over one node has zero length and cannot deposit pheromone.
	ErrTooFewNodes = errors.New("aco: at least two nodes are required")

	// ErrNilDistance is returned when no distance function is supplied.
	ErrNilDistance = errors.New("aco: distance function is nil")

	// ErrNilPheromones is returned when an ant is built without a pheromone table.
	ErrNilPheromones = errors.New("aco: pheromone table is nil")

	// ErrDuplicateLabel is returned when two nodes share a label.
	ErrDuplicateLabel = errors.New("aco: duplicate node label")

	// ErrUnknownStart is returned when the requested start label is not a node.
	ErrUnknownStart = errors.New("aco: start label not in node set")
)

// Runtime errors.
var (
	// ErrInvalidDistance reports an oracle-contract violation: the distance
	// function produced NaN, ±Inf or a negative value.
	ErrInvalidDistance = errors.New("aco: distance must be finite and >= 0")

	// ErrNodeOutOfRange is returned for a node index outside [0, N).
	ErrNodeOutOfRange = errors.New("aco: node index out of range")

	// ErrDuplicateNode is returned when an ant is given the same node twice.
	ErrDuplicateNode = errors.New("aco: duplicate node index")

	// ErrOriginNotInNodes is returned when an ant's origin is not part of its node set.
	ErrOriginNotInNodes = errors.New("aco: origin not in node set")

	// ErrTourComplete is returned by PickNext when no candidates remain.
	ErrTourComplete = errors.New("aco: tour already complete")

	// ErrIncompleteTour is returned when a result accessor is used before Run finished.
	ErrIncompleteTour = errors.New("aco: tour not complete")

	// ErrZeroAttractiveness is the unprocessable-state error raised when every
	// candidate has zero attractiveness. See ZeroAttractivenessError.
	ErrZeroAttractiveness = errors.New("aco: all candidate attractiveness values are zero")

	// ErrDegenerateTour is returned when a completed tour has zero length, so
	// Q/L would divide by zero.
	ErrDegenerateTour = errors.New("aco: zero-length tour cannot deposit pheromone")
)

// ZeroAttractivenessError carries the per-candidate attractiveness values
// (all zero) observed when selection failed.
type ZeroAttractivenessError struct {
	// From is the ant's current location.
	From int
	// Attractiveness maps each remaining candidate to its computed score.
	Attractiveness map[int]float64
}

// Error implements error.
func (e *ZeroAttractivenessError) Error() string {
	keys := make([]int, 0, len(e.Attractiveness))
	for k := range e.Attractiveness {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%d:%g", k, e.Attractiveness[k])
	}

	return fmt.Sprintf("%s (from %d; candidates {%s})",
		ErrZeroAttractiveness.Error(), e.From, strings.Join(parts, " "))
}

// Unwrap lets errors.Is(err, ErrZeroAttractiveness) match.
func (e *ZeroAttractivenessError) Unwrap() error { return ErrZeroAttractiveness }

// acoErrorf wraps a sentinel with a call-site tag.
func acoErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
