package server

import (
	"errors"
	"fmt"
)

var (
	// ErrTooManyNodes is returned when a request exceeds Options.MaxNodes.
	ErrTooManyNodes = errors.New("server: too many nodes")

	// ErrTooManyAnts is returned when a request exceeds Options.MaxAnts.
	ErrTooManyAnts = errors.New("server: too many ants")

	// ErrTooManyIterations is returned when a request exceeds Options.MaxIterations.
	ErrTooManyIterations = errors.New("server: too many iterations")
)

// overLimit wraps a limit sentinel with the requested value and the bound.
func overLimit(what string, n, limit int, err error) error {
	return fmt.Errorf("%d %s, limit %d: %w", n, what, limit, err)
}
