package geo

import "errors"

// ErrInvalidPoint is returned for coordinates outside the valid degree ranges.
var ErrInvalidPoint = errors.New("geo: coordinates out of range")
