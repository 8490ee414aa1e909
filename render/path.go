package render

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/antcolony/aco"
)

// ErrNoTour is returned when a result carries no tour.
var ErrNoTour = errors.New("render: result has no tour")

// Path is a tour ready for drawing.
type Path struct {
	// Stops are the node labels in visiting order.
	Stops []string
	// Legs[k] is the distance from Stops[k] to Stops[k+1].
	Legs []float64
	// Length is the sum of Legs.
	Length float64
}

// FromColony builds a Path from a finished colony's result, reading leg
// lengths back from the colony's distance cache.
func FromColony[L comparable, P any](c *aco.Colony[L, P], res aco.Result[L]) (Path, error) {
	if !res.Found || len(res.Indices) == 0 {
		return Path{}, ErrNoTour
	}

	p := Path{
		Stops:  make([]string, len(res.Tour)),
		Legs:   make([]float64, 0, len(res.Indices)-1),
		Length: res.Length,
	}
	for k, l := range res.Tour {
		p.Stops[k] = fmt.Sprint(l)
	}
	for k := 0; k+1 < len(res.Indices); k++ {
		d, err := c.Distance(res.Indices[k], res.Indices[k+1])
		if err != nil {
			return Path{}, err
		}
		p.Legs = append(p.Legs, d)
	}

	return p, nil
}
