package aco

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func lineColony(t *testing.T, opts Options) *Colony[int, float64] {
	t.Helper()
	c, err := New(Problem[int, float64]{
		Nodes: []Node[int, float64]{
			{Label: 0, Payload: 0}, {Label: 1, Payload: 1}, {Label: 2, Payload: 2}, {Label: 3, Payload: 4},
		},
		Distance: func(a, b float64) float64 { return math.Abs(a - b) },
	}, opts)
	require.NoError(t, err)
	return c
}

// TestStep_OneIterationLifecycle drives a single iteration and checks the
// state the next iteration starts from.
func TestStep_OneIterationLifecycle(t *testing.T) {
	opts := DefaultOptions()
	opts.AntCount = 5
	opts.Iterations = 3
	opts.ZeroPolicy = UniformOnZero
	c := lineColony(t, opts)

	require.True(t, c.firstPass)
	for _, a := range c.ants {
		require.True(t, a.FirstPass())
	}

	require.NoError(t, c.step())
	require.Equal(t, 1, c.iteration)
	require.False(t, c.firstPass)
	require.True(t, c.best.set)
	require.Zero(t, c.pher.pending.Sum())
	for _, a := range c.ants {
		require.False(t, a.Complete())
		require.False(t, a.FirstPass())
		require.Equal(t, c.start, a.Location())
	}
	// Five tours of three edges each were laid on a zeroed table (ρ irrelevant).
	require.Positive(t, c.pher.tau.Sum())

	res, err := c.Run()
	require.NoError(t, err)
	require.Equal(t, 3, res.Iterations)
}

// TestAccumulateAndUpdate checks the manual deposit/update pair.
func TestAccumulateAndUpdate(t *testing.T) {
	opts := DefaultOptions()
	opts.Evaporation = 0.5
	opts.Deposit = 8
	c := lineColony(t, opts)

	require.NoError(t, c.pher.tau.SetSym(0, 1, 4))
	require.NoError(t, c.accumulateDeposit([]int{0, 1, 2, 3}, 4))
	require.NoError(t, c.updatePheromoneMap())

	v, err := c.Pheromone(1, 0)
	require.NoError(t, err)
	require.Equal(t, 0.5*4+2, v)
	v, err = c.Pheromone(3, 2)
	require.NoError(t, err)
	require.Equal(t, 2.0, v)

	require.ErrorIs(t, c.accumulateDeposit([]int{0, 1}, 0), ErrDegenerateTour)
}

// TestOffer_StrictImprovementOnly keeps the first of two equal tours.
func TestOffer_StrictImprovementOnly(t *testing.T) {
	c := lineColony(t, DefaultOptions())

	require.True(t, c.offer(0, []int{0, 2, 1, 3}, 6))
	require.False(t, c.offer(1, []int{0, 1, 2, 3}, 6))
	require.Equal(t, []int{0, 2, 1, 3}, c.best.route)
	require.False(t, c.offer(2, []int{0, 3, 2, 1}, 7))
	require.True(t, c.offer(3, []int{0, 1, 2, 3}, 4))
	require.Equal(t, 4.0, c.best.length)
}
