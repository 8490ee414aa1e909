package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/antcolony/matrix"
	"github.com/stretchr/testify/require"
)

// TestSetSymWritesBothCells verifies the mirror write and its guards.
func TestSetSymWritesBothCells(t *testing.T) {
	m, err := matrix.NewSquare(3)
	require.NoError(t, err)

	require.NoError(t, m.SetSym(0, 2, 4.5))
	a, _ := m.At(0, 2)
	b, _ := m.At(2, 0)
	require.Equal(t, 4.5, a)
	require.Equal(t, 4.5, b)

	require.ErrorIs(t, m.SetSym(0, 3, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetSym(1, 2, math.NaN()), matrix.ErrNaNInf)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, rect.SetSym(0, 1, 1), matrix.ErrNonSquare)
}

// TestAddSymAccumulates checks that repeated additions sum on both cells and
// that the diagonal is only incremented once per call.
func TestAddSymAccumulates(t *testing.T) {
	m, err := matrix.NewSquare(3)
	require.NoError(t, err)

	require.NoError(t, m.AddSym(0, 1, 2))
	require.NoError(t, m.AddSym(1, 0, 3)) // opposite direction, same edge
	require.NoError(t, m.AddSym(2, 2, 1))

	a, _ := m.At(0, 1)
	b, _ := m.At(1, 0)
	d, _ := m.At(2, 2)
	require.Equal(t, 5.0, a)
	require.Equal(t, 5.0, b)
	require.Equal(t, 1.0, d)
	require.NoError(t, matrix.ValidateSymmetric(m, 0))
}

// TestBlendDecayThenAdd pins the exact (keep·old + add) arithmetic.
func TestBlendDecayThenAdd(t *testing.T) {
	dst, err := matrix.NewSquare(2)
	require.NoError(t, err)
	require.NoError(t, dst.Fill(1))
	src, err := matrix.NewSquare(2)
	require.NoError(t, err)
	require.NoError(t, src.SetSym(0, 1, 0.25))

	require.NoError(t, matrix.Blend(dst, 0.6, src))

	v, _ := dst.At(0, 0)
	require.Equal(t, 0.6, v)
	v, _ = dst.At(0, 1)
	require.Equal(t, 0.6+0.25, v)

	other, err := matrix.NewSquare(3)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.Blend(dst, 0.5, other), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.Blend(nil, 0.5, src), matrix.ErrNilMatrix)
}
