// SPDX-License-Identifier: MIT

// Package matrix - symmetric writes and the blend kernel.
//
// Purpose:
//   - Keep symmetric tables symmetric by construction: every write lands on
//     (i,j) and (j,i) in one call.
//   - Provide the in-place blend dst ← keep·dst + src used by decay/deposit
//     style update cycles, in one deterministic row-major pass.
//
// Complexity quicksheet:
//   - SetSym/AddSym: O(1); Blend: O(n²).

package matrix

import (
	"fmt"
	"math"
)

const (
	ctxSetSym = "SetSym"
	ctxAddSym = "AddSym"
	ctxBlend  = "Blend"
)

// SetSym assigns v to both (i,j) and (j,i).
// Either both cells are written or neither is.
//
// Errors: ErrNonSquare, ErrOutOfRange, ErrNaNInf.
//
// Complexity: O(1).
func (m *Dense) SetSym(i, j int, v float64) error {
	if m.r != m.c {
		return denseErrorf(ctxSetSym, i, j, ErrNonSquare)
	}
	a, err := m.indexOf(ctxSetSym, i, j)
	if err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSetSym, i, j, ErrNaNInf)
	}
	b := j*m.c + i // mirror offset; in range because the matrix is square

	m.data[a] = v
	m.data[b] = v

	return nil
}

// AddSym adds d to (i,j) and, when i != j, to (j,i).
// The diagonal receives d once.
//
// Errors: ErrNonSquare, ErrOutOfRange, ErrNaNInf (when d or a result is non-finite).
//
// Complexity: O(1).
func (m *Dense) AddSym(i, j int, d float64) error {
	if m.r != m.c {
		return denseErrorf(ctxAddSym, i, j, ErrNonSquare)
	}
	a, err := m.indexOf(ctxAddSym, i, j)
	if err != nil {
		return err
	}
	nv := m.data[a] + d
	if math.IsNaN(nv) || math.IsInf(nv, 0) {
		return denseErrorf(ctxAddSym, i, j, ErrNaNInf)
	}
	m.data[a] = nv
	if i != j {
		b := j*m.c + i
		m.data[b] += d
	}

	return nil
}

// Blend performs dst[i][j] ← keep·dst[i][j] + src[i][j] for every cell,
// including the diagonal, in row-major order.
// The scaled old value is computed before src is added, so src itself is
// never scaled.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (keep non-finite).
//
// Complexity: O(r*c), no allocations.
func Blend(dst *Dense, keep float64, src *Dense) error {
	if err := ValidateNotNil(dst); err != nil {
		return fmt.Errorf("%s: dst: %w", ctxBlend, err)
	}
	if err := ValidateNotNil(src); err != nil {
		return fmt.Errorf("%s: src: %w", ctxBlend, err)
	}
	if err := ValidateSameShape(dst, src); err != nil {
		return fmt.Errorf("%s: %w", ctxBlend, err)
	}
	if math.IsNaN(keep) || math.IsInf(keep, 0) {
		return fmt.Errorf("%s: %w", ctxBlend, ErrNaNInf)
	}

	var k int
	for k = range dst.data {
		dst.data[k] = keep*dst.data[k] + src.data[k]
	}

	return nil
}
