// SPDX-License-Identifier: MIT
package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kvissel/sparsix/sparse"
	"github.com/kvissel/sparsix/sparsity"
	"github.com/kvissel/sparsix/sym"
)

// stairPattern builds a deterministic sparse fixture: position (i, j) is
// nonzero when (i + 2j) % 3 == 0, which gives uneven columns and keeps
// every kernel path (empty columns included) in play.
func stairPattern(t *testing.T, rows, cols int) *sparsity.Pattern {
	t.Helper()
	var coords []sparsity.Coord
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if (i+2*j)%3 == 0 {
				coords = append(coords, sparsity.Coord{Row: i, Col: j})
			}
		}
	}
	p, err := sparsity.New(rows, cols, coords)
	require.NoError(t, err)
	return p
}

// stairNumeric pairs the stair pattern with values 1, 2, 3, … in
// column-major nonzero order.
func stairNumeric(t *testing.T, rows, cols int) *sparse.Matrix {
	t.Helper()
	pat := stairPattern(t, rows, cols)
	vals := make([]float64, pat.NNZ())
	for k := range vals {
		vals[k] = float64(k + 1)
	}
	m, err := sparse.New(pat, vals)
	require.NoError(t, err)
	return m
}

// stairSym pairs the stair pattern with fresh symbolic primitives.
func stairSym(t *testing.T, rows, cols int) *sym.Matrix {
	t.Helper()
	m, err := sym.Symbols("s", stairPattern(t, rows, cols))
	require.NoError(t, err)
	return m
}

// denseNumeric builds a structurally dense numeric fixture from row-major
// data.
func denseNumeric(t *testing.T, rows, cols int, data ...float64) *sparse.Matrix {
	t.Helper()
	m, err := sparse.FromDense(rows, cols, data)
	require.NoError(t, err)
	return m
}

// atNum reads a numeric element, failing the test on access errors.
func atNum(t *testing.T, m *sparse.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)
	return v
}
