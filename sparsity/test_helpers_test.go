// SPDX-License-Identifier: MIT
package sparsity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kvissel/sparsix/sparsity"
)

// pat builds a pattern from row strings, '*' marking structural nonzeros.
// pat(t, "*..", ".*.") is the 2x3 pattern with nonzeros (0,0) and (1,1).
func pat(t *testing.T, rows ...string) *sparsity.Pattern {
	t.Helper()
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	var coords []sparsity.Coord
	for i, line := range rows {
		require.Len(t, line, c, "ragged pattern fixture")
		for j := 0; j < len(line); j++ {
			if line[j] == '*' {
				coords = append(coords, sparsity.Coord{Row: i, Col: j})
			}
		}
	}
	p, err := sparsity.New(r, c, coords)
	require.NoError(t, err)
	return p
}

// mustEmpty wraps sparsity.Empty for fixtures with zero dimensions.
func mustEmpty(t *testing.T, rows, cols int) *sparsity.Pattern {
	t.Helper()
	p, err := sparsity.Empty(rows, cols)
	require.NoError(t, err)
	return p
}

// mustDense wraps sparsity.Dense.
func mustDense(t *testing.T, rows, cols int) *sparsity.Pattern {
	t.Helper()
	p, err := sparsity.Dense(rows, cols)
	require.NoError(t, err)
	return p
}

// mustIdentity wraps sparsity.Identity.
func mustIdentity(t *testing.T, n int) *sparsity.Pattern {
	t.Helper()
	p, err := sparsity.Identity(n)
	require.NoError(t, err)
	return p
}

// boolGrid expands a pattern into a dense boolean grid for brute-force
// reference computations.
func boolGrid(p *sparsity.Pattern) [][]bool {
	g := make([][]bool, p.Rows())
	for i := range g {
		g[i] = make([]bool, p.Cols())
		for j := range g[i] {
			g[i][j] = p.Has(i, j)
		}
	}
	return g
}

// mulGrid is the brute-force structural product of two boolean grids.
func mulGrid(a, b [][]bool) [][]bool {
	rows := len(a)
	inner := len(b)
	cols := 0
	if inner > 0 {
		cols = len(b[0])
	}
	out := make([][]bool, rows)
	for i := range out {
		out[i] = make([]bool, cols)
		for j := 0; j < cols; j++ {
			for k := 0; k < inner; k++ {
				if a[i][k] && b[k][j] {
					out[i][j] = true
					break
				}
			}
		}
	}
	return out
}

// requireGrid asserts that a pattern matches a brute-force boolean grid.
func requireGrid(t *testing.T, want [][]bool, got *sparsity.Pattern) {
	t.Helper()
	require.Equal(t, len(want), got.Rows(), "row count")
	for i := range want {
		for j := range want[i] {
			require.Equalf(t, want[i][j], got.Has(i, j), "position (%d,%d)\n%s", i, j, got)
		}
	}
}
