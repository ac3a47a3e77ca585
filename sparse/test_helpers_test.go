// SPDX-License-Identifier: MIT
package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kvissel/sparsix/sparse"
	"github.com/kvissel/sparsix/sparsity"
)

// mustDenseM builds a structurally dense matrix from row-major data.
func mustDenseM(t *testing.T, rows, cols int, data ...float64) *sparse.Matrix {
	t.Helper()
	m, err := sparse.FromDense(rows, cols, data)
	require.NoError(t, err)
	return m
}

// mustTriplets builds a matrix from coordinate entries.
func mustTriplets(t *testing.T, rows, cols int, entries ...sparse.Entry) *sparse.Matrix {
	t.Helper()
	m, err := sparse.FromTriplets(rows, cols, entries)
	require.NoError(t, err)
	return m
}

// mustZeros builds an all-structural-zero matrix.
func mustZeros(t *testing.T, rows, cols int) *sparse.Matrix {
	t.Helper()
	m, err := sparse.Zeros(rows, cols)
	require.NoError(t, err)
	return m
}

// toDense expands a matrix into a row-major grid through At, exercising the
// public read path.
func toDense(t *testing.T, m *sparse.Matrix) [][]float64 {
	t.Helper()
	g := make([][]float64, m.Rows())
	for i := range g {
		g[i] = make([]float64, m.Cols())
		for j := range g[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			g[i][j] = v
		}
	}
	return g
}

// denseMul is the brute-force reference product of two row-major grids.
func denseMul(a, b [][]float64) [][]float64 {
	rows := len(a)
	inner := len(b)
	cols := 0
	if inner > 0 {
		cols = len(b[0])
	}
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			for k := 0; k < inner; k++ {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return out
}

// randomMatrix draws a deterministic pseudo-random sparse matrix.
func randomMatrix(t *testing.T, rng *rand.Rand, rows, cols int, density float64) *sparse.Matrix {
	t.Helper()
	var entries []sparse.Entry
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if rng.Float64() < density {
				entries = append(entries, sparse.Entry{Row: i, Col: j, Val: float64(rng.Intn(19) - 9)})
			}
		}
	}
	return mustTriplets(t, rows, cols, entries...)
}

// requireSameDense asserts element-wise equality of the dense expansions.
func requireSameDense(t *testing.T, want [][]float64, got *sparse.Matrix) {
	t.Helper()
	require.Equal(t, len(want), got.Rows(), "row count")
	gd := toDense(t, got)
	require.Equal(t, want, gd, "dense expansion\n%s", got)
}

// coordsOf is a shorthand for building pattern coordinates in tests.
func coordsOf(rcs ...[2]int) []sparsity.Coord {
	out := make([]sparsity.Coord, len(rcs))
	for i, rc := range rcs {
		out[i] = sparsity.Coord{Row: rc[0], Col: rc[1]}
	}
	return out
}
