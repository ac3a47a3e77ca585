// SPDX-License-Identifier: MIT
package sparsity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kvissel/sparsix/sparsity"
)

func TestNew_Validation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		rows   int
		cols   int
		coords []sparsity.Coord
		want   error
	}{
		{"negative rows", -1, 3, nil, sparsity.ErrBadShape},
		{"negative cols", 3, -1, nil, sparsity.ErrBadShape},
		{"row out of range", 2, 2, []sparsity.Coord{{Row: 2, Col: 0}}, sparsity.ErrCoordOutOfRange},
		{"col out of range", 2, 2, []sparsity.Coord{{Row: 0, Col: 2}}, sparsity.ErrCoordOutOfRange},
		{"negative coord", 2, 2, []sparsity.Coord{{Row: -1, Col: 0}}, sparsity.ErrCoordOutOfRange},
		{"coord in empty shape", 0, 0, []sparsity.Coord{{Row: 0, Col: 0}}, sparsity.ErrCoordOutOfRange},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := sparsity.New(tc.rows, tc.cols, tc.coords)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNew_CoordsNormalized(t *testing.T) {
	t.Parallel()

	// Shuffled, duplicated input collapses to one canonical pattern.
	a, err := sparsity.New(3, 3, []sparsity.Coord{
		{Row: 2, Col: 1}, {Row: 0, Col: 0}, {Row: 2, Col: 1}, {Row: 1, Col: 2},
	})
	require.NoError(t, err)
	b := pat(t,
		"*..",
		"..*",
		".*.",
	)
	require.True(t, a.Equal(b), "shuffled + duplicated coords must normalize:\n%s\nvs\n%s", a, b)
	require.Equal(t, 3, a.NNZ())
}

func TestFromCCS(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		want := pat(t,
			"*.*",
			"**.",
		)
		got, err := sparsity.FromCCS(2, 3, []int{0, 2, 3, 4}, []int{0, 1, 1, 0})
		require.NoError(t, err)
		require.True(t, want.Equal(got))
	})

	tests := []struct {
		name   string
		rows   int
		cols   int
		colptr []int
		rowidx []int
		want   error
	}{
		{"negative shape", -1, 1, []int{0, 0}, nil, sparsity.ErrBadShape},
		{"short colptr", 2, 2, []int{0, 1}, []int{0}, sparsity.ErrBadShape},
		{"colptr not zero-led", 2, 1, []int{1, 1}, []int{0}, sparsity.ErrBadShape},
		{"colptr vs rowidx", 2, 1, []int{0, 2}, []int{0}, sparsity.ErrBadShape},
		{"decreasing colptr", 2, 2, []int{0, 1, 0}, nil, sparsity.ErrBadShape},
		{"row out of range", 2, 1, []int{0, 1}, []int{2}, sparsity.ErrCoordOutOfRange},
		{"unsorted rows", 3, 1, []int{0, 2}, []int{2, 0}, sparsity.ErrBadShape},
		{"duplicate row", 3, 1, []int{0, 2}, []int{1, 1}, sparsity.ErrBadShape},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := sparsity.FromCCS(tc.rows, tc.cols, tc.colptr, tc.rowidx)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestConstructors_Canned(t *testing.T) {
	t.Parallel()

	t.Run("dense", func(t *testing.T) {
		t.Parallel()
		d := mustDense(t, 2, 3)
		require.Equal(t, 6, d.NNZ())
		require.True(t, d.Equal(pat(t, "***", "***")))
	})
	t.Run("dense with zero dimension", func(t *testing.T) {
		t.Parallel()
		d := mustDense(t, 0, 4)
		require.Equal(t, 0, d.NNZ())
		require.Equal(t, 0, d.Rows())
		require.Equal(t, 4, d.Cols())
	})
	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		e := mustEmpty(t, 3, 2)
		require.Equal(t, 0, e.NNZ())
		require.False(t, e.Has(1, 1))
	})
	t.Run("identity", func(t *testing.T) {
		t.Parallel()
		id := mustIdentity(t, 3)
		require.True(t, id.Equal(pat(t,
			"*..",
			".*.",
			"..*",
		)))
	})
	t.Run("negative dimensions rejected", func(t *testing.T) {
		t.Parallel()
		_, err := sparsity.Dense(-1, 1)
		require.ErrorIs(t, err, sparsity.ErrBadShape)
		_, err = sparsity.Empty(1, -1)
		require.ErrorIs(t, err, sparsity.ErrBadShape)
		_, err = sparsity.Identity(-2)
		require.ErrorIs(t, err, sparsity.ErrBadShape)
	})
}

func TestAccessors(t *testing.T) {
	t.Parallel()
	p := pat(t,
		"*.*",
		".**",
		"...",
	)

	require.Equal(t, 3, p.Rows())
	require.Equal(t, 3, p.Cols())
	require.Equal(t, 4, p.NNZ())
	require.Same(t, p, p.Sparsity())

	// Column-major nonzero order: (0,0), (1,1), (0,2), (1,2).
	wantCoords := []sparsity.Coord{
		{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2},
	}
	require.Equal(t, wantCoords, p.Coords())
	for k, c := range wantCoords {
		require.Equal(t, c.Row, p.RowAt(k))
		got, ok := p.Index(c.Row, c.Col)
		require.True(t, ok)
		require.Equal(t, k, got)
	}

	start, end := p.ColRange(2)
	require.Equal(t, 2, start)
	require.Equal(t, 4, end)

	require.False(t, p.Has(2, 2), "structural zero")
	_, ok := p.Index(2, 2)
	require.False(t, ok)
	require.False(t, p.Has(-1, 0))
	require.False(t, p.Has(0, 3))
}

func TestEqualClone(t *testing.T) {
	t.Parallel()
	p := pat(t,
		"*.",
		".*",
	)

	require.False(t, p.Equal(pat(t, "*.", "*.")), "same shape, different support")
	require.False(t, p.Equal(mustEmpty(t, 2, 3)), "different shape")

	c := p.Clone()
	require.NotSame(t, p, c)
	require.True(t, p.Equal(c))
}

func TestPatternString(t *testing.T) {
	t.Parallel()
	p := pat(t,
		"*.",
		".*",
	)
	require.Equal(t, "2x2, nnz=2\n*.\n.*", p.String())

	e := mustEmpty(t, 0, 3)
	require.Equal(t, "0x3, nnz=0", e.String())
}
