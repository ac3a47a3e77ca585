// SPDX-License-Identifier: MIT
package sym_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kvissel/sparsix/sparsity"
	"github.com/kvissel/sparsix/sym"
)

func TestSymCatSplitRoundTrips(t *testing.T) {
	t.Parallel()

	pat, err := sparsity.New(3, 4, []sparsity.Coord{
		{Row: 0, Col: 0}, {Row: 2, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 3},
	})
	require.NoError(t, err)
	src := mustSymbols(t, "x", pat)

	t.Run("horzsplit then horzcat", func(t *testing.T) {
		t.Parallel()
		pieces, err := src.RawHorzsplit([]int{0, 2, 4})
		require.NoError(t, err)
		back, err := src.RawHorzcat(pieces)
		require.NoError(t, err)
		require.True(t, src.Equal(back), "\n%s\nvs\n%s", src, back)
	})

	t.Run("vertsplit then vertcat", func(t *testing.T) {
		t.Parallel()
		pieces, err := src.RawVertsplit([]int{0, 1, 3})
		require.NoError(t, err)
		back, err := src.RawVertcat(pieces)
		require.NoError(t, err)
		require.True(t, src.Equal(back))
	})

	t.Run("nil operand", func(t *testing.T) {
		t.Parallel()
		_, err := src.RawHorzcat([]*sym.Matrix{src, nil})
		require.ErrorIs(t, err, sym.ErrNilMatrix)
	})
}

func TestSymBlkdiag(t *testing.T) {
	t.Parallel()

	a := mustEntries(t, 1, 1, sym.Entry{Row: 0, Col: 0, Val: sym.Var("a")})
	b := mustEntries(t, 2, 1, sym.Entry{Row: 1, Col: 0, Val: sym.Var("b")})

	got, err := a.RawBlkdiag([]*sym.Matrix{a, b})
	require.NoError(t, err)
	require.Equal(t, 3, got.Rows())
	require.Equal(t, 2, got.Cols())
	require.Equal(t, 2, got.NNZ())

	e, err := got.At(0, 0)
	require.NoError(t, err)
	require.True(t, e.Equal(sym.Var("a")))
	e, err = got.At(2, 1)
	require.NoError(t, err)
	require.True(t, e.Equal(sym.Var("b")))
	e, err = got.At(0, 1)
	require.NoError(t, err)
	require.True(t, e.Equal(sym.Const(0)), "off-block positions are structural zeros")
}

func TestSymTranspose(t *testing.T) {
	t.Parallel()

	m := mustEntries(t, 2, 3,
		sym.Entry{Row: 0, Col: 0, Val: sym.Var("a")},
		sym.Entry{Row: 1, Col: 0, Val: sym.Var("b")},
		sym.Entry{Row: 0, Col: 2, Val: sym.Var("c")},
	)
	tr := m.RawTranspose()
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())

	e, err := tr.At(0, 1)
	require.NoError(t, err)
	require.True(t, e.Equal(sym.Var("b")))
	e, err = tr.At(2, 0)
	require.NoError(t, err)
	require.True(t, e.Equal(sym.Var("c")))

	require.True(t, m.Equal(tr.RawTranspose()), "transpose is an involution")
}

func TestSymRawMul(t *testing.T) {
	t.Parallel()

	a, b, c := sym.Var("a"), sym.Var("b"), sym.Var("c")
	d, e, f := sym.Var("d"), sym.Var("e"), sym.Var("f")

	// X = [a b; 0 c], Y = [d 0; e f], both with one structural zero.
	x := mustEntries(t, 2, 2,
		sym.Entry{Row: 0, Col: 0, Val: a},
		sym.Entry{Row: 0, Col: 1, Val: b},
		sym.Entry{Row: 1, Col: 1, Val: c},
	)
	y := mustEntries(t, 2, 2,
		sym.Entry{Row: 0, Col: 0, Val: d},
		sym.Entry{Row: 1, Col: 0, Val: e},
		sym.Entry{Row: 1, Col: 1, Val: f},
	)

	got, err := x.RawMul(y)
	require.NoError(t, err)

	wantDense, err := sparsity.Dense(2, 2)
	require.NoError(t, err)
	require.True(t, got.Sparsity().Equal(wantDense))

	want := map[[2]int]sym.Expr{
		{0, 0}: sym.Add(sym.Mul(a, d), sym.Mul(b, e)),
		{1, 0}: sym.Mul(c, e),
		{0, 1}: sym.Mul(b, f),
		{1, 1}: sym.Mul(c, f),
	}
	for rc, w := range want {
		g, err := got.At(rc[0], rc[1])
		require.NoError(t, err)
		require.Truef(t, g.Equal(w), "(%d,%d): got %s, want %s", rc[0], rc[1], g, w)
	}

	t.Run("identity folds away", func(t *testing.T) {
		t.Parallel()
		id := mustSymbolsIdentity(t, 2)
		prod, err := x.RawMul(id)
		require.NoError(t, err)
		for _, rc := range [][2]int{{0, 0}, {0, 1}, {1, 1}} {
			g, err := prod.At(rc[0], rc[1])
			require.NoError(t, err)
			w, err := x.At(rc[0], rc[1])
			require.NoError(t, err)
			require.Truef(t, g.Equal(w), "(%d,%d): got %s, want %s", rc[0], rc[1], g, w)
		}
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()
		threeWide, err := sym.Zeros(3, 2)
		require.NoError(t, err)
		_, err = x.RawMul(threeWide)
		require.ErrorIs(t, err, sparsity.ErrShapeMismatch)
		_, err = x.RawMul(nil)
		require.ErrorIs(t, err, sym.ErrNilMatrix)
	})
}

// mustSymbolsIdentity builds the n×n symbolic identity with Const(1) on the
// diagonal.
func mustSymbolsIdentity(t *testing.T, n int) *sym.Matrix {
	t.Helper()
	pat, err := sparsity.Identity(n)
	require.NoError(t, err)
	el := make([]sym.Expr, n)
	for k := range el {
		el[k] = sym.Const(1)
	}
	m, err := sym.New(pat, el)
	require.NoError(t, err)
	return m
}

func TestSymRawMulAdd(t *testing.T) {
	t.Parallel()

	x := mustSymbols(t, "x", mustDensePat(t, 2, 2))
	y := mustSymbols(t, "y", mustDensePat(t, 2, 2))

	t.Run("masked accumulate keeps target pattern", func(t *testing.T) {
		t.Parallel()
		z := mustSymbols(t, "z", diagPattern(t, 2))
		got, err := x.RawMulAdd(y, z)
		require.NoError(t, err)
		require.True(t, got.Sparsity().Equal(z.Sparsity()))

		// (0,0) receives z_0 + x_0·y_0 + x_2·y_1.
		e, err := got.At(0, 0)
		require.NoError(t, err)
		want := sym.Add(sym.Var("z_0"),
			sym.Add(sym.Mul(sym.Var("x_0"), sym.Var("y_0")), sym.Mul(sym.Var("x_2"), sym.Var("y_1"))))
		require.Truef(t, e.Equal(want), "got %s, want %s", e, want)
	})

	t.Run("positions without terms keep their node", func(t *testing.T) {
		t.Parallel()
		empty, err := sym.Zeros(2, 2)
		require.NoError(t, err)
		z := mustSymbols(t, "z", diagPattern(t, 2))
		got, err := empty.RawMulAdd(y, z)
		require.NoError(t, err)
		require.True(t, got.Equal(z), "no product terms, target unchanged:\n%s", got)
	})

	t.Run("shape violation", func(t *testing.T) {
		t.Parallel()
		z := mustSymbols(t, "z", diagPattern(t, 3))
		_, err := x.RawMulAdd(y, z)
		require.ErrorIs(t, err, sparsity.ErrShapeMismatch)
	})
}

func mustDensePat(t *testing.T, rows, cols int) *sparsity.Pattern {
	t.Helper()
	p, err := sparsity.Dense(rows, cols)
	require.NoError(t, err)
	return p
}
