// SPDX-License-Identifier: MIT
package sym

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kvissel/sparsix/sparsity"
)

// Entry is one triplet of a symbolic matrix under construction.
type Entry struct {
	Row int
	Col int
	Val Expr
}

// Matrix is an immutable symbolic matrix. Expressions are stored in the
// column-major nonzero order of the pattern. The zero value is not a valid
// Matrix; use a constructor.
type Matrix struct {
	pat *sparsity.Pattern
	el  []Expr
}

// New builds a matrix over pat with one expression per structural nonzero,
// in column-major nonzero order. The element slice is copied; the pattern is
// shared. Fails with ErrNilPattern, ErrElemCount and ErrNilExpr.
func New(pat *sparsity.Pattern, elems []Expr) (*Matrix, error) {
	if pat == nil {
		return nil, fmt.Errorf("New: %w", ErrNilPattern)
	}
	if len(elems) != pat.NNZ() {
		return nil, fmt.Errorf("New: %d expressions for %d nonzeros: %w", len(elems), pat.NNZ(), ErrElemCount)
	}
	el := make([]Expr, len(elems))
	for k, e := range elems {
		if e == nil {
			return nil, fmt.Errorf("New: expression %d: %w", k, ErrNilExpr)
		}
		el[k] = e
	}
	return &Matrix{pat: pat, el: el}, nil
}

// FromEntries builds a rows×cols matrix from coordinate entries. Entries may
// arrive in any order; entries addressing the same position are combined
// with Add. Coordinate validation is inherited from the pattern constructor.
func FromEntries(rows, cols int, entries []Entry) (*Matrix, error) {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	for i, e := range sorted {
		if e.Val == nil {
			return nil, fmt.Errorf("FromEntries: entry %d: %w", i, ErrNilExpr)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Col != sorted[j].Col {
			return sorted[i].Col < sorted[j].Col
		}
		return sorted[i].Row < sorted[j].Row
	})

	coords := make([]sparsity.Coord, 0, len(sorted))
	el := make([]Expr, 0, len(sorted))
	for _, e := range sorted {
		n := len(coords)
		if n > 0 && coords[n-1].Row == e.Row && coords[n-1].Col == e.Col {
			el[n-1] = Add(el[n-1], e.Val)
			continue
		}
		coords = append(coords, sparsity.Coord{Row: e.Row, Col: e.Col})
		el = append(el, e.Val)
	}

	pat, err := sparsity.New(rows, cols, coords)
	if err != nil {
		return nil, err
	}
	return &Matrix{pat: pat, el: el}, nil
}

// Symbols builds a matrix of fresh symbolic primitives over pat: nonzero k
// becomes Var(prefix_k). Fails with ErrNilPattern.
func Symbols(prefix string, pat *sparsity.Pattern) (*Matrix, error) {
	if pat == nil {
		return nil, fmt.Errorf("Symbols: %w", ErrNilPattern)
	}
	el := make([]Expr, pat.NNZ())
	for k := range el {
		el[k] = Var(fmt.Sprintf("%s_%d", prefix, k))
	}
	return &Matrix{pat: pat, el: el}, nil
}

// Zeros returns the rows×cols matrix with no structural nonzeros.
func Zeros(rows, cols int) (*Matrix, error) {
	pat, err := sparsity.Empty(rows, cols)
	if err != nil {
		return nil, err
	}
	return &Matrix{pat: pat}, nil
}

// Rows reports the number of rows.
func (m *Matrix) Rows() int { return m.pat.Rows() }

// Cols reports the number of columns.
func (m *Matrix) Cols() int { return m.pat.Cols() }

// NNZ reports the number of structurally nonzero positions.
func (m *Matrix) NNZ() int { return m.pat.NNZ() }

// Sparsity returns the sparsity pattern. The pattern is immutable and shared
// with the matrix.
func (m *Matrix) Sparsity() *sparsity.Pattern { return m.pat }

// At reads the element at (i, j). Structural zeros read as Const(0) with no
// error. Fails with ErrOutOfRange outside the shape.
func (m *Matrix) At(i, j int) (Expr, error) {
	if i < 0 || i >= m.pat.Rows() || j < 0 || j >= m.pat.Cols() {
		return nil, fmt.Errorf("At(%d,%d): shape %dx%d: %w", i, j, m.pat.Rows(), m.pat.Cols(), ErrOutOfRange)
	}
	if k, ok := m.pat.Index(i, j); ok {
		return m.el[k], nil
	}
	return Const(0), nil
}

// Nonzeros returns a copy of the stored expressions in column-major nonzero
// order. The expressions themselves are immutable and shared.
func (m *Matrix) Nonzeros() []Expr {
	out := make([]Expr, len(m.el))
	copy(out, m.el)
	return out
}

// Clone returns a copy of the matrix. Expression nodes are shared, which is
// safe because they are immutable.
func (m *Matrix) Clone() *Matrix {
	el := make([]Expr, len(m.el))
	copy(el, m.el)
	return &Matrix{pat: m.pat.Clone(), el: el}
}

// Equal reports whether o has the same pattern and structurally equal
// expressions in every stored position.
func (m *Matrix) Equal(o *Matrix) bool {
	if o == nil || !m.pat.Equal(o.pat) {
		return false
	}
	for k, e := range m.el {
		if !e.Equal(o.el[k]) {
			return false
		}
	}
	return true
}

// String renders the matrix row by row, printing structural zeros as "00".
func (m *Matrix) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dx%d, nnz=%d", m.pat.Rows(), m.pat.Cols(), m.pat.NNZ())
	for i := 0; i < m.pat.Rows(); i++ {
		b.WriteString("\n[")
		for j := 0; j < m.pat.Cols(); j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			if k, ok := m.pat.Index(i, j); ok {
				b.WriteString(m.el[k].String())
			} else {
				b.WriteString("00")
			}
		}
		b.WriteByte(']')
	}
	return b.String()
}
