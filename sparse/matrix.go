// SPDX-License-Identifier: MIT
package sparse

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/kvissel/sparsix/sparsity"
)

// Entry is one triplet of a matrix under construction.
type Entry struct {
	Row int
	Col int
	Val float64
}

// Matrix is an immutable sparse numeric matrix. Values are stored in the
// column-major nonzero order of the pattern. The zero value is not a valid
// Matrix; use a constructor.
type Matrix struct {
	pat *sparsity.Pattern
	val []float64
}

// New builds a matrix over pat with one value per structural nonzero, in
// column-major nonzero order. The value slice is copied; the pattern is
// shared, which is safe because patterns are immutable. Fails with
// ErrNilPattern and ErrValueCount.
func New(pat *sparsity.Pattern, values []float64) (*Matrix, error) {
	if pat == nil {
		return nil, fmt.Errorf("New: %w", ErrNilPattern)
	}
	if len(values) != pat.NNZ() {
		return nil, fmt.Errorf("New: %d values for %d nonzeros: %w", len(values), pat.NNZ(), ErrValueCount)
	}
	val := make([]float64, len(values))
	copy(val, values)
	return &Matrix{pat: pat, val: val}, nil
}

// FromTriplets builds a rows×cols matrix from coordinate entries. Entries
// may arrive in any order; entries addressing the same position are summed.
// Coordinate validation is inherited from the pattern constructor.
//
// Complexity: O(n log n) in the number of entries.
func FromTriplets(rows, cols int, entries []Entry) (*Matrix, error) {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Col != sorted[j].Col {
			return sorted[i].Col < sorted[j].Col
		}
		return sorted[i].Row < sorted[j].Row
	})

	coords := make([]sparsity.Coord, 0, len(sorted))
	vals := make([]float64, 0, len(sorted))
	for _, e := range sorted {
		n := len(coords)
		if n > 0 && coords[n-1].Row == e.Row && coords[n-1].Col == e.Col {
			vals[n-1] += e.Val
			continue
		}
		coords = append(coords, sparsity.Coord{Row: e.Row, Col: e.Col})
		vals = append(vals, e.Val)
	}

	// The coordinates are already in column-major order, which sparsity.New
	// preserves, so vals stays aligned with the pattern's nonzero order.
	pat, err := sparsity.New(rows, cols, coords)
	if err != nil {
		return nil, err
	}
	return &Matrix{pat: pat, val: vals}, nil
}

// FromDense builds a structurally dense rows×cols matrix from row-major
// data. Numeric zeros in data stay stored as explicit nonzero positions.
// Fails with ErrValueCount when len(data) != rows*cols; shape validation is
// inherited from the pattern constructor.
func FromDense(rows, cols int, data []float64) (*Matrix, error) {
	pat, err := sparsity.Dense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("FromDense: %d values for %dx%d: %w", len(data), rows, cols, ErrValueCount)
	}
	val := make([]float64, len(data))
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			val[j*rows+i] = data[i*cols+j]
		}
	}
	return &Matrix{pat: pat, val: val}, nil
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

// At reads the element at (i, j). Structural zeros read as 0 with no error.
// Fails with ErrOutOfRange outside the shape.
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.pat.Rows() || j < 0 || j >= m.pat.Cols() {
		return 0, fmt.Errorf("At(%d,%d): shape %dx%d: %w", i, j, m.pat.Rows(), m.pat.Cols(), ErrOutOfRange)
	}
	if k, ok := m.pat.Index(i, j); ok {
		return m.val[k], nil
	}
	return 0, nil
}

// Nonzeros returns a copy of the stored values in column-major nonzero
// order.
func (m *Matrix) Nonzeros() []float64 {
	out := make([]float64, len(m.val))
	copy(out, m.val)
	return out
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	val := make([]float64, len(m.val))
	copy(val, m.val)
	return &Matrix{pat: m.pat.Clone(), val: val}
}

// Equal reports whether o has the same pattern and exactly the same stored
// values. Comparison is exact; it does not tolerate floating-point drift.
func (m *Matrix) Equal(o *Matrix) bool {
	if o == nil || !m.pat.Equal(o.pat) {
		return false
	}
	for k, v := range m.val {
		if o.val[k] != v {
			return false
		}
	}
	return true
}

// String renders the matrix row by row, printing structural zeros as "00"
// to keep them distinguishable from stored numeric zeros.
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
				b.WriteString(strconv.FormatFloat(m.val[k], 'g', -1, 64))
			} else {
				b.WriteString("00")
			}
		}
		b.WriteByte(']')
	}
	return b.String()
}
