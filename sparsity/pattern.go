// SPDX-License-Identifier: MIT
package sparsity

import (
	"fmt"
	"sort"
	"strings"
)

// Coord addresses a single matrix position. Row and Col are zero-based.
type Coord struct {
	Row int
	Col int
}

// Pattern is an immutable compressed-column sparsity pattern.
//
// Invariants (established by every constructor, relied upon by every kernel):
//   - rows ≥ 0, cols ≥ 0;
//   - len(colptr) == cols+1, colptr[0] == 0, colptr non-decreasing;
//   - len(rowidx) == colptr[cols];
//   - within each column, row indices are strictly increasing and in [0, rows).
//
// The zero value is not a valid Pattern; use a constructor.
type Pattern struct {
	rows   int
	cols   int
	colptr []int
	rowidx []int
}

// New builds a pattern of the given shape with the given nonzero positions.
// Coordinates may arrive in any order; duplicates collapse to a single
// position. Fails with ErrBadShape on negative dimensions and with
// ErrCoordOutOfRange on coordinates outside rows×cols.
//
// Complexity: O(n log n) in the number of coordinates.
func New(rows, cols int, coords []Coord) (*Pattern, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}
	for _, c := range coords {
		if c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
			return nil, fmt.Errorf("New: (%d,%d) outside %dx%d: %w", c.Row, c.Col, rows, cols, ErrCoordOutOfRange)
		}
	}

	// Column-major order with duplicates collapsed.
	sorted := make([]Coord, len(coords))
	copy(sorted, coords)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Col != sorted[j].Col {
			return sorted[i].Col < sorted[j].Col
		}
		return sorted[i].Row < sorted[j].Row
	})
	uniq := sorted[:0]
	for i, c := range sorted {
		if i > 0 && c == sorted[i-1] {
			continue
		}
		uniq = append(uniq, c)
	}

	colptr := make([]int, cols+1)
	for _, c := range uniq {
		colptr[c.Col+1]++
	}
	for j := 0; j < cols; j++ {
		colptr[j+1] += colptr[j]
	}
	rowidx := make([]int, len(uniq))
	for k, c := range uniq {
		rowidx[k] = c.Row
	}
	return &Pattern{rows: rows, cols: cols, colptr: colptr, rowidx: rowidx}, nil
}

// FromCCS builds a pattern directly from compressed-column arrays.
// Both slices are copied. Fails with ErrBadShape when the arrays are not a
// well-formed CCS description and with ErrCoordOutOfRange when a row index
// is outside [0, rows).
func FromCCS(rows, cols int, colptr, rowidx []int) (*Pattern, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("FromCCS(%d,%d): %w", rows, cols, ErrBadShape)
	}
	if len(colptr) != cols+1 || colptr[0] != 0 || colptr[cols] != len(rowidx) {
		return nil, fmt.Errorf("FromCCS: column pointers do not describe %d columns over %d entries: %w",
			cols, len(rowidx), ErrBadShape)
	}
	for j := 0; j < cols; j++ {
		if colptr[j+1] < colptr[j] {
			return nil, fmt.Errorf("FromCCS: column %d has negative extent: %w", j, ErrBadShape)
		}
		for k := colptr[j]; k < colptr[j+1]; k++ {
			if rowidx[k] < 0 || rowidx[k] >= rows {
				return nil, fmt.Errorf("FromCCS: row %d outside %d rows: %w", rowidx[k], rows, ErrCoordOutOfRange)
			}
			if k > colptr[j] && rowidx[k] <= rowidx[k-1] {
				return nil, fmt.Errorf("FromCCS: column %d rows not strictly increasing: %w", j, ErrBadShape)
			}
		}
	}
	cp := make([]int, len(colptr))
	copy(cp, colptr)
	ri := make([]int, len(rowidx))
	copy(ri, rowidx)
	return &Pattern{rows: rows, cols: cols, colptr: cp, rowidx: ri}, nil
}

// Dense returns the fully populated rows×cols pattern.
func Dense(rows, cols int) (*Pattern, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("Dense(%d,%d): %w", rows, cols, ErrBadShape)
	}
	colptr := make([]int, cols+1)
	rowidx := make([]int, rows*cols)
	for j := 0; j < cols; j++ {
		colptr[j+1] = (j + 1) * rows
		for i := 0; i < rows; i++ {
			rowidx[j*rows+i] = i
		}
	}
	return &Pattern{rows: rows, cols: cols, colptr: colptr, rowidx: rowidx}, nil
}

// Empty returns the rows×cols pattern with no structural nonzeros.
func Empty(rows, cols int) (*Pattern, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("Empty(%d,%d): %w", rows, cols, ErrBadShape)
	}
	return &Pattern{rows: rows, cols: cols, colptr: make([]int, cols+1)}, nil
}

// Identity returns the n×n pattern with nonzeros exactly on the diagonal.
func Identity(n int) (*Pattern, error) {
	if n < 0 {
		return nil, fmt.Errorf("Identity(%d): %w", n, ErrBadShape)
	}
	colptr := make([]int, n+1)
	rowidx := make([]int, n)
	for j := 0; j < n; j++ {
		colptr[j+1] = j + 1
		rowidx[j] = j
	}
	return &Pattern{rows: n, cols: n, colptr: colptr, rowidx: rowidx}, nil
}

// Rows reports the number of rows.
func (p *Pattern) Rows() int { return p.rows }

// Cols reports the number of columns.
func (p *Pattern) Cols() int { return p.cols }

// NNZ reports the number of structurally nonzero positions.
func (p *Pattern) NNZ() int { return len(p.rowidx) }

// Sparsity returns the pattern itself. It exists so that a bare Pattern
// satisfies the same capability contract as value-bearing matrices.
func (p *Pattern) Sparsity() *Pattern { return p }

// ColRange reports the half-open range [start, end) of column-major nonzero
// indices belonging to column j. j must be in [0, Cols()); out-of-range j
// panics, as misuse is a programmer error rather than an input condition.
func (p *Pattern) ColRange(j int) (start, end int) {
	return p.colptr[j], p.colptr[j+1]
}

// RowAt reports the row of the k-th nonzero in column-major order.
// k must be in [0, NNZ()); out-of-range k panics.
func (p *Pattern) RowAt(k int) int { return p.rowidx[k] }

// Has reports whether position (i, j) is structurally nonzero. Positions
// outside the shape are reported as absent.
func (p *Pattern) Has(i, j int) bool {
	_, ok := p.Index(i, j)
	return ok
}

// Index locates position (i, j) among the stored nonzeros and reports its
// column-major index. ok is false for structural zeros and for coordinates
// outside the shape.
//
// Complexity: O(log nnz(column j)).
func (p *Pattern) Index(i, j int) (k int, ok bool) {
	if i < 0 || i >= p.rows || j < 0 || j >= p.cols {
		return 0, false
	}
	start, end := p.colptr[j], p.colptr[j+1]
	off := sort.SearchInts(p.rowidx[start:end], i)
	k = start + off
	if k < end && p.rowidx[k] == i {
		return k, true
	}
	return 0, false
}

// Coords returns the nonzero positions in column-major order.
// The slice is freshly allocated on every call.
func (p *Pattern) Coords() []Coord {
	out := make([]Coord, 0, len(p.rowidx))
	for j := 0; j < p.cols; j++ {
		for k := p.colptr[j]; k < p.colptr[j+1]; k++ {
			out = append(out, Coord{Row: p.rowidx[k], Col: j})
		}
	}
	return out
}

// Equal reports whether q has the same shape and the same set of
// structurally nonzero positions.
func (p *Pattern) Equal(q *Pattern) bool {
	if p.rows != q.rows || p.cols != q.cols || len(p.rowidx) != len(q.rowidx) {
		return false
	}
	for j := 0; j <= p.cols; j++ {
		if p.colptr[j] != q.colptr[j] {
			return false
		}
	}
	for k, r := range p.rowidx {
		if q.rowidx[k] != r {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the pattern.
func (p *Pattern) Clone() *Pattern {
	cp := make([]int, len(p.colptr))
	copy(cp, p.colptr)
	ri := make([]int, len(p.rowidx))
	copy(ri, p.rowidx)
	return &Pattern{rows: p.rows, cols: p.cols, colptr: cp, rowidx: ri}
}

// String renders the pattern as a row-major grid, '*' for structural
// nonzeros and '.' for structural zeros, preceded by a shape header.
// Intended for debugging and test failure output.
func (p *Pattern) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dx%d, nnz=%d", p.rows, p.cols, len(p.rowidx))
	for i := 0; i < p.rows; i++ {
		b.WriteByte('\n')
		for j := 0; j < p.cols; j++ {
			if p.Has(i, j) {
				b.WriteByte('*')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
