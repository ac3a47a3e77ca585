// SPDX-License-Identifier: MIT
package sparsity

import "fmt"

// Union returns the pattern whose nonzeros are positions present in a or b.
// Fails with ErrShapeMismatch when shapes differ.
//
// Complexity: O(cols + nnz(a) + nnz(b)). Deterministic.
func Union(a, b *Pattern) (*Pattern, error) {
	if a.rows != b.rows || a.cols != b.cols {
		return nil, fmt.Errorf("Union: %dx%d vs %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrShapeMismatch)
	}
	colptr := make([]int, a.cols+1)
	rowidx := make([]int, 0, len(a.rowidx)+len(b.rowidx))
	for j := 0; j < a.cols; j++ {
		ka, ea := a.colptr[j], a.colptr[j+1]
		kb, eb := b.colptr[j], b.colptr[j+1]
		for ka < ea && kb < eb {
			ra, rb := a.rowidx[ka], b.rowidx[kb]
			switch {
			case ra < rb:
				rowidx = append(rowidx, ra)
				ka++
			case rb < ra:
				rowidx = append(rowidx, rb)
				kb++
			default:
				rowidx = append(rowidx, ra)
				ka++
				kb++
			}
		}
		rowidx = append(rowidx, a.rowidx[ka:ea]...)
		rowidx = append(rowidx, b.rowidx[kb:eb]...)
		colptr[j+1] = len(rowidx)
	}
	return &Pattern{rows: a.rows, cols: a.cols, colptr: colptr, rowidx: rowidx}, nil
}

// Intersect returns the pattern whose nonzeros are positions present in both
// a and b. Fails with ErrShapeMismatch when shapes differ.
//
// Complexity: O(cols + nnz(a) + nnz(b)). Deterministic.
func Intersect(a, b *Pattern) (*Pattern, error) {
	if a.rows != b.rows || a.cols != b.cols {
		return nil, fmt.Errorf("Intersect: %dx%d vs %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrShapeMismatch)
	}
	colptr := make([]int, a.cols+1)
	rowidx := make([]int, 0)
	for j := 0; j < a.cols; j++ {
		ka, ea := a.colptr[j], a.colptr[j+1]
		kb, eb := b.colptr[j], b.colptr[j+1]
		for ka < ea && kb < eb {
			ra, rb := a.rowidx[ka], b.rowidx[kb]
			switch {
			case ra < rb:
				ka++
			case rb < ra:
				kb++
			default:
				rowidx = append(rowidx, ra)
				ka++
				kb++
			}
		}
		colptr[j+1] = len(rowidx)
	}
	return &Pattern{rows: a.rows, cols: a.cols, colptr: colptr, rowidx: rowidx}, nil
}
