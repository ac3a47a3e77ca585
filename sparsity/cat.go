// SPDX-License-Identifier: MIT
package sparsity

import "fmt"

// HorzcatMap concatenates the group side by side and returns the combined
// pattern. Column-major nonzero order of the result is exactly the operands'
// nonzeros laid end to end in group order, so value-bearing representations
// concatenate their value slices verbatim; no index mapping is needed.
// Fails with ErrEmptyGroup on an empty group and with ErrShapeMismatch when
// row counts differ.
//
// Complexity: O(total cols + total nnz). Deterministic.
func HorzcatMap(group []*Pattern) (*Pattern, error) {
	if len(group) == 0 {
		return nil, fmt.Errorf("HorzcatMap: %w", ErrEmptyGroup)
	}
	rows := group[0].rows
	cols, nnz := 0, 0
	for gi, g := range group {
		if g.rows != rows {
			return nil, fmt.Errorf("HorzcatMap: operand %d has %d rows, want %d: %w", gi, g.rows, rows, ErrShapeMismatch)
		}
		cols += g.cols
		nnz += len(g.rowidx)
	}

	colptr := make([]int, cols+1)
	rowidx := make([]int, 0, nnz)
	colBase, nnzBase := 0, 0
	for _, g := range group {
		for j := 0; j < g.cols; j++ {
			colptr[colBase+j+1] = nnzBase + g.colptr[j+1]
		}
		rowidx = append(rowidx, g.rowidx...)
		colBase += g.cols
		nnzBase += len(g.rowidx)
	}
	return &Pattern{rows: rows, cols: cols, colptr: colptr, rowidx: rowidx}, nil
}

// VertcatMap stacks the group top to bottom and returns the combined pattern
// together with a slot mapping: result nonzero k is sourced from index
// perm[k] in the operands' value slices laid end to end in group order.
// Fails with ErrEmptyGroup on an empty group and with ErrShapeMismatch when
// column counts differ.
//
// Complexity: O(total cols · len(group) + total nnz). Deterministic.
func VertcatMap(group []*Pattern) (*Pattern, []int, error) {
	if len(group) == 0 {
		return nil, nil, fmt.Errorf("VertcatMap: %w", ErrEmptyGroup)
	}
	cols := group[0].cols
	rows, nnz := 0, 0
	rowOff := make([]int, len(group))
	valOff := make([]int, len(group))
	for gi, g := range group {
		if g.cols != cols {
			return nil, nil, fmt.Errorf("VertcatMap: operand %d has %d cols, want %d: %w", gi, g.cols, cols, ErrShapeMismatch)
		}
		rowOff[gi] = rows
		valOff[gi] = nnz
		rows += g.rows
		nnz += len(g.rowidx)
	}

	colptr := make([]int, cols+1)
	rowidx := make([]int, 0, nnz)
	perm := make([]int, 0, nnz)
	for j := 0; j < cols; j++ {
		for gi, g := range group {
			for k := g.colptr[j]; k < g.colptr[j+1]; k++ {
				rowidx = append(rowidx, g.rowidx[k]+rowOff[gi])
				perm = append(perm, valOff[gi]+k)
			}
		}
		colptr[j+1] = len(rowidx)
	}
	return &Pattern{rows: rows, cols: cols, colptr: colptr, rowidx: rowidx}, perm, nil
}

// BlkdiagMap assembles the group into a block-diagonal pattern: operand i
// occupies the rows and columns after operands 0..i-1, and every position
// outside the blocks is a structural zero. Column-major nonzero order of the
// result is the operands' nonzeros laid end to end in group order, so value
// slices concatenate verbatim. Fails with ErrEmptyGroup on an empty group.
//
// Complexity: O(total cols + total nnz). Deterministic.
func BlkdiagMap(group []*Pattern) (*Pattern, error) {
	if len(group) == 0 {
		return nil, fmt.Errorf("BlkdiagMap: %w", ErrEmptyGroup)
	}
	rows, cols, nnz := 0, 0, 0
	for _, g := range group {
		rows += g.rows
		cols += g.cols
		nnz += len(g.rowidx)
	}

	colptr := make([]int, cols+1)
	rowidx := make([]int, 0, nnz)
	rowBase, colBase, nnzBase := 0, 0, 0
	for _, g := range group {
		for j := 0; j < g.cols; j++ {
			colptr[colBase+j+1] = nnzBase + g.colptr[j+1]
		}
		for _, r := range g.rowidx {
			rowidx = append(rowidx, r+rowBase)
		}
		rowBase += g.rows
		colBase += g.cols
		nnzBase += len(g.rowidx)
	}
	return &Pattern{rows: rows, cols: cols, colptr: colptr, rowidx: rowidx}, nil
}
