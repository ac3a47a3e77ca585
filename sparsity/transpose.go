// SPDX-License-Identifier: MIT
package sparsity

// TransposeMap returns the transposed pattern together with a slot mapping:
// nonzero k of the transpose is sourced from column-major index perm[k] in p.
// Value-bearing representations permute their value storage with perm.
//
// Implementation: counting sort over original row indices, so the transpose
// is built in a single pass without comparisons.
//
// Complexity: O(rows + cols + nnz). Deterministic.
func (p *Pattern) TransposeMap() (*Pattern, []int) {
	nnz := len(p.rowidx)
	colptr := make([]int, p.rows+1)
	for _, r := range p.rowidx {
		colptr[r+1]++
	}
	for r := 0; r < p.rows; r++ {
		colptr[r+1] += colptr[r]
	}

	rowidx := make([]int, nnz)
	perm := make([]int, nnz)
	cursor := make([]int, p.rows)
	copy(cursor, colptr[:p.rows])
	for j := 0; j < p.cols; j++ {
		for k := p.colptr[j]; k < p.colptr[j+1]; k++ {
			r := p.rowidx[k]
			pos := cursor[r]
			cursor[r]++
			rowidx[pos] = j
			perm[pos] = k
		}
	}
	return &Pattern{rows: p.cols, cols: p.rows, colptr: colptr, rowidx: rowidx}, perm
}
