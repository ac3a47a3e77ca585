// SPDX-License-Identifier: MIT
package sparsity

import (
	"fmt"
	"sort"
)

// checkPartition verifies that offsets is a complete partition of [0, size]:
// it starts at 0, ends at size, and never decreases. Kernels receive
// partitions already normalized by the algebra layer; the check here guards
// direct callers of the raw primitives.
func checkPartition(op string, offsets []int, size int) error {
	if len(offsets) < 2 {
		return fmt.Errorf("%s: need at least one group: %w", op, ErrOffsetInvalid)
	}
	if offsets[0] != 0 {
		return fmt.Errorf("%s: first boundary %d, want 0: %w", op, offsets[0], ErrOffsetInvalid)
	}
	if offsets[len(offsets)-1] != size {
		return fmt.Errorf("%s: last boundary %d, want %d: %w", op, offsets[len(offsets)-1], size, ErrOffsetInvalid)
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return fmt.Errorf("%s: boundary %d decreases: %w", op, offsets[i], ErrOffsetInvalid)
		}
	}
	return nil
}

// HorzsplitMap cuts p into column groups along the complete partition
// offsets and returns one pattern per group, together with the half-open
// column-major nonzero range [ranges[i][0], ranges[i][1]) each group covers
// in p. Value-bearing representations slice their value storage with those
// ranges. Fails with ErrOffsetInvalid when offsets is not a complete
// partition of [0, p.Cols()].
//
// Complexity: O(result cols + result nnz). Deterministic.
func HorzsplitMap(p *Pattern, offsets []int) ([]*Pattern, [][2]int, error) {
	if err := checkPartition("HorzsplitMap", offsets, p.cols); err != nil {
		return nil, nil, err
	}
	n := len(offsets) - 1
	pieces := make([]*Pattern, n)
	ranges := make([][2]int, n)
	for i := 0; i < n; i++ {
		c0, c1 := offsets[i], offsets[i+1]
		s, e := p.colptr[c0], p.colptr[c1]
		colptr := make([]int, c1-c0+1)
		for j := c0; j < c1; j++ {
			colptr[j-c0+1] = p.colptr[j+1] - s
		}
		rowidx := make([]int, e-s)
		copy(rowidx, p.rowidx[s:e])
		pieces[i] = &Pattern{rows: p.rows, cols: c1 - c0, colptr: colptr, rowidx: rowidx}
		ranges[i] = [2]int{s, e}
	}
	return pieces, ranges, nil
}

// VertsplitMap cuts p into row groups along the complete partition offsets
// and returns one pattern per group, together with a slot mapping per group:
// nonzero k of group i is sourced from column-major index perms[i][k] in p.
// Fails with ErrOffsetInvalid when offsets is not a complete partition of
// [0, p.Rows()].
//
// Complexity: O(groups · cols · log nnz + total nnz). Deterministic.
func VertsplitMap(p *Pattern, offsets []int) ([]*Pattern, [][]int, error) {
	if err := checkPartition("VertsplitMap", offsets, p.rows); err != nil {
		return nil, nil, err
	}
	n := len(offsets) - 1
	pieces := make([]*Pattern, n)
	perms := make([][]int, n)
	for i := 0; i < n; i++ {
		r0, r1 := offsets[i], offsets[i+1]
		colptr := make([]int, p.cols+1)
		rowidx := make([]int, 0)
		perm := make([]int, 0)
		for j := 0; j < p.cols; j++ {
			s, e := p.colptr[j], p.colptr[j+1]
			col := p.rowidx[s:e]
			lo := s + sort.SearchInts(col, r0)
			hi := s + sort.SearchInts(col, r1)
			for k := lo; k < hi; k++ {
				rowidx = append(rowidx, p.rowidx[k]-r0)
				perm = append(perm, k)
			}
			colptr[j+1] = len(rowidx)
		}
		pieces[i] = &Pattern{rows: r1 - r0, cols: p.cols, colptr: colptr, rowidx: rowidx}
		perms[i] = perm
	}
	return pieces, perms, nil
}
