// SPDX-License-Identifier: MIT
package sparse

import (
	"fmt"

	"github.com/kvissel/sparsix/sparsity"
)

// checkGroup rejects nil operands. Group-level shape validation happens in
// the structural kernels of package sparsity.
func checkGroup(group []*Matrix) error {
	for i, g := range group {
		if g == nil {
			return fmt.Errorf("operand %d: %w", i, ErrNilMatrix)
		}
	}
	return nil
}

// patternsOf projects a group onto its sparsity patterns.
func patternsOf(group []*Matrix) []*sparsity.Pattern {
	pats := make([]*sparsity.Pattern, len(group))
	for i, g := range group {
		pats[i] = g.pat
	}
	return pats
}

// RawHorzcat returns the side-by-side concatenation of group. The receiver
// is dispatch-only; the group carries every operand. Column-major value
// order makes this a pattern concatenation plus one value append per
// operand.
func (*Matrix) RawHorzcat(group []*Matrix) (*Matrix, error) {
	if err := checkGroup(group); err != nil {
		return nil, err
	}
	pat, err := sparsity.HorzcatMap(patternsOf(group))
	if err != nil {
		return nil, err
	}
	val := make([]float64, 0, pat.NNZ())
	for _, g := range group {
		val = append(val, g.val...)
	}
	return &Matrix{pat: pat, val: val}, nil
}

// RawVertcat returns the top-to-bottom concatenation of group, gathering
// values through the slot mapping of the structural kernel.
func (*Matrix) RawVertcat(group []*Matrix) (*Matrix, error) {
	if err := checkGroup(group); err != nil {
		return nil, err
	}
	pat, perm, err := sparsity.VertcatMap(patternsOf(group))
	if err != nil {
		return nil, err
	}
	concat := make([]float64, 0, len(perm))
	for _, g := range group {
		concat = append(concat, g.val...)
	}
	val := make([]float64, len(perm))
	for k, src := range perm {
		val[k] = concat[src]
	}
	return &Matrix{pat: pat, val: val}, nil
}

// RawBlkdiag returns the block-diagonal assembly of group. Like RawHorzcat,
// value order is preserved, so values concatenate verbatim.
func (*Matrix) RawBlkdiag(group []*Matrix) (*Matrix, error) {
	if err := checkGroup(group); err != nil {
		return nil, err
	}
	pat, err := sparsity.BlkdiagMap(patternsOf(group))
	if err != nil {
		return nil, err
	}
	val := make([]float64, 0, pat.NNZ())
	for _, g := range group {
		val = append(val, g.val...)
	}
	return &Matrix{pat: pat, val: val}, nil
}

// RawHorzsplit cuts the matrix into column groups along the complete
// partition offsets. Each piece copies a contiguous run of the value
// storage.
func (m *Matrix) RawHorzsplit(offsets []int) ([]*Matrix, error) {
	pieces, ranges, err := sparsity.HorzsplitMap(m.pat, offsets)
	if err != nil {
		return nil, err
	}
	out := make([]*Matrix, len(pieces))
	for i, p := range pieces {
		s, e := ranges[i][0], ranges[i][1]
		val := make([]float64, e-s)
		copy(val, m.val[s:e])
		out[i] = &Matrix{pat: p, val: val}
	}
	return out, nil
}

// RawVertsplit cuts the matrix into row groups along the complete partition
// offsets, gathering values through the per-piece slot mappings.
func (m *Matrix) RawVertsplit(offsets []int) ([]*Matrix, error) {
	pieces, perms, err := sparsity.VertsplitMap(m.pat, offsets)
	if err != nil {
		return nil, err
	}
	out := make([]*Matrix, len(pieces))
	for i, p := range pieces {
		val := make([]float64, len(perms[i]))
		for k, src := range perms[i] {
			val[k] = m.val[src]
		}
		out[i] = &Matrix{pat: p, val: val}
	}
	return out, nil
}

// RawTranspose returns the transposed matrix, permuting values with the
// mapping of the structural kernel.
func (m *Matrix) RawTranspose() *Matrix {
	pat, perm := m.pat.TransposeMap()
	val := make([]float64, len(perm))
	for k, src := range perm {
		val[k] = m.val[src]
	}
	return &Matrix{pat: pat, val: val}
}
