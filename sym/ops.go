// SPDX-License-Identifier: MIT
package sym

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

func patternsOf(group []*Matrix) []*sparsity.Pattern {
	pats := make([]*sparsity.Pattern, len(group))
	for i, g := range group {
		pats[i] = g.pat
	}
	return pats
}

// RawHorzcat returns the side-by-side concatenation of group. The receiver
// is dispatch-only; the group carries every operand.
func (*Matrix) RawHorzcat(group []*Matrix) (*Matrix, error) {
	if err := checkGroup(group); err != nil {
		return nil, err
	}
	pat, err := sparsity.HorzcatMap(patternsOf(group))
	if err != nil {
		return nil, err
	}
	el := make([]Expr, 0, pat.NNZ())
	for _, g := range group {
		el = append(el, g.el...)
	}
	return &Matrix{pat: pat, el: el}, nil
}

// RawVertcat returns the top-to-bottom concatenation of group, gathering
// expressions through the slot mapping of the structural kernel.
func (*Matrix) RawVertcat(group []*Matrix) (*Matrix, error) {
	if err := checkGroup(group); err != nil {
		return nil, err
	}
	pat, perm, err := sparsity.VertcatMap(patternsOf(group))
	if err != nil {
		return nil, err
	}
	concat := make([]Expr, 0, len(perm))
	for _, g := range group {
		concat = append(concat, g.el...)
	}
	el := make([]Expr, len(perm))
	for k, src := range perm {
		el[k] = concat[src]
	}
	return &Matrix{pat: pat, el: el}, nil
}

// RawBlkdiag returns the block-diagonal assembly of group.
func (*Matrix) RawBlkdiag(group []*Matrix) (*Matrix, error) {
	if err := checkGroup(group); err != nil {
		return nil, err
	}
	pat, err := sparsity.BlkdiagMap(patternsOf(group))
	if err != nil {
		return nil, err
	}
	el := make([]Expr, 0, pat.NNZ())
	for _, g := range group {
		el = append(el, g.el...)
	}
	return &Matrix{pat: pat, el: el}, nil
}

// RawHorzsplit cuts the matrix into column groups along the complete
// partition offsets.
func (m *Matrix) RawHorzsplit(offsets []int) ([]*Matrix, error) {
	pieces, ranges, err := sparsity.HorzsplitMap(m.pat, offsets)
	if err != nil {
		return nil, err
	}
	out := make([]*Matrix, len(pieces))
	for i, p := range pieces {
		s, e := ranges[i][0], ranges[i][1]
		el := make([]Expr, e-s)
		copy(el, m.el[s:e])
		out[i] = &Matrix{pat: p, el: el}
	}
	return out, nil
}

// RawVertsplit cuts the matrix into row groups along the complete partition
// offsets.
func (m *Matrix) RawVertsplit(offsets []int) ([]*Matrix, error) {
	pieces, perms, err := sparsity.VertsplitMap(m.pat, offsets)
	if err != nil {
		return nil, err
	}
	out := make([]*Matrix, len(pieces))
	for i, p := range pieces {
		el := make([]Expr, len(perms[i]))
		for k, src := range perms[i] {
			el[k] = m.el[src]
		}
		out[i] = &Matrix{pat: p, el: el}
	}
	return out, nil
}

// RawMul returns the symbolic product m·y. Each structurally nonzero result
// position holds the sum of its product terms, folded left to right in
// ascending inner-index order, so the resulting trees are reproducible.
func (m *Matrix) RawMul(y *Matrix) (*Matrix, error) {
	if y == nil {
		return nil, fmt.Errorf("RawMul: %w", ErrNilMatrix)
	}
	pat, el, err := sparsity.ProductFold(m.pat, y.pat, m.el, y.el, Mul, Add)
	if err != nil {
		return nil, err
	}
	return &Matrix{pat: pat, el: el}, nil
}

// RawMulAdd returns z + m·y restricted to the sparsity of z. Product terms
// falling on structural zeros of z are discarded; positions of z that
// receive no terms keep their expression node unchanged.
func (m *Matrix) RawMulAdd(y, z *Matrix) (*Matrix, error) {
	if y == nil || z == nil {
		return nil, fmt.Errorf("RawMulAdd: %w", ErrNilMatrix)
	}
	el, err := sparsity.MaskedAccumFold(m.pat, y.pat, z.pat, m.el, y.el, z.el, Mul, Add)
	if err != nil {
		return nil, err
	}
	return &Matrix{pat: z.pat.Clone(), el: el}, nil
}

// RawTranspose returns the transposed matrix, permuting expressions with
// the mapping of the structural kernel.
func (m *Matrix) RawTranspose() *Matrix {
	pat, perm := m.pat.TransposeMap()
	el := make([]Expr, len(perm))
	for k, src := range perm {
		el[k] = m.el[src]
	}
	return &Matrix{pat: pat, el: el}
}
