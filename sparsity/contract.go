// SPDX-License-Identifier: MIT
package sparsity

// This file adapts Pattern to the capability contract shared with the
// value-bearing representations (package sparse, package sym): the algebra
// layer dispatches group operations through the first operand, so a bare
// pattern composes with the same free functions as a numeric or symbolic
// matrix. The receiver of the group forms below is dispatch-only; the group
// slice always carries every operand including the receiver.

// RawHorzcat returns the side-by-side concatenation of group.
func (*Pattern) RawHorzcat(group []*Pattern) (*Pattern, error) {
	return HorzcatMap(group)
}

// RawVertcat returns the top-to-bottom concatenation of group.
func (*Pattern) RawVertcat(group []*Pattern) (*Pattern, error) {
	pat, _, err := VertcatMap(group)
	return pat, err
}

// RawHorzsplit cuts the pattern into column groups along the complete
// partition offsets.
func (p *Pattern) RawHorzsplit(offsets []int) ([]*Pattern, error) {
	pieces, _, err := HorzsplitMap(p, offsets)
	return pieces, err
}

// RawVertsplit cuts the pattern into row groups along the complete
// partition offsets.
func (p *Pattern) RawVertsplit(offsets []int) ([]*Pattern, error) {
	pieces, _, err := VertsplitMap(p, offsets)
	return pieces, err
}

// RawBlkdiag returns the block-diagonal assembly of group.
func (*Pattern) RawBlkdiag(group []*Pattern) (*Pattern, error) {
	return BlkdiagMap(group)
}

// RawMul returns the structural product pattern of p·y: position (i, j) is
// nonzero whenever some inner index k has (i, k) nonzero in p and (k, j)
// nonzero in y.
func (p *Pattern) RawMul(y *Pattern) (*Pattern, error) {
	unit := func(struct{}, struct{}) struct{} { return struct{}{} }
	pat, _, err := ProductFold(p, y, make([]struct{}, len(p.rowidx)), make([]struct{}, len(y.rowidx)), unit, unit)
	return pat, err
}

// RawMulAdd returns the structure of z + p·y restricted to the sparsity of
// z. Product positions falling on structural zeros of z are discarded, so
// the result always equals z's pattern; it is still computed from the
// operands so that shape violations surface as errors.
func (p *Pattern) RawMulAdd(y, z *Pattern) (*Pattern, error) {
	prod, err := p.RawMul(y)
	if err != nil {
		return nil, err
	}
	kept, err := Intersect(prod, z)
	if err != nil {
		return nil, err
	}
	return Union(z, kept)
}

// RawTranspose returns the transposed pattern.
func (p *Pattern) RawTranspose() *Pattern {
	t, _ := p.TransposeMap()
	return t
}
