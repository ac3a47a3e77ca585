// SPDX-License-Identifier: MIT
package algebra

import "github.com/kvissel/sparsix/sparsity"

// Operand is the capability contract a matrix representation satisfies to
// flow through the free functions of this package. The constraint is
// self-referential: a representation M implements Operand[M], so groups,
// results and split pieces all keep their concrete type.
//
// Three representations ship with sparsix: *sparsity.Pattern (structure
// only), *sparse.Matrix (numeric) and *sym.Matrix (symbolic). External
// representations can join by implementing the same methods.
//
// Contract rules:
//   - Values are immutable. No method mutates the receiver or any operand;
//     every result is freshly constructed.
//   - Group forms (RawHorzcat, RawVertcat, RawBlkdiag) are dispatch-only on
//     the receiver: the group slice carries every operand, and the receiver
//     is always its first element when called through this package.
//   - Split forms receive a complete boundary partition of the dimension:
//     offsets start at 0, end at the dimension size, and never decrease.
//     The free functions normalize caller offsets before delegating.
//   - Structural zeros stay structural: no operation may densify positions
//     that are absent from every contributing operand.
type Operand[M any] interface {
	// Rows reports the number of rows.
	Rows() int

	// Cols reports the number of columns.
	Cols() int

	// Sparsity returns the structural nonzero pattern.
	Sparsity() *sparsity.Pattern

	// RawHorzcat returns the side-by-side concatenation of group.
	RawHorzcat(group []M) (M, error)

	// RawVertcat returns the top-to-bottom concatenation of group.
	RawVertcat(group []M) (M, error)

	// RawHorzsplit cuts the receiver into column groups along offsets.
	RawHorzsplit(offsets []int) ([]M, error)

	// RawVertsplit cuts the receiver into row groups along offsets.
	RawVertsplit(offsets []int) ([]M, error)

	// RawBlkdiag returns the block-diagonal assembly of group.
	RawBlkdiag(group []M) (M, error)

	// RawMul returns the matrix product receiver·y.
	RawMul(y M) (M, error)

	// RawMulAdd returns z + receiver·y restricted to the sparsity of z.
	RawMulAdd(y, z M) (M, error)

	// RawTranspose returns the transposed value.
	RawTranspose() M
}
