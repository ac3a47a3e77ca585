// SPDX-License-Identifier: MIT
package algebra

// Horzcat concatenates the operands side by side: the result has the shared
// row count and the summed column count, with operand i occupying the
// columns after operands 0..i-1. Structural zeros of the operands stay
// structural in the result.
//
// Fails with ErrInvalidArgument on an empty group and ErrShapeMismatch when
// row counts differ. With a single operand the result is a fresh value
// equal to it.
func Horzcat[M Operand[M]](group ...M) (M, error) {
	var zero M
	if err := ValidateGroup(group); err != nil {
		return zero, opError(opHorzcat, err)
	}
	if err := ValidateSameRows(group); err != nil {
		return zero, opError(opHorzcat, err)
	}
	out, err := group[0].RawHorzcat(group)
	if err != nil {
		return zero, opError(opHorzcat, err)
	}
	return out, nil
}

// Vertcat stacks the operands top to bottom: the result has the shared
// column count and the summed row count, with operand i occupying the rows
// after operands 0..i-1.
//
// Fails with ErrInvalidArgument on an empty group and ErrShapeMismatch when
// column counts differ.
func Vertcat[M Operand[M]](group ...M) (M, error) {
	var zero M
	if err := ValidateGroup(group); err != nil {
		return zero, opError(opVertcat, err)
	}
	if err := ValidateSameCols(group); err != nil {
		return zero, opError(opVertcat, err)
	}
	out, err := group[0].RawVertcat(group)
	if err != nil {
		return zero, opError(opVertcat, err)
	}
	return out, nil
}

// Blkdiag assembles the operands into a block-diagonal value: operand i
// occupies the rows and columns after operands 0..i-1, and every position
// outside the blocks is a structural zero. Operands may have unequal and
// even zero-sized shapes.
//
// Fails with ErrInvalidArgument on an empty group.
func Blkdiag[M Operand[M]](group ...M) (M, error) {
	var zero M
	if err := ValidateGroup(group); err != nil {
		return zero, opError(opBlkdiag, err)
	}
	out, err := group[0].RawBlkdiag(group)
	if err != nil {
		return zero, opError(opBlkdiag, err)
	}
	return out, nil
}
