// SPDX-License-Identifier: MIT
package algebra

import "fmt"

// Mul returns the matrix product x·y. The result pattern is the structural
// product of the operand patterns: position (i, j) is stored whenever some
// inner index k is structurally nonzero in both x(i, k) and y(k, j), even
// when the accumulated value happens to be zero.
//
// Fails with ErrShapeMismatch when x.Cols() != y.Rows().
func Mul[M Operand[M]](x, y M) (M, error) {
	var zero M
	if err := ValidateMulShapes(x, y); err != nil {
		return zero, opError(opMul, err)
	}
	out, err := x.RawMul(y)
	if err != nil {
		return zero, opError(opMul, err)
	}
	return out, nil
}

// MulAdd returns z + x·y restricted to the sparsity of z: the result keeps
// exactly z's pattern, product terms landing on structural zeros of z are
// discarded, and positions of z that receive no terms keep their value. The
// masked form exists so callers can accumulate a product into a known
// pattern without materializing the full product first.
//
// Fails with ErrShapeMismatch when the inner dimensions disagree or the
// product shape differs from z.
func MulAdd[M Operand[M]](x, y, z M) (M, error) {
	var zero M
	if err := ValidateMulAddShapes(x, y, z); err != nil {
		return zero, opError(opMulAdd, err)
	}
	out, err := x.RawMulAdd(y, z)
	if err != nil {
		return zero, opError(opMulAdd, err)
	}
	return out, nil
}

// MulChain folds a product over the operands from the left:
// MulChain(a, b, c) computes (a·b)·c. Shapes of every adjacent pair are
// validated before any multiplication runs, so a malformed chain performs
// no work. With a single operand the fold returns that operand.
//
// Fails with ErrInvalidArgument on an empty group and ErrShapeMismatch on
// incompatible adjacent shapes.
func MulChain[M Operand[M]](group ...M) (M, error) {
	var zero M
	if err := ValidateGroup(group); err != nil {
		return zero, opError(opMulChain, err)
	}
	if err := ValidateChainShapes(group); err != nil {
		return zero, opError(opMulChain, err)
	}
	out := group[0]
	for i := 1; i < len(group); i++ {
		next, err := out.RawMul(group[i])
		if err != nil {
			return zero, opError(opMulChain, fmt.Errorf("operand %d: %w", i, err))
		}
		out = next
	}
	return out, nil
}
