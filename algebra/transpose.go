// SPDX-License-Identifier: MIT
package algebra

// Transpose mirrors x across its main diagonal: the result has swapped
// dimensions, position (i, j) of x appears at (j, i), and the pattern is the
// transposed pattern. Transposing twice restores a value equal to x.
// Transpose never fails; every shape, including zero-sized ones, has a
// transpose.
func Transpose[M Operand[M]](x M) M {
	return x.RawTranspose()
}
