// SPDX-License-Identifier: MIT
package sparse

import (
	"fmt"

	"github.com/kvissel/sparsix/sparsity"
)

func mulF(a, b float64) float64 { return a * b }
func addF(a, b float64) float64 { return a + b }

// RawMul returns the matrix product m·y. The result pattern is the
// structural product of the operand patterns: a position is kept whenever at
// least one structural term contributes, even if the accumulated value is
// numerically zero. Terms accumulate in ascending inner-index order, so
// results are bit-for-bit reproducible.
func (m *Matrix) RawMul(y *Matrix) (*Matrix, error) {
	if y == nil {
		return nil, fmt.Errorf("RawMul: %w", ErrNilMatrix)
	}
	pat, val, err := sparsity.ProductFold(m.pat, y.pat, m.val, y.val, mulF, addF)
	if err != nil {
		return nil, err
	}
	return &Matrix{pat: pat, val: val}, nil
}

// RawMulAdd returns z + m·y restricted to the sparsity of z: the result
// reuses z's pattern and product terms falling on structural zeros of z are
// discarded. Columns where z holds no nonzeros are skipped entirely, which
// is what makes the masked form cheaper than mul-then-add when z is sparse.
func (m *Matrix) RawMulAdd(y, z *Matrix) (*Matrix, error) {
	if y == nil || z == nil {
		return nil, fmt.Errorf("RawMulAdd: %w", ErrNilMatrix)
	}
	val, err := sparsity.MaskedAccumFold(m.pat, y.pat, z.pat, m.val, y.val, z.val, mulF, addF)
	if err != nil {
		return nil, err
	}
	return &Matrix{pat: z.pat.Clone(), val: val}, nil
}
