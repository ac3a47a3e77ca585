// SPDX-License-Identifier: MIT
package algebra

import "fmt"

// Validation helpers shared by the free functions. Each returns a bare
// wrapped sentinel; the caller adds the operation tag. They are exported so
// that external Operand implementations can reuse them in their own
// entry points.

// ValidateGroup rejects empty operand groups.
func ValidateGroup[M Operand[M]](group []M) error {
	if len(group) == 0 {
		return fmt.Errorf("empty operand group: %w", ErrInvalidArgument)
	}
	return nil
}

// ValidateSameRows requires every operand to share the row count of the
// first.
func ValidateSameRows[M Operand[M]](group []M) error {
	rows := group[0].Rows()
	for i, g := range group {
		if g.Rows() != rows {
			return fmt.Errorf("operand %d is %dx%d, want %d rows: %w",
				i, g.Rows(), g.Cols(), rows, ErrShapeMismatch)
		}
	}
	return nil
}

// ValidateSameCols requires every operand to share the column count of the
// first.
func ValidateSameCols[M Operand[M]](group []M) error {
	cols := group[0].Cols()
	for i, g := range group {
		if g.Cols() != cols {
			return fmt.Errorf("operand %d is %dx%d, want %d cols: %w",
				i, g.Rows(), g.Cols(), cols, ErrShapeMismatch)
		}
	}
	return nil
}

// ValidateMulShapes requires the inner dimensions of x·y to agree.
func ValidateMulShapes[M Operand[M]](x, y M) error {
	if x.Cols() != y.Rows() {
		return fmt.Errorf("inner dimensions %d and %d: %w", x.Cols(), y.Rows(), ErrShapeMismatch)
	}
	return nil
}

// ValidateMulAddShapes requires x·y to be well formed and to match the
// shape of the accumulation target z.
func ValidateMulAddShapes[M Operand[M]](x, y, z M) error {
	if err := ValidateMulShapes(x, y); err != nil {
		return err
	}
	if x.Rows() != z.Rows() || y.Cols() != z.Cols() {
		return fmt.Errorf("product is %dx%d, target is %dx%d: %w",
			x.Rows(), y.Cols(), z.Rows(), z.Cols(), ErrShapeMismatch)
	}
	return nil
}

// ValidateChainShapes requires adjacent operands of a product chain to be
// multiplication-compatible.
func ValidateChainShapes[M Operand[M]](group []M) error {
	for i := 1; i < len(group); i++ {
		if group[i-1].Cols() != group[i].Rows() {
			return fmt.Errorf("operands %d and %d: inner dimensions %d and %d: %w",
				i-1, i, group[i-1].Cols(), group[i].Rows(), ErrShapeMismatch)
		}
	}
	return nil
}
