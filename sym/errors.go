// SPDX-License-Identifier: MIT
package sym

import "errors"

// Sentinel errors for the sym package. Structural failures are reported
// with the sentinels of package sparsity, since the structural kernels live
// there.
var (
	// ErrNilPattern is returned when a constructor receives a nil pattern.
	ErrNilPattern = errors.New("sym: nil sparsity pattern")

	// ErrNilMatrix is returned when an operation receives a nil operand.
	ErrNilMatrix = errors.New("sym: nil matrix")

	// ErrNilExpr is returned when a nil expression is supplied for a
	// structurally nonzero position.
	ErrNilExpr = errors.New("sym: nil expression")

	// ErrElemCount is returned when the number of supplied expressions does
	// not match the nonzero count of the pattern.
	ErrElemCount = errors.New("sym: element count mismatch")

	// ErrOutOfRange is returned when an element access lies outside the
	// matrix shape.
	ErrOutOfRange = errors.New("sym: index out of range")
)
