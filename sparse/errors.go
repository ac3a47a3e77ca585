// SPDX-License-Identifier: MIT
package sparse

import "errors"

// Sentinel errors for the sparse package. Structural failures (shape
// mismatches, invalid split boundaries) are reported with the sentinels of
// package sparsity, since the structural kernels live there.
var (
	// ErrNilPattern is returned when a constructor receives a nil pattern.
	ErrNilPattern = errors.New("sparse: nil sparsity pattern")

	// ErrNilMatrix is returned when an operation receives a nil operand.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrValueCount is returned when the number of supplied values does not
	// match the nonzero count of the pattern.
	ErrValueCount = errors.New("sparse: value count mismatch")

	// ErrOutOfRange is returned when an element access lies outside the
	// matrix shape.
	ErrOutOfRange = errors.New("sparse: index out of range")
)
