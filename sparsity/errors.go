// SPDX-License-Identifier: MIT
package sparsity

import "errors"

// Sentinel errors for the sparsity package.
// All constructors and structural kernels wrap exactly these sentinels, so
// callers can branch with errors.Is regardless of the added context.
var (
	// ErrBadShape is returned when a requested shape is negative or when
	// CCS arrays do not describe a well-formed pattern.
	ErrBadShape = errors.New("sparsity: invalid shape")

	// ErrCoordOutOfRange is returned when a coordinate lies outside the
	// declared rows×cols bounds.
	ErrCoordOutOfRange = errors.New("sparsity: coordinate out of range")

	// ErrShapeMismatch is returned when the shapes of two or more patterns
	// are incompatible for the requested structural operation.
	ErrShapeMismatch = errors.New("sparsity: shape mismatch")

	// ErrEmptyGroup is returned when a group operation receives no operands.
	ErrEmptyGroup = errors.New("sparsity: empty group")

	// ErrOffsetInvalid is returned when a split boundary sequence is not a
	// complete, monotone partition of the dimension being split.
	ErrOffsetInvalid = errors.New("sparsity: invalid offset sequence")

	// ErrValueLen is returned when a value slice does not match the nonzero
	// count of the pattern it is paired with.
	ErrValueLen = errors.New("sparsity: value slice length mismatch")
)
