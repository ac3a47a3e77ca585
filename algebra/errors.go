// SPDX-License-Identifier: MIT
package algebra

import (
	"errors"
	"fmt"
)

// Sentinel errors for the algebra package. Every failure returned by the
// free functions wraps exactly one of these, so callers can branch with
// errors.Is regardless of the operation tag and detail text.
var (
	// ErrInvalidArgument is returned for malformed requests: empty operand
	// groups, non-positive split increments, or boundary sequences that are
	// not monotone partitions starting at zero.
	ErrInvalidArgument = errors.New("algebra: invalid argument")

	// ErrShapeMismatch is returned when operand shapes are incompatible
	// with the requested operation.
	ErrShapeMismatch = errors.New("algebra: shape mismatch")
)

// Operation tags used to prefix wrapped errors.
const (
	opHorzcat        = "Horzcat"
	opVertcat        = "Vertcat"
	opBlkdiag        = "Blkdiag"
	opHorzsplit      = "Horzsplit"
	opVertsplit      = "Vertsplit"
	opHorzsplitEvery = "HorzsplitEvery"
	opVertsplitEvery = "VertsplitEvery"
	opMul            = "Mul"
	opMulAdd         = "MulAdd"
	opMulChain       = "MulChain"
)

// opError tags err with the public operation that failed.
func opError(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
