// Package algebra provides the uniform matrix-algebra surface of sparsix:
// free functions for concatenation, splitting, block-diagonal assembly,
// matrix products and transposition that work generically over any
// representation satisfying the Operand contract.
//
// The same call shapes a sparsity pattern, a numeric matrix or a symbolic
// matrix:
//
//	wide, err := algebra.Horzcat(a, b, c)      // any Operand
//	parts, err := algebra.HorzsplitEvery(w, 2) // inverse of Horzcat
//	prod, err := algebra.MulChain(a, b, c)     // left fold (a·b)·c
//
// Free functions validate arguments and shapes, then delegate to the
// operands' Raw* primitives through the first operand of the group. All
// failures wrap one of two sentinels: ErrInvalidArgument for malformed
// requests (empty groups, bad boundaries, non-positive increments) and
// ErrShapeMismatch for incompatible operand shapes. Validation always
// precedes computation, so a failed call performs no partial work.
//
// Guarantees, for every conforming representation:
//
//   - Purity: operands are never mutated; results are fresh values.
//   - Round trips: Horzcat(Horzsplit(x, offs)...) equals x for any valid
//     boundary sequence, and likewise for the vertical pair.
//   - Sparsity preservation: structural zeros never densify; products keep
//     a position only when at least one structural term contributes.
//   - Determinism: identical inputs produce identical results, including
//     the term order of floating-point accumulation.
package algebra
