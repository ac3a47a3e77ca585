// Package sparse implements numeric matrices stored against a shared
// compressed-column sparsity pattern.
//
// A Matrix pairs an immutable sparsity.Pattern with one float64 per
// structurally nonzero position, in column-major nonzero order. Positions
// absent from the pattern are structural zeros and read as exactly 0;
// positions present in the pattern may still hold the numeric value 0,
// which keeps the distinction between "known zero by structure" and
// "zero by value".
//
// Matrices are immutable: every operation returns a fresh matrix and no
// operation mutates its operands, so values can be shared between
// goroutines without synchronization.
//
// The Raw* methods satisfy the capability contract consumed by package
// algebra; most callers should go through the algebra free functions, which
// add argument validation and uniform error tagging.
package sparse
