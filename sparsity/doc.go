// Package sparsity implements the compressed-column sparsity pattern shared
// by every matrix representation in sparsix.
//
// A Pattern records which positions of a rows×cols matrix are structurally
// nonzero. Positions absent from the pattern are structural zeros: they are
// treated as exactly zero and never stored. The pattern is immutable after
// construction, so values may be shared freely between goroutines and
// between the matrices that reference them.
//
// Storage is compressed-column (CCS): column pointers plus row indices,
// sorted strictly ascending within each column. The k-th stored position in
// column-major order is the slot a value-bearing representation (package
// sparse, package sym) uses for its k-th element.
//
// Besides the set algebra (Union, Intersect) the package provides the
// structural kernels behind concatenation, splitting, block-diagonal
// assembly, transposition and products. The *Map variants additionally
// return how nonzero slots move, so value-bearing representations reuse the
// structural walk instead of re-deriving it.
//
// Pattern itself satisfies the algebra capability contract: concatenating,
// splitting or multiplying bare patterns yields the structure the same
// operation would give a value-bearing matrix.
package sparsity
