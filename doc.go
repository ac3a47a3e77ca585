// Package sparsix is your in-memory toolkit for building, combining, and
// multiplying sparse matrices — structural patterns, numeric values and
// symbolic expressions behind one uniform algebra.
//
// 🚀 What is sparsix?
//
//	A modern, allocation-conscious library that brings together:
//		• Sparsity patterns: compressed-column structure, set algebra, transpose maps
//		• Numeric matrices: float64 values bound to a shared immutable pattern
//		• Symbolic matrices: expression trees that fold constants as they grow
//		• One generic algebra: Horzcat, Vertcat, Blkdiag, splits, Mul, MulAdd,
//		  MulChain and Transpose, written once for every representation
//		• Document parsing: pluggable XML/YAML front-ends feeding one node tree
//
// ✨ Why choose sparsix?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – pure operations, immutable inputs, typed errors
//   - Deterministic – column-major walks produce identical structure everywhere
//   - Extensible – implement the operand contract once, inherit the whole algebra
//
// Under the hood, everything is organized under five subpackages:
//
//	algebra/  — generic free functions over any operand + offset helpers
//	sparsity/ — compressed-column patterns, concat/split/transpose kernels
//	sparse/   — numeric matrices (float64 per stored position)
//	sym/      — symbolic matrices (expression tree per stored position)
//	docparse/ — format registry turning XML/YAML documents into node trees
//
// Quick ASCII example:
//
//	    *.    .*        *..*
//	    .* ++ *.   →    .**.
//
//	horizontal concatenation glues columns; values follow their columns.
//
// Dive into the per-package docs for the operand contract, the partition
// rules shared by every split, and the structural-zero conventions.
//
//	go get github.com/kvissel/sparsix
package sparsix
