// Package sym implements symbolic matrices: matrices whose structurally
// nonzero elements are expression trees instead of numbers.
//
// Expressions are immutable and built through constructors (Const, Var, Add,
// Mul) that fold the cheap algebraic identities eagerly: adding zero,
// multiplying by zero or one, and combining two constants never allocate a
// node. Equality is structural; no canonicalization beyond the constructor
// folds is attempted, so Add(a, b) and Add(b, a) are distinct trees.
//
// A Matrix pairs an immutable sparsity.Pattern with one expression per
// structural nonzero. Structural zeros read as Const(0). The Raw* methods
// satisfy the same capability contract as the numeric representation, so
// symbolic matrices flow through the package algebra free functions
// unchanged: concatenation and splitting move expression nodes, and products
// build sum-of-product trees in deterministic term order.
package sym
