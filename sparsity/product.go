// SPDX-License-Identifier: MIT
package sparsity

import (
	"fmt"
	"sort"
)

// ProductFold computes the structural product pattern of x·y and, in the
// same pass, folds the element terms of every structurally nonzero result
// position. xv and yv hold the operands' elements in column-major nonzero
// order; mul combines one term, add accumulates terms of a position. The
// returned slice is aligned to the returned pattern.
//
// A result position is structurally nonzero whenever at least one term
// contributes, regardless of the term's value, so the structure depends only
// on the operand patterns. Terms of a position accumulate in ascending
// inner-index order, which keeps floating-point results reproducible.
//
// Fails with ErrShapeMismatch when x.Cols() != y.Rows() and with ErrValueLen
// when an element slice does not match its pattern.
//
// Complexity: O(flops + result nnz · log) where flops is the number of
// structural term pairs. Deterministic.
func ProductFold[T any](x, y *Pattern, xv, yv []T, mul, add func(a, b T) T) (*Pattern, []T, error) {
	if x.cols != y.rows {
		return nil, nil, fmt.Errorf("ProductFold: inner dimensions %d vs %d: %w", x.cols, y.rows, ErrShapeMismatch)
	}
	if len(xv) != len(x.rowidx) || len(yv) != len(y.rowidx) {
		return nil, nil, fmt.Errorf("ProductFold: %d/%d elements for %d/%d nonzeros: %w",
			len(xv), len(yv), len(x.rowidx), len(y.rowidx), ErrValueLen)
	}

	rows, cols := x.rows, y.cols
	colptr := make([]int, cols+1)
	rowidx := make([]int, 0)
	vals := make([]T, 0)

	// Per-column dense accumulator: mark[i] == j marks row i live in the
	// current column, folded[i] holds its running sum.
	mark := make([]int, rows)
	for i := range mark {
		mark[i] = -1
	}
	folded := make([]T, rows)

	for j := 0; j < cols; j++ {
		start := len(rowidx)
		for ky := y.colptr[j]; ky < y.colptr[j+1]; ky++ {
			inner := y.rowidx[ky]
			for kx := x.colptr[inner]; kx < x.colptr[inner+1]; kx++ {
				i := x.rowidx[kx]
				term := mul(xv[kx], yv[ky])
				if mark[i] != j {
					mark[i] = j
					folded[i] = term
					rowidx = append(rowidx, i)
				} else {
					folded[i] = add(folded[i], term)
				}
			}
		}
		seg := rowidx[start:]
		sort.Ints(seg)
		for _, i := range seg {
			vals = append(vals, folded[i])
		}
		colptr[j+1] = len(rowidx)
	}
	pat := &Pattern{rows: rows, cols: cols, colptr: colptr, rowidx: rowidx}
	return pat, vals, nil
}

// MaskedAccumFold computes z + x·y restricted to the sparsity of z: the
// result reuses z's pattern, each of its nonzeros receives the matching
// accumulated product terms, and product terms falling on structural zeros
// of z are discarded. The returned slice is aligned to z's pattern; callers
// pair it with z.Sparsity().Clone().
//
// Fails with ErrShapeMismatch when the shapes do not satisfy
// x.Rows()==z.Rows(), x.Cols()==y.Rows(), y.Cols()==z.Cols(), and with
// ErrValueLen when an element slice does not match its pattern.
//
// Complexity: O(flops over columns where z has nonzeros). Deterministic.
func MaskedAccumFold[T any](x, y, z *Pattern, xv, yv, zv []T, mul, add func(a, b T) T) ([]T, error) {
	if x.cols != y.rows {
		return nil, fmt.Errorf("MaskedAccumFold: inner dimensions %d vs %d: %w", x.cols, y.rows, ErrShapeMismatch)
	}
	if x.rows != z.rows || y.cols != z.cols {
		return nil, fmt.Errorf("MaskedAccumFold: product is %dx%d, target is %dx%d: %w",
			x.rows, y.cols, z.rows, z.cols, ErrShapeMismatch)
	}
	if len(xv) != len(x.rowidx) || len(yv) != len(y.rowidx) || len(zv) != len(z.rowidx) {
		return nil, fmt.Errorf("MaskedAccumFold: element slices do not match patterns: %w", ErrValueLen)
	}

	out := make([]T, len(zv))
	mark := make([]int, z.rows)
	for i := range mark {
		mark[i] = -1
	}
	folded := make([]T, z.rows)

	for j := 0; j < z.cols; j++ {
		zs, ze := z.colptr[j], z.colptr[j+1]
		if zs == ze {
			continue // nothing survives the mask in this column
		}
		for ky := y.colptr[j]; ky < y.colptr[j+1]; ky++ {
			inner := y.rowidx[ky]
			for kx := x.colptr[inner]; kx < x.colptr[inner+1]; kx++ {
				i := x.rowidx[kx]
				term := mul(xv[kx], yv[ky])
				if mark[i] != j {
					mark[i] = j
					folded[i] = term
				} else {
					folded[i] = add(folded[i], term)
				}
			}
		}
		for kz := zs; kz < ze; kz++ {
			i := z.rowidx[kz]
			if mark[i] == j {
				out[kz] = add(zv[kz], folded[i])
			} else {
				out[kz] = zv[kz]
			}
		}
	}
	return out, nil
}
