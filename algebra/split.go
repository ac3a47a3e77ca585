// SPDX-License-Identifier: MIT
package algebra

// Horzsplit cuts x into column groups along offsets: boundaries start at 0
// and never decrease, and group i spans the columns [offsets[i],
// offsets[i+1]). When the final boundary is below x.Cols(), the last group
// runs to the end of the dimension. Splitting is the inverse of Horzcat:
// concatenating the pieces restores x exactly, values and structure alike.
//
// Fails with ErrInvalidArgument on malformed boundaries.
func Horzsplit[M Operand[M]](x M, offsets []int) ([]M, error) {
	complete, err := CompleteOffsets(offsets, x.Cols())
	if err != nil {
		return nil, opError(opHorzsplit, err)
	}
	out, err := x.RawHorzsplit(complete)
	if err != nil {
		return nil, opError(opHorzsplit, err)
	}
	return out, nil
}

// HorzsplitEvery cuts x into groups of incr consecutive columns, the last
// group taking whatever remains. It builds the stride boundaries and
// delegates to Horzsplit. incr must be at least 1.
//
// Fails with ErrInvalidArgument on a non-positive increment.
func HorzsplitEvery[M Operand[M]](x M, incr int) ([]M, error) {
	offsets, err := StrideOffsets(x.Cols(), incr)
	if err != nil {
		return nil, opError(opHorzsplitEvery, err)
	}
	return Horzsplit(x, offsets)
}

// Vertsplit cuts x into row groups along offsets, the row-wise counterpart
// of Horzsplit: group i spans the rows [offsets[i], offsets[i+1]), and the
// last group runs to the end when the final boundary is below x.Rows().
// Concatenating the pieces with Vertcat restores x exactly.
//
// Fails with ErrInvalidArgument on malformed boundaries.
func Vertsplit[M Operand[M]](x M, offsets []int) ([]M, error) {
	complete, err := CompleteOffsets(offsets, x.Rows())
	if err != nil {
		return nil, opError(opVertsplit, err)
	}
	out, err := x.RawVertsplit(complete)
	if err != nil {
		return nil, opError(opVertsplit, err)
	}
	return out, nil
}

// VertsplitEvery cuts x into groups of incr consecutive rows, the last
// group taking whatever remains. incr must be at least 1.
//
// Fails with ErrInvalidArgument on a non-positive increment.
func VertsplitEvery[M Operand[M]](x M, incr int) ([]M, error) {
	offsets, err := StrideOffsets(x.Rows(), incr)
	if err != nil {
		return nil, opError(opVertsplitEvery, err)
	}
	return Vertsplit(x, offsets)
}
