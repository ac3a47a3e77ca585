// SPDX-License-Identifier: MIT
package algebra

import "fmt"

// CompleteOffsets validates caller-supplied split boundaries against a
// dimension of the given size and returns the completed partition the raw
// split primitives expect.
//
// Boundaries must start at 0, never decrease, and never exceed size. When
// the final boundary is below size, the last group implicitly runs to the
// end of the dimension and size is appended. The completed partition always
// describes at least one group, so splitting a zero-sized dimension with
// offsets [0] yields one empty piece rather than none.
//
// The input slice is never modified. Fails with ErrInvalidArgument.
func CompleteOffsets(offsets []int, size int) ([]int, error) {
	if size < 0 {
		return nil, fmt.Errorf("dimension size %d: %w", size, ErrInvalidArgument)
	}
	if len(offsets) == 0 {
		return nil, fmt.Errorf("need at least one boundary: %w", ErrInvalidArgument)
	}
	if offsets[0] != 0 {
		return nil, fmt.Errorf("first boundary %d, want 0: %w", offsets[0], ErrInvalidArgument)
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return nil, fmt.Errorf("boundary %d after %d decreases: %w", offsets[i], offsets[i-1], ErrInvalidArgument)
		}
	}
	last := offsets[len(offsets)-1]
	if last > size {
		return nil, fmt.Errorf("boundary %d exceeds dimension %d: %w", last, size, ErrInvalidArgument)
	}

	out := make([]int, len(offsets), len(offsets)+1)
	copy(out, offsets)
	if last != size || len(out) == 1 {
		out = append(out, size)
	}
	return out, nil
}

// StrideOffsets builds the boundary sequence that cuts a dimension of the
// given size into groups of incr consecutive indices, the last group taking
// whatever remains: boundaries 0, incr, 2·incr, … below size, then size
// itself. incr must be at least 1. Fails with ErrInvalidArgument.
func StrideOffsets(size, incr int) ([]int, error) {
	if incr < 1 {
		return nil, fmt.Errorf("increment %d, want at least 1: %w", incr, ErrInvalidArgument)
	}
	if size < 0 {
		return nil, fmt.Errorf("dimension size %d: %w", size, ErrInvalidArgument)
	}
	out := make([]int, 0, size/incr+2)
	for b := 0; b < size; b += incr {
		out = append(out, b)
	}
	return append(out, size), nil
}
