// SPDX-License-Identifier: MIT
package docparse

import "errors"

// Sentinel errors for the docparse package.
var (
	// ErrInvalidName is returned when a parser is registered under an
	// empty name.
	ErrInvalidName = errors.New("docparse: invalid parser name")

	// ErrNilFactory is returned when a parser is registered without a
	// factory.
	ErrNilFactory = errors.New("docparse: nil parser factory")

	// ErrDuplicateParser is returned when a name is registered twice.
	ErrDuplicateParser = errors.New("docparse: parser already registered")

	// ErrUnknownParser is returned when no parser is registered under the
	// requested name.
	ErrUnknownParser = errors.New("docparse: unknown parser")

	// ErrMalformed is returned when a document cannot be parsed into the
	// canonical node tree.
	ErrMalformed = errors.New("docparse: malformed document")
)
