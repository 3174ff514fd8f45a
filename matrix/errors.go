// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// call-site context via %w) and tests MUST check them via errors.Is. No
// exported function panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with fmt.Errorf("Op(...): %w", ErrX)
// so callers keep matching with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> shape/index -> dimension mismatch -> literal syntax.

var (
	// ErrInvalidDimensions indicates that a requested size is non-positive
	// (vector dimension, resize target, matrix rows/cols, identity size).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (element, row or column) is outside valid bounds.
	// Public indexers (At/Set/Row/Col) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add on vectors of different length, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrMalformedLiteral signals that a textual vector literal lacks the
	// "[" / "]" framing or contains a token that is not a real number.
	ErrMalformedLiteral = errors.New("matrix: malformed vector literal")

	// ErrBadShape is returned when row-wise input is ragged (rows of unequal length).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilVector indicates that a nil *Vector (receiver or argument) was used.
	ErrNilVector = errors.New("matrix: nil vector")
)

// ErrIndexOutOfBounds names the same condition as ErrOutOfRange.
// Kept as an alias so errors.Is(err, ErrIndexOutOfBounds) remains true.
var ErrIndexOutOfBounds = ErrOutOfRange
