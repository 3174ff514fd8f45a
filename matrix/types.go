// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by Dense, Vector and the kernels.
// Errors live in errors.go; formatting literals in format.go.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Kernels (Mul, Transpose, Add, ...) accept any Matrix and fast-path *Dense.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrIndexOutOfBounds if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrIndexOutOfBounds if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}
