// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row/Col return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Convert rows and columns to/from Vector values by copy, never by reference.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/Copy: O(r*c); Row/SetRow: O(c); Col: O(r).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRow    = "Row"
	ctxCol    = "Col"
	ctxSetRow = "SetRow"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel is preserved for errors.Is.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 1 and fixed for the life of the value.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate the incoming rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate the requested shape, not any field default.
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	// make() zero-fills deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewDenseFromRows builds a Dense from a slice of equal-length rows (values are copied).
// Errors:
//   - ErrInvalidDimensions when there are no rows or the first row is empty.
//   - ErrBadShape when rows have different lengths.
//
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewDenseFromRows: %w", ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d values, want %d: %w", i, len(row), c, ErrBadShape)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with their own method context.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Set is the only element mutator on Dense; the shape never changes.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns an independent Vector copy of row i.
// Errors: ErrOutOfRange when i is not in [0, Rows()).
// Complexity: O(c).
func (m *Dense) Row(i int) (*Vector, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	buf := make([]float64, m.c)
	copy(buf, m.data[i*m.c:(i+1)*m.c])

	return &Vector{data: buf}, nil
}

// Col returns an independent Vector copy of column j.
// Errors: ErrOutOfRange when j is not in [0, Cols()).
// Complexity: O(r).
func (m *Dense) Col(j int) (*Vector, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	buf := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		buf[i] = m.data[i*m.c+j]
	}

	return &Vector{data: buf}, nil
}

// SetRow copies the entries of v into row i.
// Errors (m unchanged on failure):
//   - ErrOutOfRange when i is invalid.
//   - ErrNilVector, ErrDimensionMismatch when v is nil or v.Dim() != Cols().
//
// Complexity: O(c).
func (m *Dense) SetRow(i int, v *Vector) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxSetRow, i, 0, ErrOutOfRange)
	}
	if err := ValidateVecLen(v, m.c); err != nil {
		return denseErrorf(ctxSetRow, i, 0, err)
	}
	copy(m.data[i*m.c:(i+1)*m.c], v.data)

	return nil
}

// Clone returns a deep copy as a Matrix (dynamic type *Dense).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix { return m.Copy() }

// Copy returns a deep copy with its concrete type.
// Mutations of the copy never affect m.
// Complexity: O(r*c).
func (m *Dense) Copy() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// T returns the transpose of m as a new Dense; m is not mutated.
// Complexity: O(r*c).
func (m *Dense) T() *Dense {
	res := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	transposeInto(res.data, m.data, m.r, m.c)

	return res
}

// Equal reports whether o has the same shape and exactly equal entries.
// No tolerance is applied; see AllClose for approximate comparison.
// Complexity: O(r*c).
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}

	return ewEqual(m.data, o.data)
}

// String renders one bracketed row per line, each value as " %6.3f ".
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ { // iterate rows deterministically
		writeRow(&b, m.data[i*m.c:(i+1)*m.c])
		b.WriteString(_fmtLineEnd)
	}

	return b.String()
}
