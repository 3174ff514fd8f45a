// SPDX-License-Identifier: MIT

// Package matrix - Vector: fixed-dimension, owned, real-valued sequence.
//
// Purpose:
//   - Hold exactly Dim() float64 values in an owned slice (never shared).
//   - Guarantee safety at the public surface: At/Set/Resize return errors instead of panicking.
//   - Offer paired operations: XxxInPlace mutates the receiver, Xxx returns a fresh Vector.
//
// Failure policy:
//   - Every fallible operation validates before it mutates; on error the
//     receiver is left exactly as it was.
//
// Complexity quicksheet:
//   - NewVector: O(n); At/Set: O(1); Clone/Resize: O(n); arithmetic: O(n).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxVecAt       = "At"
	ctxVecSet      = "Set"
	ctxVecResize   = "Resize"
	ctxVecAdd      = "Add"
	ctxVecSub      = "Sub"
	ctxVecHadamard = "Hadamard"
)

// vectorErrorf wraps an error with a uniform Vector context and the offending index.
func vectorErrorf(method string, index int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, index, err)
}

// vectorPairErrorf wraps an error raised by a binary operation with both dimensions.
func vectorPairErrorf(method string, v, o *Vector, err error) error {
	return fmt.Errorf("Vector.%s(dim %d, dim %d): %w", method, v.dimOrZero(), o.dimOrZero(), err)
}

// Vector is a dense real-valued vector.
//   - data holds the entries; len(data) == Dim() at all times.
//   - the zero Vector is not usable; construct with NewVector, NewVectorFrom or ParseVector.
type Vector struct {
	data []float64 // owned storage, index 0..Dim()-1
}

var _ fmt.Stringer = (*Vector)(nil)

// NewVector creates a zero vector of dimension dim.
// Returns ErrInvalidDimensions when dim <= 0.
// Complexity: O(dim).
func NewVector(dim int) (*Vector, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("NewVector(%d): %w", dim, ErrInvalidDimensions)
	}

	return &Vector{data: make([]float64, dim)}, nil
}

// NewVectorFrom creates a vector holding a copy of values.
// Returns ErrInvalidDimensions when no values are given.
func NewVectorFrom(values ...float64) (*Vector, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("NewVectorFrom: %w", ErrInvalidDimensions)
	}
	buf := make([]float64, len(values))
	copy(buf, values)

	return &Vector{data: buf}, nil
}

// Dim returns the number of entries.
// Complexity: O(1).
func (v *Vector) Dim() int { return len(v.data) }

// Values returns a copy of the entries; mutating it does not affect v.
func (v *Vector) Values() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// Clone returns a deep copy of v.
// Complexity: O(n).
func (v *Vector) Clone() *Vector {
	buf := make([]float64, len(v.data))
	copy(buf, v.data)

	return &Vector{data: buf}
}

// At returns the value at index or ErrIndexOutOfBounds.
// Complexity: O(1).
func (v *Vector) At(index int) (float64, error) {
	if index < 0 || index >= len(v.data) {
		return 0, vectorErrorf(ctxVecAt, index, ErrIndexOutOfBounds)
	}

	return v.data[index], nil
}

// Set stores val at index or returns ErrIndexOutOfBounds.
// Set is the only single-element mutator.
// Complexity: O(1).
func (v *Vector) Set(index int, val float64) error {
	if index < 0 || index >= len(v.data) {
		return vectorErrorf(ctxVecSet, index, ErrIndexOutOfBounds)
	}
	v.data[index] = val

	return nil
}

// Resize reallocates storage to newDim entries.
// Entries below min(old, new) are preserved, growth is zero-filled and
// entries beyond newDim are dropped. Returns ErrInvalidDimensions when newDim < 1.
// Complexity: O(newDim).
func (v *Vector) Resize(newDim int) error {
	if newDim < 1 {
		return vectorErrorf(ctxVecResize, newDim, ErrInvalidDimensions)
	}
	buf := make([]float64, newDim) // zero-filled by make
	copy(buf, v.data)              // copies min(old, new) entries
	v.data = buf

	return nil
}

// AddScalarInPlace adds d to every entry of v.
func (v *Vector) AddScalarInPlace(d float64) { ewShift(v.data, d) }

// AddScalar returns a new vector with d added to every entry; v is unchanged.
func (v *Vector) AddScalar(d float64) *Vector {
	out := v.Clone()
	out.AddScalarInPlace(d)

	return out
}

// ScaleInPlace multiplies every entry of v by d.
func (v *Vector) ScaleInPlace(d float64) { ewScale(v.data, d) }

// Scale returns a new vector with every entry multiplied by d; v is unchanged.
func (v *Vector) Scale(d float64) *Vector {
	out := v.Clone()
	out.ScaleInPlace(d)

	return out
}

// AddInPlace performs v[i] += o[i].
// Returns ErrDimensionMismatch (v unchanged) when dimensions differ.
func (v *Vector) AddInPlace(o *Vector) error {
	if err := ValidateSameDim(v, o); err != nil {
		return vectorPairErrorf(ctxVecAdd, v, o, err)
	}
	ewAddScaled(v.data, o.data, +1)

	return nil
}

// Add returns v + o as a new vector.
// Returns ErrDimensionMismatch when dimensions differ.
func (v *Vector) Add(o *Vector) (*Vector, error) {
	if err := ValidateSameDim(v, o); err != nil {
		return nil, vectorPairErrorf(ctxVecAdd, v, o, err)
	}
	out := v.Clone()
	ewAddScaled(out.data, o.data, +1)

	return out, nil
}

// SubInPlace performs v[i] -= o[i].
// Returns ErrDimensionMismatch (v unchanged) when dimensions differ.
func (v *Vector) SubInPlace(o *Vector) error {
	if err := ValidateSameDim(v, o); err != nil {
		return vectorPairErrorf(ctxVecSub, v, o, err)
	}
	ewAddScaled(v.data, o.data, -1)

	return nil
}

// Sub returns v - o as a new vector.
func (v *Vector) Sub(o *Vector) (*Vector, error) {
	if err := ValidateSameDim(v, o); err != nil {
		return nil, vectorPairErrorf(ctxVecSub, v, o, err)
	}
	out := v.Clone()
	ewAddScaled(out.data, o.data, -1)

	return out, nil
}

// HadamardInPlace performs v[i] *= o[i].
// Returns ErrDimensionMismatch (v unchanged) when dimensions differ.
func (v *Vector) HadamardInPlace(o *Vector) error {
	if err := ValidateSameDim(v, o); err != nil {
		return vectorPairErrorf(ctxVecHadamard, v, o, err)
	}
	ewMul(v.data, o.data)

	return nil
}

// Hadamard returns the element-wise product v ∘ o as a new vector.
func (v *Vector) Hadamard(o *Vector) (*Vector, error) {
	if err := ValidateSameDim(v, o); err != nil {
		return nil, vectorPairErrorf(ctxVecHadamard, v, o, err)
	}
	out := v.Clone()
	ewMul(out.data, o.data)

	return out, nil
}

// InnerProduct returns Σ a[i]*b[i].
// Returns ErrNilVector for nil operands and ErrDimensionMismatch when the
// dimensions differ; no partial sum is ever computed over a shorter operand.
// Complexity: O(n).
func InnerProduct(a, b *Vector) (float64, error) {
	if err := ValidateSameDim(a, b); err != nil {
		return 0, matrixErrorf(opInnerProduct, err)
	}

	return ewDot(a.data, b.data), nil
}

// Norm returns the Euclidean length √⟨v,v⟩.
func (v *Vector) Norm() float64 {
	return math.Sqrt(ewDot(v.data, v.data))
}

// Equal reports whether o has the same dimension and exactly the same entries.
// A nil o is never equal to a non-nil v.
func (v *Vector) Equal(o *Vector) bool {
	if v == nil || o == nil {
		return v == o
	}

	return ewEqual(v.data, o.data)
}

// String renders v as "[" + " %6.3f " per entry + " ]".
func (v *Vector) String() string {
	var b strings.Builder
	writeRow(&b, v.data)

	return b.String()
}

// dimOrZero is Dim() tolerant of a nil receiver, used in error context only.
func (v *Vector) dimOrZero() int {
	if v == nil {
		return 0
	}

	return len(v.data)
}
