// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating nil/shape/dimension checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, O(1) and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is rejected as well.
// Errors: ErrNilMatrix.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVectorNotNil ensures the vector reference is non-nil.
// Errors: ErrNilVector.
func ValidateVectorNotNil(v *Vector) error {
	if v == nil {
		return validatorErrorf("ValidateVectorNotNil", ErrNilVector)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Errors: ErrDimensionMismatch.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape combines ValidateNotNil on both operands with ValidateSameShape.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return ValidateSameShape(a, b)
}

// ValidateSameDim ensures both vectors are non-nil and share a dimension.
// Errors: ErrNilVector, ErrDimensionMismatch.
func ValidateSameDim(a, b *Vector) error {
	if err := ValidateVectorNotNil(a); err != nil {
		return validatorErrorf("ValidateSameDim", err)
	}
	if err := ValidateVectorNotNil(b); err != nil {
		return validatorErrorf("ValidateSameDim", err)
	}
	if len(a.data) != len(b.data) {
		return validatorErrorf("ValidateSameDim", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures v is non-nil and has exactly n entries.
// Errors: ErrNilVector, ErrDimensionMismatch.
func ValidateVecLen(v *Vector, n int) error {
	if v == nil {
		return validatorErrorf("ValidateVecLen", ErrNilVector)
	}
	if len(v.data) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulVecCompatible ensures m.Cols == v.Dim, inputs non-nil.
// Errors: ErrNilMatrix, ErrNilVector, ErrDimensionMismatch.
func ValidateMulVecCompatible(m Matrix, v *Vector) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateMulVecCompatible", err)
	}
	if err := ValidateVecLen(v, m.Cols()); err != nil {
		return validatorErrorf("ValidateMulVecCompatible", err)
	}

	return nil
}
