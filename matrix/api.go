// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidDimensions when n <= 0.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// ---------- Linear Algebra aliases ----------

// Product is an alias for Mul: a × b.
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// MatVecMul is an alias for MulVec: m·v with v as a column vector.
func MatVecMul(m Matrix, v *Vector) (*Vector, error) { return MulVec(m, v) }

// Dot is an alias for InnerProduct.
func Dot(a, b *Vector) (float64, error) { return InnerProduct(a, b) }

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - negative rtol, atol are normalized to their absolute values.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// VectorsClose is AllClose for vectors of equal dimension.
// Errors: ErrNilVector, ErrDimensionMismatch.
func VectorsClose(a, b *Vector, rtol, atol float64) (bool, error) {
	if err := ValidateSameDim(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if rtol < 0 {
		rtol = -rtol
	}
	if atol < 0 {
		atol = -atol
	}
	for i := range a.data {
		if !ewClose(a.data[i], b.data[i], rtol, atol) {
			return false, nil
		}
	}

	return true, nil
}
