// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// matrix-vector multiplication, transpose and scalar scaling. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches.
//
// Notes:
//   - Every kernel returns a freshly allocated *Dense; operands are never mutated.
//   - *Dense operands take a flat-slice fast path; other Matrix implementations
//     go through At/Set with identical loop order.

package matrix

import "fmt"

// ZeroSum is the initial value for dot-product accumulators.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd          = "Add"
	opSub          = "Sub"
	opMul          = "Mul"
	opMulVec       = "MulVec"
	opTranspose    = "Transpose"
	opScale        = "Scale"
	opHadamard     = "Hadamard"
	opInnerProduct = "InnerProduct"
	opIdentity     = "Identity"
	opAllClose     = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
// Complexity: O(r*c).
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := denseOf(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Dense fast-path on the right operand.
	if db, ok := b.(*Dense); ok {
		ewAddScaled(res.data, db.data, sign)
		return res, nil
	}

	// Fallback via At.
	var bv float64
	for i := 0; i < res.r; i++ {
		for j := 0; j < res.c; j++ {
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*res.c+j] += sign * bv
		}
	}

	return res, nil
}

// Add returns a + b element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a - b element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns alpha*m as a new Dense.
// Errors: ErrNilMatrix.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	ewScale(res.data, alpha)

	return res, nil
}

// Hadamard returns the element-wise product a ∘ b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Hadamard(a, b Matrix) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	res, err := denseOf(a)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	if db, ok := b.(*Dense); ok {
		ewMul(res.data, db.data)
		return res, nil
	}

	var bv float64
	for i := 0; i < res.r; i++ {
		for j := 0; j < res.c; j++ {
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opHadamard, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*res.c+j] *= bv
		}
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides;
//     otherwise use i→j→k via At.
//
// Returns:
//   - *Dense C with shape (A.Rows × B.Cols), C[i][j] = Σ_k A[i][k]*B[k][j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)

	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k; db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// MulVec computes y = m·v treating v as a column vector.
// y[i] = Σ_k m[i][k]*v[k]; y.Dim() == m.Rows().
//
// Errors:
//   - ErrNilMatrix, ErrNilVector, ErrDimensionMismatch (m.Cols != v.Dim).
//
// Complexity: Time O(r*c), Space O(r).
func MulVec(m Matrix, v *Vector) (*Vector, error) {
	if err := ValidateMulVecCompatible(m, v); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := &Vector{data: make([]float64, rows)}

	// Fast-path: one flat dot-product per row.
	if d, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			y.data[i] = ewDot(d.data[i*cols:(i+1)*cols], v.data)
		}
		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var mv float64
	var err error
	for i := 0; i < rows; i++ {
		acc := ZeroSum
		for k := 0; k < cols; k++ {
			if mv, err = m.At(i, k); err != nil {
				return nil, matrixErrorf(opMulVec, fmt.Errorf("At(%d,%d): %w", i, k, err))
			}
			acc += mv * v.data[k]
		}
		y.data[i] = acc
	}

	return y, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// result[c][r] = m[r][c]; the input is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if dm, ok := m.(*Dense); ok {
		return dm.T(), nil
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// transposeInto writes the transpose of the rows×cols buffer src into dst.
// len(dst) == len(src) == rows*cols is assumed.
func transposeInto(dst, src []float64, rows, cols int) {
	var base int
	for i := 0; i < rows; i++ {
		base = i * cols
		for j := 0; j < cols; j++ {
			dst[j*rows+i] = src[base+j]
		}
	}
}

// denseOf materializes any Matrix as a fresh *Dense copy.
func denseOf(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Copy(), nil
	}
	res, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < res.r; i++ {
		for j := 0; j < res.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			res.data[i*res.c+j] = v
		}
	}

	return res, nil
}
