// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise kernels (ew*) over flat float64
//     buffers, shared by Vector (one buffer of length dim) and Dense (one
//     row-major buffer of length r*c).
//
// Design:
//   - All ew* are UNEXPORTED (internal micro-kernels).
//   - Callers validate lengths before calling; kernels never allocate unless
//     they return a fresh buffer.
//
// Determinism & Performance:
//   - Fixed loop order 0..n-1; no hidden allocations.

package matrix

import "math"

// ewShift adds d to every element of dst in place.
// Time: O(n). Space: O(1).
func ewShift(dst []float64, d float64) {
	for i := range dst {
		dst[i] += d
	}
}

// ewScale multiplies every element of dst by d in place.
// Time: O(n). Space: O(1).
func ewScale(dst []float64, d float64) {
	for i := range dst {
		dst[i] *= d
	}
}

// ewAddScaled computes dst[i] += sign*src[i]; len(dst) == len(src) is assumed.
// Time: O(n). Space: O(1).
func ewAddScaled(dst, src []float64, sign float64) {
	for i := range dst {
		dst[i] += sign * src[i]
	}
}

// ewMul computes dst[i] *= src[i]; len(dst) == len(src) is assumed.
// Time: O(n). Space: O(1).
func ewMul(dst, src []float64) {
	for i := range dst {
		dst[i] *= src[i]
	}
}

// ewDot returns Σ a[i]*b[i]; len(a) == len(b) is assumed.
// Time: O(n). Space: O(1).
func ewDot(a, b []float64) float64 {
	sum := ZeroSum
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// ewEqual reports exact element-wise equality of two buffers.
// NaN never equals anything, matching the float64 == operator.
func ewEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// ewClose reports |a-b| ≤ atol + rtol*|b| for a single pair.
// +Inf equals +Inf, -Inf equals -Inf; NaN is never close.
func ewClose(a, b, rtol, atol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// ewAllClose checks ewClose on all pairs of two equal-shape matrices.
// Time: O(r*c). Space: O(1).
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	// Dense fast-path: compare flat buffers directly.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for k := range da.data {
				if !ewClose(da.data[k], db.data[k], rtol, atol) {
					return false, nil
				}
			}
			return true, nil
		}
	}

	// Generic fallback via At.
	var av, bv float64
	var err error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !ewClose(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}
