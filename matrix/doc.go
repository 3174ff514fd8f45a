// Package matrix provides dense, real-valued Vector and Dense matrix value
// types with the standard linear-algebra operations: bounds-checked element
// access, scalar and element-wise arithmetic, transpose, identity
// construction, matrix×matrix and matrix×vector products and the inner product.
//
// The package provides:
//
//   - Vector: fixed-dimension owned sequence (NewVector, NewVectorFrom,
//     ParseVector for literals like "[ 1.0 2.5 -3.0 ]"), with paired
//     XxxInPlace / Xxx operations and an explicit Resize.
//   - Dense: row-major r×c grid implementing the Matrix interface, with
//     Row/Col/SetRow conversions to and from Vector by copy.
//   - Kernels: Mul, MulVec, Transpose, Add, Sub, Scale, Hadamard, InnerProduct.
//   - Sentinel errors (errors.go) matched with errors.Is: ErrInvalidDimensions,
//     ErrIndexOutOfBounds, ErrDimensionMismatch, ErrMalformedLiteral.
//
// Values are not safe for concurrent mutation; callers serialize access.
// No operation logs; failures are returned to the caller and leave receivers
// unchanged.
package matrix
