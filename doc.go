// Package linalg is a small, dense linear-algebra toolkit: vectors and
// matrices of float64 with the arithmetic you reach for first, plus a YAML
// job runner and a CLI on top.
//
// 🚀 What is in linalg?
//
//   - Vectors: parse "[ 1.0 2.0 ]" literals, scale, shift, add, Hadamard,
//     inner product, resize, exact equality and fixed-width display
//   - Matrices: row-major Dense, identity, transpose, products with matrices
//     and column vectors, element-wise add/sub/scale/Hadamard
//   - Jobs: named inputs and ordered steps in YAML, evaluated with context
//     cancellation and structured logs
//   - CLI: linalg eval | vector | identity | version
//
// ✨ Guarantees
//
//   - Sentinel errors matched with errors.Is (ErrInvalidDimensions,
//     ErrOutOfRange, ErrDimensionMismatch, ErrMalformedLiteral)
//   - Operations validate before mutating; a failed call changes nothing
//   - Deterministic loop order; no hidden goroutines
//
// Layout:
//
//	matrix/       — Vector, Dense, validators and kernels
//	job/          — YAML job model, loader and evaluator
//	cmd/linalg/   — command-line entry point
//	examples/     — runnable programs (power iteration, job pipeline)
//
// Quick example:
//
//	$ linalg vector "[ 1 2 3 ]" --scale 2
//	[  2.000   4.000   6.000  ]
//
//	go get github.com/katalvlaran/linalg/matrix
package linalg
