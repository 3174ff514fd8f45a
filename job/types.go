// SPDX-License-Identifier: MIT

package job

import (
	"errors"

	"github.com/katalvlaran/linalg/matrix"
)

// Sentinel errors for job validation and evaluation. Matrix failures are not
// remapped: errors.Is(err, matrix.ErrDimensionMismatch) keeps working through
// the step context added by Evaluate.
var (
	// ErrUnknownOp is returned when a step names an operation that does not exist.
	ErrUnknownOp = errors.New("job: unknown operation")

	// ErrUnknownName is returned when a step references an unbound name.
	ErrUnknownName = errors.New("job: unknown operand name")

	// ErrArity is returned when a step passes the wrong number of operands.
	ErrArity = errors.New("job: wrong number of operands")

	// ErrOperandKind is returned when an operand has the wrong kind for the op
	// (e.g. a scalar passed to transpose).
	ErrOperandKind = errors.New("job: operand kind not supported by operation")

	// ErrMissingOut is returned when a step does not name its result.
	ErrMissingOut = errors.New("job: step has no output name")

	// ErrDuplicateName is returned when the same name is declared twice in the inputs.
	ErrDuplicateName = errors.New("job: duplicate input name")
)

// Op names accepted in Step.Op.
const (
	OpAdd       = "add"
	OpSub       = "sub"
	OpHadamard  = "hadamard"
	OpScale     = "scale"
	OpShift     = "shift"
	OpDot       = "dot"
	OpNorm      = "norm"
	OpTranspose = "transpose"
	OpIdentity  = "identity"
	OpMul       = "mul"
	OpMulVec    = "mulvec"
	OpRow       = "row"
	OpResize    = "resize"
)

// Spec is the decoded form of a job file.
//
//	vectors:
//	  x: "[ 1.0 1.0 ]"
//	matrices:
//	  A: [[1, 2], [3, 4]]
//	steps:
//	  - {op: mulvec, args: [A, x], out: y}
type Spec struct {
	Vectors  map[string]string      `yaml:"vectors"`
	Matrices map[string][][]float64 `yaml:"matrices"`
	Steps    []Step                 `yaml:"steps"`
}

// Step is one operation; its result is bound to Out for later steps.
type Step struct {
	Op     string   `yaml:"op"`
	Args   []string `yaml:"args"`
	Out    string   `yaml:"out"`
	Scalar float64  `yaml:"scalar,omitempty"` // scale, shift
	Size   int      `yaml:"size,omitempty"`   // identity, resize
	Index  int      `yaml:"index,omitempty"`  // row
}

// Kind tags the payload carried by a Value.
type Kind int

const (
	KindScalar Kind = iota + 1
	KindVector
	KindMatrix
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindVector:
		return "vector"
	case KindMatrix:
		return "matrix"
	default:
		return "invalid"
	}
}

// Value is a tagged union of the three result kinds. Exactly one payload is set.
type Value struct {
	Kind   Kind
	Scalar float64
	Vector *matrix.Vector
	Matrix *matrix.Dense
}

func scalarValue(f float64) Value { return Value{Kind: KindScalar, Scalar: f} }
func vectorValue(v *matrix.Vector) Value { return Value{Kind: KindVector, Vector: v} }
func matrixValue(m *matrix.Dense) Value { return Value{Kind: KindMatrix, Matrix: m} }

// Result is the value produced by one step, in step order.
type Result struct {
	Step  int
	Name  string
	Op    string
	Value Value
}
