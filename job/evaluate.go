// SPDX-License-Identifier: MIT

package job

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/linalg/matrix"
)

// opFunc computes one step from its resolved operands.
type opFunc func(s Step, args []Value) (Value, error)

// opEntry describes an operation: its operand count and implementation.
type opEntry struct {
	arity int
	fn    opFunc
}

// ops is the dispatch table for Step.Op.
var ops = map[string]opEntry{
	OpAdd:       {2, evalAdd},
	OpSub:       {2, evalSub},
	OpHadamard:  {2, evalHadamard},
	OpScale:     {1, evalScale},
	OpShift:     {1, evalShift},
	OpDot:       {2, evalDot},
	OpNorm:      {1, evalNorm},
	OpTranspose: {1, evalTranspose},
	OpIdentity:  {0, evalIdentity},
	OpMul:       {2, evalMul},
	OpMulVec:    {2, evalMulVec},
	OpRow:       {1, evalRow},
	OpResize:    {1, evalResize},
}

// Option configures an Evaluator.
type Option func(e *Evaluator)

// WithLogger routes evaluation logs to l instead of the logrus standard logger.
func WithLogger(l log.FieldLogger) Option {
	return func(e *Evaluator) { e.log = l }
}

// Evaluator runs the steps of a Spec sequentially against a name environment.
// An Evaluator is single-use and not safe for concurrent use.
type Evaluator struct {
	log log.FieldLogger
	env map[string]Value
}

// NewEvaluator returns an Evaluator with an empty environment.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		log: log.StandardLogger(),
		env: make(map[string]Value),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Evaluate binds the inputs of spec and runs its steps in order.
// ctx is checked before every step; a cancelled context stops evaluation
// and returns the results produced so far together with ctx.Err().
func Evaluate(ctx context.Context, spec *Spec, opts ...Option) ([]Result, error) {
	return NewEvaluator(opts...).Run(ctx, spec)
}

// Run binds inputs and evaluates all steps. See Evaluate.
func (e *Evaluator) Run(ctx context.Context, spec *Spec) ([]Result, error) {
	if spec == nil {
		return nil, errors.New("job: nil spec")
	}
	if err := e.bindInputs(spec); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(spec.Steps))
	for i, s := range spec.Steps {
		if err := ctx.Err(); err != nil {
			return results, errors.Wrapf(err, "step %d", i)
		}
		v, err := e.step(s)
		if err != nil {
			return results, errors.Wrapf(err, "step %d (%s -> %s)", i, s.Op, s.Out)
		}
		if _, exists := e.env[s.Out]; exists {
			e.log.WithField("out", s.Out).Debug("rebinding name")
		}
		e.env[s.Out] = v
		results = append(results, Result{Step: i, Name: s.Out, Op: s.Op, Value: v})
		e.log.WithFields(log.Fields{"step": i, "op": s.Op, "out": s.Out, "kind": v.Kind}).Debug("step evaluated")
	}

	return results, nil
}

// Lookup returns the value bound to name after Run.
func (e *Evaluator) Lookup(name string) (Value, bool) {
	v, ok := e.env[name]
	return v, ok
}

// bindInputs parses vector literals and matrix rows into the environment.
// Names are bound in sorted order so that error reporting is deterministic.
func (e *Evaluator) bindInputs(spec *Spec) error {
	for _, name := range sortedKeys(spec.Vectors) {
		v, err := matrix.ParseVector(spec.Vectors[name])
		if err != nil {
			return errors.Wrapf(err, "vector %q", name)
		}
		e.env[name] = vectorValue(v)
	}
	for _, name := range sortedKeys(spec.Matrices) {
		if _, dup := e.env[name]; dup {
			return errors.Wrapf(ErrDuplicateName, "matrix %q", name)
		}
		m, err := matrix.NewDenseFromRows(spec.Matrices[name])
		if err != nil {
			return errors.Wrapf(err, "matrix %q", name)
		}
		e.env[name] = matrixValue(m)
	}
	e.log.WithFields(log.Fields{"vectors": len(spec.Vectors), "matrices": len(spec.Matrices)}).Debug("inputs bound")

	return nil
}

// step validates a single step and dispatches it.
func (e *Evaluator) step(s Step) (Value, error) {
	entry, ok := ops[s.Op]
	if !ok {
		return Value{}, errors.Wrapf(ErrUnknownOp, "%q", s.Op)
	}
	if s.Out == "" {
		return Value{}, ErrMissingOut
	}
	if len(s.Args) != entry.arity {
		return Value{}, errors.Wrapf(ErrArity, "want %d, got %d", entry.arity, len(s.Args))
	}
	args := make([]Value, len(s.Args))
	for i, name := range s.Args {
		v, ok := e.env[name]
		if !ok {
			return Value{}, errors.Wrapf(ErrUnknownName, "%q", name)
		}
		args[i] = v
	}

	return entry.fn(s, args)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// ---------- operations ----------

// kindErr reports an operand kind combination the op does not support.
func kindErr(args ...Value) error {
	kinds := make([]string, len(args))
	for i, a := range args {
		kinds[i] = a.Kind.String()
	}

	return errors.Wrapf(ErrOperandKind, "%v", kinds)
}

func bothVectors(args []Value) bool {
	return args[0].Kind == KindVector && args[1].Kind == KindVector
}

func bothMatrices(args []Value) bool {
	return args[0].Kind == KindMatrix && args[1].Kind == KindMatrix
}

func evalAdd(_ Step, args []Value) (Value, error) {
	switch {
	case bothVectors(args):
		v, err := args[0].Vector.Add(args[1].Vector)
		return vectorValue(v), err
	case bothMatrices(args):
		m, err := matrix.Add(args[0].Matrix, args[1].Matrix)
		return matrixValue(m), err
	case args[0].Kind == KindScalar && args[1].Kind == KindScalar:
		return scalarValue(args[0].Scalar + args[1].Scalar), nil
	}

	return Value{}, kindErr(args...)
}

func evalSub(_ Step, args []Value) (Value, error) {
	switch {
	case bothVectors(args):
		v, err := args[0].Vector.Sub(args[1].Vector)
		return vectorValue(v), err
	case bothMatrices(args):
		m, err := matrix.Sub(args[0].Matrix, args[1].Matrix)
		return matrixValue(m), err
	case args[0].Kind == KindScalar && args[1].Kind == KindScalar:
		return scalarValue(args[0].Scalar - args[1].Scalar), nil
	}

	return Value{}, kindErr(args...)
}

func evalHadamard(_ Step, args []Value) (Value, error) {
	switch {
	case bothVectors(args):
		v, err := args[0].Vector.Hadamard(args[1].Vector)
		return vectorValue(v), err
	case bothMatrices(args):
		m, err := matrix.Hadamard(args[0].Matrix, args[1].Matrix)
		return matrixValue(m), err
	}

	return Value{}, kindErr(args...)
}

func evalScale(s Step, args []Value) (Value, error) {
	switch a := args[0]; a.Kind {
	case KindVector:
		return vectorValue(a.Vector.Scale(s.Scalar)), nil
	case KindMatrix:
		m, err := matrix.Scale(a.Matrix, s.Scalar)
		return matrixValue(m), err
	case KindScalar:
		return scalarValue(a.Scalar * s.Scalar), nil
	}

	return Value{}, kindErr(args...)
}

func evalShift(s Step, args []Value) (Value, error) {
	switch a := args[0]; a.Kind {
	case KindVector:
		return vectorValue(a.Vector.AddScalar(s.Scalar)), nil
	case KindScalar:
		return scalarValue(a.Scalar + s.Scalar), nil
	}

	return Value{}, kindErr(args...)
}

func evalDot(_ Step, args []Value) (Value, error) {
	if !bothVectors(args) {
		return Value{}, kindErr(args...)
	}
	f, err := matrix.InnerProduct(args[0].Vector, args[1].Vector)

	return scalarValue(f), err
}

func evalNorm(_ Step, args []Value) (Value, error) {
	if args[0].Kind != KindVector {
		return Value{}, kindErr(args...)
	}

	return scalarValue(args[0].Vector.Norm()), nil
}

func evalTranspose(_ Step, args []Value) (Value, error) {
	if args[0].Kind != KindMatrix {
		return Value{}, kindErr(args...)
	}

	return matrixValue(args[0].Matrix.T()), nil
}

func evalIdentity(s Step, _ []Value) (Value, error) {
	m, err := matrix.NewIdentity(s.Size)

	return matrixValue(m), err
}

func evalMul(_ Step, args []Value) (Value, error) {
	if !bothMatrices(args) {
		return Value{}, kindErr(args...)
	}
	m, err := matrix.Mul(args[0].Matrix, args[1].Matrix)

	return matrixValue(m), err
}

func evalMulVec(_ Step, args []Value) (Value, error) {
	if args[0].Kind != KindMatrix || args[1].Kind != KindVector {
		return Value{}, kindErr(args...)
	}
	v, err := matrix.MulVec(args[0].Matrix, args[1].Vector)

	return vectorValue(v), err
}

func evalRow(s Step, args []Value) (Value, error) {
	if args[0].Kind != KindMatrix {
		return Value{}, kindErr(args...)
	}
	v, err := args[0].Matrix.Row(s.Index)

	return vectorValue(v), err
}

// evalResize resizes a copy; the operand binding keeps its dimension.
func evalResize(s Step, args []Value) (Value, error) {
	if args[0].Kind != KindVector {
		return Value{}, kindErr(args...)
	}
	v := args[0].Vector.Clone()
	if err := v.Resize(s.Size); err != nil {
		return Value{}, err
	}

	return vectorValue(v), nil
}
