// SPDX-License-Identifier: MIT

// Package job evaluates small linear-algebra programs described in YAML.
//
// A job declares named vector literals and matrices, then a list of steps.
// Each step applies one operation from package matrix to previously bound
// names and binds its result under a new name:
//
//	spec, err := job.LoadFile("job.yaml")
//	results, err := job.Evaluate(ctx, spec, job.WithLogger(logger))
//	_ = job.Print(os.Stdout, results)
//
// Failures carry the step index and op, and still match the matrix sentinels
// with errors.Is.
package job
