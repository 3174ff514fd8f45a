// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/linalg/job"
	"github.com/katalvlaran/linalg/matrix"
)

func newEvalCommand(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate a YAML job file",
		Long:  "Evaluate the steps of a YAML job file and print every named result in step order. Use -f - to read the job from stdin.",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			var (
				spec *job.Spec
				err  error
			)
			if file == "-" {
				spec, err = job.Load(c.InOrStdin())
			} else {
				spec, err = job.LoadFile(file)
			}
			if err != nil {
				return err
			}

			// run tags every log line of one evaluation
			entry := a.logger.WithFields(log.Fields{"job": file, "run": uuid.New().String()})
			entry.WithField("steps", len(spec.Steps)).Info("evaluating job")
			results, err := job.Evaluate(c.Context(), spec, job.WithLogger(entry))
			if err != nil {
				return errors.Wrap(err, "evaluate")
			}

			return job.Print(a.out, results)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Job file to evaluate, or - for stdin")
	cmd.MarkFlagRequired("file")

	return cmd
}

func newVectorCommand(a *app) *cobra.Command {
	var scale, shift float64

	cmd := &cobra.Command{
		Use:   "vector LITERAL",
		Short: "Parse a vector literal, optionally scale and shift it, and print it",
		Example: `  linalg vector "[ 1 2 3 ]"
  linalg vector "[ 1 2 3 ]" --scale 2 --shift -1`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			v, err := matrix.ParseVector(args[0])
			if err != nil {
				return err
			}
			v.ScaleInPlace(scale)
			v.AddScalarInPlace(shift)
			a.logger.WithField("dim", v.Dim()).Debug("vector parsed")

			_, err = fmt.Fprintln(a.out, v)
			return err
		},
	}
	cmd.Flags().Float64Var(&scale, "scale", 1, "Multiply every entry by this factor")
	cmd.Flags().Float64Var(&shift, "shift", 0, "Add this value to every entry after scaling")

	return cmd
}

func newIdentityCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "identity N",
		Short: "Print the N×N identity matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrapf(err, "identity size %q", args[0])
			}
			I, err := matrix.NewIdentity(n)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(a.out, I)
			return err
		},
	}
}

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the linalg version",
		Args:  cobra.NoArgs,
		Run: func(c *cobra.Command, args []string) {
			fmt.Fprintf(a.out, "linalg %s\n", version)
		},
	}
}
