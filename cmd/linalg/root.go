// SPDX-License-Identifier: MIT

package main

import (
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// app carries state shared by the subcommands of one invocation.
type app struct {
	cfg    config
	out    io.Writer
	logger *log.Logger
}

func newRootCommand(cfg config, out, errOut io.Writer) *cobra.Command {
	a := &app{cfg: cfg, out: out}

	root := &cobra.Command{
		Use:           "linalg",
		Short:         "Dense vector and matrix arithmetic",
		Long:          "linalg parses vector literals, evaluates YAML jobs of vector and matrix operations and prints the results.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			l, err := newLogger(a.cfg, errOut)
			if err != nil {
				return err
			}
			a.logger = l
			return nil
		},
		Run: func(c *cobra.Command, args []string) {
			c.Help()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.AddCommand(newEvalCommand(a))
	root.AddCommand(newVectorCommand(a))
	root.AddCommand(newIdentityCommand(a))
	root.AddCommand(newVersionCommand(a))

	// Global flags
	root.PersistentFlags().AddFlagSet(a.cfg.flagSet())

	return root
}
