// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const envPrefix = "linalg"

// Log output formats accepted by --log-format.
const (
	formatText = "text"
	formatJSON = "json"
)

// config holds process-wide defaults read from LINALG_* environment
// variables. Flags on the root command override each field.
type config struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

func loadConfig() (config, error) {
	var c config
	if err := envconfig.Process(envPrefix, &c); err != nil {
		return config{}, errors.Wrap(err, "read environment")
	}

	return c, nil
}

// flagSet exposes the fields of c as flags whose defaults are the current
// values, so environment settings apply unless a flag is given.
func (c *config) flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("logging", pflag.ContinueOnError)
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (panic, fatal, error, warn, info, debug, trace)")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "Log format (text or json)")

	return fs
}

// newLogger builds a logger writing to w at the configured level and format.
func newLogger(c config, w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "log level %q", c.LogLevel)
	}

	l := log.New()
	l.SetOutput(w)
	l.SetLevel(level)
	switch strings.ToLower(c.LogFormat) {
	case formatText:
		l.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	case formatJSON:
		l.SetFormatter(&log.JSONFormatter{})
	default:
		return nil, errors.Errorf("log format %q: want %s or %s", c.LogFormat, formatText, formatJSON)
	}

	return l, nil
}
