// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/job"
	"github.com/katalvlaran/linalg/matrix"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, cfg config, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCommand(cfg, &out, &errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func defaultConfig() config {
	return config{LogLevel: "info", LogFormat: formatText}
}

func TestLoadConfig(t *testing.T) {
	// envconfig falls back to the unprefixed names
	for _, k := range []string{"LINALG_LOG_LEVEL", "LINALG_LOG_FORMAT", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	c, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), c)

	t.Setenv("LINALG_LOG_LEVEL", "debug")
	t.Setenv("LINALG_LOG_FORMAT", "json")
	c, err = loadConfig()
	require.NoError(t, err)
	assert.Equal(t, config{LogLevel: "debug", LogFormat: formatJSON}, c)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := newLogger(config{LogLevel: "warn", LogFormat: "JSON"}, &buf)
	require.NoError(t, err)
	l.Info("hidden")
	l.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	_, err = newLogger(config{LogLevel: "loud", LogFormat: formatText}, &buf)
	require.Error(t, err)
	_, err = newLogger(config{LogLevel: "info", LogFormat: "xml"}, &buf)
	require.Error(t, err)
}

func TestVectorCommand(t *testing.T) {
	out, _, err := run(t, defaultConfig(), "", "vector", "[ 1 2 3 ]", "--scale", "2", "--shift", "-1")
	require.NoError(t, err)
	assert.Equal(t, "[  1.000   3.000   5.000  ]\n", out)

	out, _, err = run(t, defaultConfig(), "", "vector", "[ 1.5 ]")
	require.NoError(t, err)
	assert.Equal(t, "[  1.500  ]\n", out)

	_, _, err = run(t, defaultConfig(), "", "vector", "1 2 3")
	require.ErrorIs(t, err, matrix.ErrMalformedLiteral)
}

func TestIdentityCommand(t *testing.T) {
	out, _, err := run(t, defaultConfig(), "", "identity", "2")
	require.NoError(t, err)
	assert.Equal(t, "[  1.000   0.000  ]\n[  0.000   1.000  ]\n", out)

	_, _, err = run(t, defaultConfig(), "", "identity", "0")
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, _, err = run(t, defaultConfig(), "", "identity", "two")
	require.Error(t, err)
}

const evalJob = `
vectors:
  x: "[ 1 1 ]"
matrices:
  A: [[1, 2], [3, 4]]
steps:
  - {op: mulvec, args: [A, x], out: y}
  - {op: dot, args: [y, x], out: s}
`

func TestEvalCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(evalJob), 0o600))

	out, logs, err := run(t, defaultConfig(), "", "eval", "-f", path)
	require.NoError(t, err)
	assert.Equal(t, "y = [  3.000   7.000  ]\ns = 10\n", out)
	assert.Contains(t, logs, "evaluating job")
}

func TestEvalCommand_StdinAndDebugLogs(t *testing.T) {
	out, logs, err := run(t, defaultConfig(), evalJob, "--log-level", "debug", "--log-format", "json", "eval", "-f", "-")
	require.NoError(t, err)
	assert.Equal(t, "y = [  3.000   7.000  ]\ns = 10\n", out)
	assert.Contains(t, logs, `"msg":"step evaluated"`)
	assert.Contains(t, logs, `"op":"mulvec"`)
	assert.Contains(t, logs, `"run":"`)
}

func TestEvalCommand_Errors(t *testing.T) {
	_, _, err := run(t, defaultConfig(), "", "eval")
	require.Error(t, err)

	bad := "vectors:\n  x: \"[ 1 2 ]\"\n  y: \"[ 1 ]\"\nsteps:\n  - {op: add, args: [x, y], out: z}\n"
	_, _, err = run(t, defaultConfig(), bad, "eval", "-f", "-")
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "step 0")

	unknown := "steps:\n  - {op: nope, args: [], out: z}\n"
	_, _, err = run(t, defaultConfig(), unknown, "eval", "-f", "-")
	require.True(t, errors.Is(err, job.ErrUnknownOp))

	_, _, err = run(t, config{LogLevel: "info", LogFormat: "xml"}, evalJob, "eval", "-f", "-")
	require.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, defaultConfig(), "", "version")
	require.NoError(t, err)
	assert.Equal(t, "linalg dev\n", out)
}
