// SPDX-License-Identifier: MIT

package job

import (
	"io"
	"os"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// Decode parses a YAML job document. Unknown keys are rejected so that typos
// such as "scaler:" fail loudly instead of silently defaulting to zero.
func Decode(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.UnmarshalStrict(data, &spec); err != nil {
		return nil, errors.Wrap(err, "decode job")
	}

	return &spec, nil
}

// Load reads and decodes a job document from r.
func Load(r io.Reader) (*Spec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read job")
	}

	return Decode(data)
}

// LoadFile reads and decodes the job file at path.
func LoadFile(path string) (*Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open job file %s", path)
	}
	defer f.Close()

	spec, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "job file %s", path)
	}

	return spec, nil
}
