// SPDX-License-Identifier: MIT

package job

import (
	"fmt"
	"io"
	"strconv"
)

// String renders the payload: scalars with strconv 'g' formatting,
// vectors and matrices with their own String methods.
func (v Value) String() string {
	switch v.Kind {
	case KindScalar:
		return strconv.FormatFloat(v.Scalar, 'g', -1, 64)
	case KindVector:
		return v.Vector.String()
	case KindMatrix:
		return v.Matrix.String()
	default:
		return "<invalid>"
	}
}

// Print writes every result as "name = value". Matrix values start on their
// own line because they span several.
func Print(w io.Writer, results []Result) error {
	for _, r := range results {
		var err error
		if r.Value.Kind == KindMatrix {
			_, err = fmt.Fprintf(w, "%s =\n%s", r.Name, r.Value)
		} else {
			_, err = fmt.Fprintf(w, "%s = %s\n", r.Name, r.Value)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
