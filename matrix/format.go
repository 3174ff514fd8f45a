// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
//
// Vectors render as a single bracketed line, matrices as one bracketed row per
// line. Each value occupies " %6.3f " (6 characters wide, 3 decimals, one
// space of padding on both sides).
const (
	_fmtRowOpen  = "["
	_fmtRowClose = " ]"
	_fmtCell     = " %6.3f "
	_fmtLineEnd  = "\n"
)

// writeRow appends one bracketed row of values to b.
// Complexity: O(len(vals)).
func writeRow(b *strings.Builder, vals []float64) {
	b.WriteString(_fmtRowOpen)
	for _, v := range vals {
		fmt.Fprintf(b, _fmtCell, v)
	}
	b.WriteString(_fmtRowClose)
}
