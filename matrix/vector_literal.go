// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Literal framing tokens for ParseVector.
const (
	litOpen  = "["
	litClose = "]"
)

// ParseVector builds a Vector from a bracketed, whitespace-separated literal
// such as "[ -1.2 2.0 3.1 5.8 ]".
//
// Rules:
//   - the first token must be exactly "[" and the last exactly "]";
//   - every token in between must parse as a float64;
//   - the dimension equals the number of interior tokens and must be >= 1.
//
// Errors:
//   - ErrMalformedLiteral for missing framing or an unparsable token.
//   - ErrInvalidDimensions for "[ ]".
//
// Complexity: O(len(s)).
func ParseVector(s string) (*Vector, error) {
	tokens := strings.Fields(s)
	if len(tokens) < 2 || tokens[0] != litOpen || tokens[len(tokens)-1] != litClose {
		return nil, fmt.Errorf("ParseVector(%q): missing %s or %s: %w", s, litOpen, litClose, ErrMalformedLiteral)
	}

	body := tokens[1 : len(tokens)-1]
	if len(body) == 0 {
		return nil, fmt.Errorf("ParseVector(%q): %w", s, ErrInvalidDimensions)
	}

	buf := make([]float64, len(body))
	for i, tok := range body {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("ParseVector(%q): token %d %q: %w", s, i, tok, ErrMalformedLiteral)
		}
		buf[i] = f
	}

	return &Vector{data: buf}, nil
}

// MustParseVector is like ParseVector but panics on error.
// Intended for package-level fixtures and examples with constant literals.
func MustParseVector(s string) *Vector {
	v, err := ParseVector(s)
	if err != nil {
		panic(err)
	}

	return v
}
