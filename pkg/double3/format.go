package double3

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned by Parse for text not produced by String.
var ErrInvalidFormat = errors.New("invalid vector format")

// String formats the vector as "X:{x} Y:{y} Z:{z}".
func (v Vector) String() string {
	return fmt.Sprintf("X:%v Y:%v Z:%v", v.X, v.Y, v.Z)
}

// Parse reads a vector in the format written by String. NaN and Inf
// components are accepted.
func Parse(s string) (Vector, error) {
	parts := strings.Fields(s)
	if len(parts) != 3 {
		return Vector{}, fmt.Errorf("parse %q: expected 3 components, got %d: %w", s, len(parts), ErrInvalidFormat)
	}

	var v Vector
	for i, prefix := range [3]string{"X:", "Y:", "Z:"} {
		text, ok := strings.CutPrefix(parts[i], prefix)
		if !ok {
			return Vector{}, fmt.Errorf("parse %q: component %d missing %q: %w", s, i, prefix, ErrInvalidFormat)
		}
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Vector{}, fmt.Errorf("parse %q: %w: %w", s, ErrInvalidFormat, err)
		}
		v.SetAt(i, value)
	}
	return v, nil
}
