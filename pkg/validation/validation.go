// Package validation checks vectors and transforms read from untrusted input
// before they reach the double3 operations, which propagate NaN and Inf
// silently.
package validation

import (
	"errors"
	"fmt"
	"math"

	"github.com/opd-ai/go-worldmath/pkg/double3"
	"github.com/opd-ai/go-worldmath/pkg/mathf"
)

// MaxBatchSize bounds the number of vectors accepted in a single batch.
const MaxBatchSize = 1 << 24

var (
	ErrNaN           = errors.New("component is NaN")
	ErrInfinity      = errors.New("component is infinite")
	ErrNotNormalized = errors.New("vector is not normalized")
	ErrBatchTooLarge = errors.New("batch too large")
)

var axes = [3]string{"x", "y", "z"}

// ValidateVector rejects vectors with a NaN or infinite component.
func ValidateVector(v double3.Vector) error {
	for i, c := range v.Raw() {
		switch {
		case math.IsNaN(c):
			return fmt.Errorf("%s: %w", axes[i], ErrNaN)
		case math.IsInf(c, 0):
			return fmt.Errorf("%s: %w", axes[i], ErrInfinity)
		}
	}
	return nil
}

// ValidateNormal rejects vectors that are not finite unit vectors within
// the default tolerance.
func ValidateNormal(n double3.Vector) error {
	if err := ValidateVector(n); err != nil {
		return err
	}
	if !n.IsNormalized() {
		return fmt.Errorf("length %v: %w", n.Length(), ErrNotNormalized)
	}
	return nil
}

// ValidateVectors validates every vector of a batch. The error names the
// index of the first offending vector.
func ValidateVectors(vectors []double3.Vector) error {
	if len(vectors) > MaxBatchSize {
		return fmt.Errorf("%d vectors (max %d): %w", len(vectors), MaxBatchSize, ErrBatchTooLarge)
	}
	for i, v := range vectors {
		if err := ValidateVector(v); err != nil {
			return fmt.Errorf("vector %d: %w", i, err)
		}
	}
	return nil
}

// ValidateMatrix rejects matrices with a NaN or infinite element.
func ValidateMatrix(m mathf.Matrix) error {
	for r, row := range m.Rows() {
		for c, e := range row {
			f := float64(e)
			switch {
			case math.IsNaN(f):
				return fmt.Errorf("M%d%d: %w", r+1, c+1, ErrNaN)
			case math.IsInf(f, 0):
				return fmt.Errorf("M%d%d: %w", r+1, c+1, ErrInfinity)
			}
		}
	}
	return nil
}
