package validation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-worldmath/pkg/double3"
	"github.com/opd-ai/go-worldmath/pkg/mathf"
)

func TestValidateVector(t *testing.T) {
	tests := []struct {
		name        string
		input       double3.Vector
		wantErr     error
		errContains string
	}{
		{name: "finite", input: double3.New(1, -2, 3e300)},
		{name: "extremes", input: double3.Minimum},
		{name: "nan x", input: double3.New(math.NaN(), 0, 0), wantErr: ErrNaN, errContains: "x"},
		{name: "inf y", input: double3.New(0, math.Inf(1), 0), wantErr: ErrInfinity, errContains: "y"},
		{name: "negative inf z", input: double3.New(0, 0, math.Inf(-1)), wantErr: ErrInfinity, errContains: "z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVector(tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestValidateNormal(t *testing.T) {
	assert.NoError(t, ValidateNormal(double3.UnitZ))
	assert.NoError(t, ValidateNormal(double3.New(1, 1, 1).GetNormalized()))
	assert.ErrorIs(t, ValidateNormal(double3.New(0, 0, 2)), ErrNotNormalized)
	assert.ErrorIs(t, ValidateNormal(double3.Zero), ErrNotNormalized)
	assert.ErrorIs(t, ValidateNormal(double3.Zero.GetNormalized()), ErrNaN)
}

func TestValidateVectors(t *testing.T) {
	assert.NoError(t, ValidateVectors(nil))
	assert.NoError(t, ValidateVectors([]double3.Vector{double3.One, double3.Up}))

	err := ValidateVectors([]double3.Vector{double3.One, double3.Up, double3.New(0, math.NaN(), 0)})
	require.ErrorIs(t, err, ErrNaN)
	assert.Contains(t, err.Error(), "vector 2")
}

func TestValidateMatrix(t *testing.T) {
	assert.NoError(t, ValidateMatrix(mathf.IdentityMatrix))
	assert.NoError(t, ValidateMatrix(mathf.Translation(1e9, -1e9, 0)))

	m := mathf.IdentityMatrix
	m.M42 = float32(math.Inf(1))
	err := ValidateMatrix(m)
	require.ErrorIs(t, err, ErrInfinity)
	assert.Contains(t, err.Error(), "M42")

	m = mathf.IdentityMatrix
	m.M13 = float32(math.NaN())
	assert.ErrorIs(t, ValidateMatrix(m), ErrNaN)
}

func BenchmarkValidateVectors(b *testing.B) {
	vectors := make([]double3.Vector, 4096)
	for i := range vectors {
		vectors[i] = double3.Splat(float64(i))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ValidateVectors(vectors)
	}
}
