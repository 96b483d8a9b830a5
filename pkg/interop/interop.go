// Package interop converts between double3 vectors and gonum's spatial,
// quaternion and dense matrix types.
package interop

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/opd-ai/go-worldmath/pkg/double3"
	"github.com/opd-ai/go-worldmath/pkg/mathf"
)

// ErrDimension is returned when a gonum value has the wrong shape.
var ErrDimension = errors.New("dimension mismatch")

// FromR3 converts a gonum r3.Vec.
func FromR3(v r3.Vec) double3.Vector {
	return double3.New(v.X, v.Y, v.Z)
}

// ToR3 converts v to a gonum r3.Vec.
func ToR3(v double3.Vector) r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// FromQuaternion widens a float32 rotation to a gonum quaternion.
func FromQuaternion(q mathf.Quaternion) quat.Number {
	return quat.Number{
		Real: float64(q.W),
		Imag: float64(q.X),
		Jmag: float64(q.Y),
		Kmag: float64(q.Z),
	}
}

// RotateQuat rotates v by q as q·v·q⁻¹. Unlike double3.Transform the
// quaternion need not be normalized.
func RotateQuat(v double3.Vector, q quat.Number) double3.Vector {
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	r := quat.Mul(quat.Mul(q, p), quat.Inv(q))
	return double3.New(r.Imag, r.Jmag, r.Kmag)
}

// FromMatrix widens a float32 matrix to a 4x4 gonum Dense, row for row.
func FromMatrix(m mathf.Matrix) *mat.Dense {
	data := make([]float64, 0, 16)
	for _, row := range m.Rows() {
		for _, e := range row {
			data = append(data, float64(e))
		}
	}
	return mat.NewDense(4, 4, data)
}

// TransformDense multiplies v as a row vector by m. A 3x3 m is applied as
// a linear map. A 4x4 m treats v as a point with W = 1 and drops the
// resulting W, matching double3.TransformMatrix.
func TransformDense(v double3.Vector, m mat.Matrix) (double3.Vector, error) {
	r, c := m.Dims()
	if r != c || (r != 3 && r != 4) {
		return double3.Vector{}, fmt.Errorf("transform by %dx%d matrix: %w", r, c, ErrDimension)
	}

	in := [4]float64{v.X, v.Y, v.Z, 1}
	var out double3.Vector
	for j := 0; j < 3; j++ {
		var sum float64
		for i := 0; i < r; i++ {
			sum += in[i] * m.At(i, j)
		}
		out.SetAt(j, sum)
	}
	return out, nil
}

// FromVecDense converts a gonum vector of length 3.
func FromVecDense(v mat.Vector) (double3.Vector, error) {
	if n := v.Len(); n != 3 {
		return double3.Vector{}, fmt.Errorf("vector of length %d: %w", n, ErrDimension)
	}
	return double3.New(v.AtVec(0), v.AtVec(1), v.AtVec(2)), nil
}

// ToVecDense copies v into a new gonum column vector.
func ToVecDense(v double3.Vector) *mat.VecDense {
	return mat.NewVecDense(3, []float64{v.X, v.Y, v.Z})
}
