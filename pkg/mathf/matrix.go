package mathf

import fmath "github.com/EngoEngine/math"

// Matrix is a row-major 4x4 float32 matrix. Vectors are treated as rows, so
// the translation lives in M41, M42 and M43.
type Matrix struct {
	M11, M12, M13, M14 float32
	M21, M22, M23, M24 float32
	M31, M32, M33, M34 float32
	M41, M42, M43, M44 float32
}

// IdentityMatrix leaves vectors unchanged.
var IdentityMatrix = Matrix{M11: 1, M22: 1, M33: 1, M44: 1}

// Translation creates a translation matrix.
func Translation(x, y, z float32) Matrix {
	m := IdentityMatrix
	m.M41 = x
	m.M42 = y
	m.M43 = z
	return m
}

// Scaling creates a scale matrix.
func Scaling(x, y, z float32) Matrix {
	return Matrix{M11: x, M22: y, M33: z, M44: 1}
}

// RotationX creates a rotation of angle radians around the X axis.
func RotationX(angle float32) Matrix {
	cos, sin := fmath.Cos(angle), fmath.Sin(angle)
	m := IdentityMatrix
	m.M22 = cos
	m.M23 = sin
	m.M32 = -sin
	m.M33 = cos
	return m
}

// RotationY creates a rotation of angle radians around the Y axis.
func RotationY(angle float32) Matrix {
	cos, sin := fmath.Cos(angle), fmath.Sin(angle)
	m := IdentityMatrix
	m.M11 = cos
	m.M13 = -sin
	m.M31 = sin
	m.M33 = cos
	return m
}

// RotationZ creates a rotation of angle radians around the Z axis.
func RotationZ(angle float32) Matrix {
	cos, sin := fmath.Cos(angle), fmath.Sin(angle)
	m := IdentityMatrix
	m.M11 = cos
	m.M12 = sin
	m.M21 = -sin
	m.M22 = cos
	return m
}

// RotationQuaternion creates the rotation matrix of a unit quaternion.
func RotationQuaternion(q Quaternion) Matrix {
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, zw, zx := q.X*q.Y, q.Z*q.W, q.Z*q.X
	yw, yz, xw := q.Y*q.W, q.Y*q.Z, q.X*q.W

	return Matrix{
		M11: 1 - 2*(yy+zz), M12: 2 * (xy + zw), M13: 2 * (zx - yw),
		M21: 2 * (xy - zw), M22: 1 - 2*(zz+xx), M23: 2 * (yz + xw),
		M31: 2 * (zx + yw), M32: 2 * (yz - xw), M33: 1 - 2*(yy+xx),
		M44: 1,
	}
}

// Multiply returns m * other: the result applies m first, then other.
func (m Matrix) Multiply(other Matrix) Matrix {
	a, b := m.Rows(), other.Rows()
	var out [4][4]float32
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j] + a[i][3]*b[3][j]
		}
	}
	return MatrixFromRows(out)
}

// Rows returns the matrix as a row-major array.
func (m Matrix) Rows() [4][4]float32 {
	return [4][4]float32{
		{m.M11, m.M12, m.M13, m.M14},
		{m.M21, m.M22, m.M23, m.M24},
		{m.M31, m.M32, m.M33, m.M34},
		{m.M41, m.M42, m.M43, m.M44},
	}
}

// MatrixFromRows builds a matrix from a row-major array.
func MatrixFromRows(r [4][4]float32) Matrix {
	return Matrix{
		M11: r[0][0], M12: r[0][1], M13: r[0][2], M14: r[0][3],
		M21: r[1][0], M22: r[1][1], M23: r[1][2], M24: r[1][3],
		M31: r[2][0], M32: r[2][1], M33: r[2][2], M34: r[2][3],
		M41: r[3][0], M42: r[3][1], M43: r[3][2], M44: r[3][3],
	}
}
