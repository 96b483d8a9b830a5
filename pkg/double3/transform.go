package double3

import (
	"github.com/opd-ai/go-worldmath/pkg/double4"
	"github.com/opd-ai/go-worldmath/pkg/mathf"
)

// Transform rotates vector by a unit quaternion. The quaternion is used as
// given; callers must normalize it.
func Transform(vector Vector, rotation mathf.Quaternion) Vector {
	var result Vector
	TransformTo(vector, rotation, &result)
	return result
}

// TransformTo stores vector rotated by rotation in result.
func TransformTo(vector Vector, rotation mathf.Quaternion, result *Vector) {
	qx, qy, qz, qw := float64(rotation.X), float64(rotation.Y), float64(rotation.Z), float64(rotation.W)
	x := qx + qx
	y := qy + qy
	z := qz + qz
	wx := qw * x
	wy := qw * y
	wz := qw * z
	xx := qx * x
	xy := qx * y
	xz := qx * z
	yy := qy * y
	yz := qy * z
	zz := qz * z

	*result = Vector{
		X: vector.X*(1.0-yy-zz) + vector.Y*(xy-wz) + vector.Z*(xz+wy),
		Y: vector.X*(xy+wz) + vector.Y*(1.0-xx-zz) + vector.Z*(yz-wx),
		Z: vector.X*(xz-wy) + vector.Y*(yz+wx) + vector.Z*(1.0-xx-yy),
	}
}

// TransformMatrix transforms vector as a point (W = 1) by transform. The
// resulting W is dropped without dividing; use TransformCoordinate for
// projective matrices.
func TransformMatrix(vector Vector, transform mathf.Matrix) Vector {
	var result Vector
	TransformMatrixTo(vector, transform, &result)
	return result
}

// TransformMatrixTo stores vector transformed as a point by transform in
// result.
func TransformMatrixTo(vector Vector, transform mathf.Matrix, result *Vector) {
	m := widen(transform)
	*result = Vector{
		X: vector.X*m[0][0] + vector.Y*m[1][0] + vector.Z*m[2][0] + m[3][0],
		Y: vector.X*m[0][1] + vector.Y*m[1][1] + vector.Z*m[2][1] + m[3][1],
		Z: vector.X*m[0][2] + vector.Y*m[1][2] + vector.Z*m[2][2] + m[3][2],
	}
}

// TransformMatrix4 transforms vector as a point (W = 1) by transform and
// keeps the resulting W.
func TransformMatrix4(vector Vector, transform mathf.Matrix) double4.Vector {
	m := widen(transform)
	return double4.Vector{
		X: vector.X*m[0][0] + vector.Y*m[1][0] + vector.Z*m[2][0] + m[3][0],
		Y: vector.X*m[0][1] + vector.Y*m[1][1] + vector.Z*m[2][1] + m[3][1],
		Z: vector.X*m[0][2] + vector.Y*m[1][2] + vector.Z*m[2][2] + m[3][2],
		W: vector.X*m[0][3] + vector.Y*m[1][3] + vector.Z*m[2][3] + m[3][3],
	}
}

// TransformBatch transforms vectors[i] into results[i] for every input.
// results must be at least as long as vectors and must not overlap it.
func TransformBatch(vectors []Vector, transform mathf.Matrix, results []Vector) {
	for i := range vectors {
		TransformMatrixTo(vectors[i], transform, &results[i])
	}
}

// TransformCoordinate transforms coordinate as a point and divides the result
// by its W, which makes it suitable for projection matrices.
func TransformCoordinate(coordinate Vector, transform mathf.Matrix) Vector {
	var result Vector
	TransformCoordinateTo(coordinate, transform, &result)
	return result
}

// TransformCoordinateTo stores the perspective-correct transform of
// coordinate in result.
func TransformCoordinateTo(coordinate Vector, transform mathf.Matrix, result *Vector) {
	v := TransformMatrix4(coordinate, transform)
	invW := 1.0 / v.W
	*result = Vector{X: v.X * invW, Y: v.Y * invW, Z: v.Z * invW}
}

// TransformNormal transforms a direction by the rotation and scale part of
// transform. Translation is ignored.
func TransformNormal(normal Vector, transform mathf.Matrix) Vector {
	var result Vector
	TransformNormalTo(normal, transform, &result)
	return result
}

// TransformNormalTo stores the transformed direction in result.
func TransformNormalTo(normal Vector, transform mathf.Matrix, result *Vector) {
	m := widen(transform)
	*result = Vector{
		X: normal.X*m[0][0] + normal.Y*m[1][0] + normal.Z*m[2][0],
		Y: normal.X*m[0][1] + normal.Y*m[1][1] + normal.Z*m[2][1],
		Z: normal.X*m[0][2] + normal.Y*m[1][2] + normal.Z*m[2][2],
	}
}

func widen(m mathf.Matrix) [4][4]float64 {
	var out [4][4]float64
	rows := m.Rows()
	for i := range rows {
		for j := range rows[i] {
			out[i][j] = float64(rows[i][j])
		}
	}
	return out
}
