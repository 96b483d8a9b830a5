package double3

import (
	"github.com/opd-ai/go-worldmath/pkg/double2"
	"github.com/opd-ai/go-worldmath/pkg/double4"
	"github.com/opd-ai/go-worldmath/pkg/mathf"
	"github.com/opd-ai/go-worldmath/pkg/mathi"
)

// Conversions into Vector follow one naming rule: FromFloat3 is the only
// lossless widening. Every other source goes through a Convert* or Truncate*
// function so the caller acknowledges a change of dimension or domain.

// FromFloat3 widens a single-precision vector. Every float32 is exactly
// representable as a float64, so v.Float3() gives the input back bit for bit.
func FromFloat3(v mathf.Float3) Vector {
	return Vector{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// Float3 narrows the vector to single precision, rounding each component to
// the nearest float32.
func (v Vector) Float3() mathf.Float3 {
	return mathf.Float3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// Double2 drops Z.
func (v Vector) Double2() double2.Vector {
	return double2.Vector{X: v.X, Y: v.Y}
}

// Double4 extends the vector with the given W.
func (v Vector) Double4(w float64) double4.Vector {
	return double4.Vector{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// ConvertDouble2 builds a vector from a 2D vector and an explicit Z.
func ConvertDouble2(xy double2.Vector, z float64) Vector {
	return Vector{X: xy.X, Y: xy.Y, Z: z}
}

// ConvertDouble2XY builds a vector from a 2D vector with Z = 0.
func ConvertDouble2XY(xy double2.Vector) Vector {
	return ConvertDouble2(xy, 0)
}

// ConvertFloat2 builds a vector from a single-precision 2D vector and Z.
func ConvertFloat2(xy mathf.Float2, z float64) Vector {
	return Vector{X: float64(xy.X), Y: float64(xy.Y), Z: z}
}

// ConvertFloat2XY builds a vector from a single-precision 2D vector with Z = 0.
func ConvertFloat2XY(xy mathf.Float2) Vector {
	return ConvertFloat2(xy, 0)
}

// ConvertInt2 builds a vector from an integer 2D vector and Z.
func ConvertInt2(xy mathi.Int2, z float64) Vector {
	return Vector{X: float64(xy.X), Y: float64(xy.Y), Z: z}
}

// ConvertInt3 builds a vector from an integer vector.
func ConvertInt3(xyz mathi.Int3) Vector {
	return Vector{X: float64(xyz.X), Y: float64(xyz.Y), Z: float64(xyz.Z)}
}

// ConvertColor reinterprets the R, G and B channels as X, Y and Z. Alpha is
// dropped.
func ConvertColor(c mathf.Color) Vector {
	return Vector{X: float64(c.R), Y: float64(c.G), Z: float64(c.B)}
}

// TruncateDouble4 drops W.
func TruncateDouble4(xyzw double4.Vector) Vector {
	return Vector{X: xyzw.X, Y: xyzw.Y, Z: xyzw.Z}
}

// TruncateFloat4 drops W of a single-precision vector.
func TruncateFloat4(xyzw mathf.Float4) Vector {
	return Vector{X: float64(xyzw.X), Y: float64(xyzw.Y), Z: float64(xyzw.Z)}
}

// TruncateInt4 drops W of an integer vector.
func TruncateInt4(xyzw mathi.Int4) Vector {
	return Vector{X: float64(xyzw.X), Y: float64(xyzw.Y), Z: float64(xyzw.Z)}
}
