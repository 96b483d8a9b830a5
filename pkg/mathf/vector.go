// Package mathf contains the single-precision math types that sit next to the
// double-precision vectors: float32 vectors, quaternions, matrices and colors.
// Only the surface needed by conversions and transforms is provided.
package mathf

import (
	"fmt"

	fmath "github.com/EngoEngine/math"
)

// Float2 is a two component float32 vector.
type Float2 struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
}

// Float3 is a three component float32 vector.
type Float3 struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
	Z float32 `json:"z" yaml:"z"`
}

// Float4 is a four component float32 vector.
type Float4 struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
	Z float32 `json:"z" yaml:"z"`
	W float32 `json:"w" yaml:"w"`
}

// NewFloat2 creates a Float2.
func NewFloat2(x, y float32) Float2 {
	return Float2{X: x, Y: y}
}

// NewFloat3 creates a Float3.
func NewFloat3(x, y, z float32) Float3 {
	return Float3{X: x, Y: y, Z: z}
}

// NewFloat4 creates a Float4.
func NewFloat4(x, y, z, w float32) Float4 {
	return Float4{X: x, Y: y, Z: z, W: w}
}

// Add returns the component-wise sum.
func (v Float3) Add(other Float3) Float3 {
	return Float3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Subtract returns the component-wise difference.
func (v Float3) Subtract(other Float3) Float3 {
	return Float3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Scale multiplies every component by factor.
func (v Float3) Scale(factor float32) Float3 {
	return Float3{X: v.X * factor, Y: v.Y * factor, Z: v.Z * factor}
}

// Dot returns the dot product of two vectors.
func (v Float3) Dot(other Float3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Length returns the magnitude of the vector.
func (v Float3) Length() float32 {
	return fmath.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit vector in the same direction. A zero vector is
// returned unchanged.
func (v Float3) Normalize() Float3 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return v.Scale(1 / length)
}

func (v Float2) String() string {
	return fmt.Sprintf("X:%v Y:%v", v.X, v.Y)
}

func (v Float3) String() string {
	return fmt.Sprintf("X:%v Y:%v Z:%v", v.X, v.Y, v.Z)
}

func (v Float4) String() string {
	return fmt.Sprintf("X:%v Y:%v Z:%v W:%v", v.X, v.Y, v.Z, v.W)
}
