// Package double2 provides the two component double-precision vector.
package double2

import (
	"fmt"
	"math"
)

// Vector is a 2D vector with float64 components.
type Vector struct {
	X float64 `json:"x" yaml:"x" cbor:"x" mapstructure:"x"`
	Y float64 `json:"y" yaml:"y" cbor:"y" mapstructure:"y"`
}

// Zero is the vector with all components equal to 0.
var Zero = Vector{}

// New creates a vector from its components.
func New(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the component-wise sum.
func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Subtract returns the component-wise difference.
func (v Vector) Subtract(other Vector) Vector {
	return Vector{X: v.X - other.X, Y: v.Y - other.Y}
}

// Dot returns the dot product of two vectors.
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the magnitude of the vector.
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vector) String() string {
	return fmt.Sprintf("X:%v Y:%v", v.X, v.Y)
}
