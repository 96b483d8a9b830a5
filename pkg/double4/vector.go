// Package double4 provides the four component double-precision vector, used
// for homogeneous coordinates.
package double4

import (
	"fmt"
	"math"
)

// Vector is a 4D vector with float64 components.
type Vector struct {
	X float64 `json:"x" yaml:"x" cbor:"x" mapstructure:"x"`
	Y float64 `json:"y" yaml:"y" cbor:"y" mapstructure:"y"`
	Z float64 `json:"z" yaml:"z" cbor:"z" mapstructure:"z"`
	W float64 `json:"w" yaml:"w" cbor:"w" mapstructure:"w"`
}

// Zero is the vector with all components equal to 0.
var Zero = Vector{}

// New creates a vector from its components.
func New(x, y, z, w float64) Vector {
	return Vector{X: x, Y: y, Z: z, W: w}
}

// Add returns the component-wise sum.
func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z, W: v.W + other.W}
}

// Dot returns the dot product of two vectors.
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Length returns the magnitude of the vector.
func (v Vector) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vector) String() string {
	return fmt.Sprintf("X:%v Y:%v Z:%v W:%v", v.X, v.Y, v.Z, v.W)
}
