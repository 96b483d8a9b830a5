// Package double3 provides Vector, a three component vector with 64-bit
// floating point components. It is the position type for world space, where
// float32 coordinates lose precision far from the origin.
//
// Operations come in the same flavours throughout the package:
//
//   - value methods and package functions that return a new Vector,
//   - *To package functions that write into a caller supplied result,
//   - pointer methods (the *Assign family, Normalize, Negate, ...) that
//     mutate the receiver.
//
// None of the operations guard against zero divisors or zero length inputs
// unless documented otherwise; IEEE NaN and Inf propagate and can be detected
// with IsNaN, IsInfinity and IsNanOrInfinity.
package double3

import (
	"math"
	"reflect"
	"unsafe"
)

// Vector is a 3D vector with float64 components. The named fields and the
// array returned by Raw share the same memory.
type Vector struct {
	X float64 `json:"x" yaml:"x" cbor:"x" mapstructure:"x"`
	Y float64 `json:"y" yaml:"y" cbor:"y" mapstructure:"y"`
	Z float64 `json:"z" yaml:"z" cbor:"z" mapstructure:"z"`
}

// Raw reinterprets the struct as [3]float64, which requires X, Y and Z to be
// packed without padding.
var _ = [1]struct{}{}[unsafe.Sizeof(Vector{})-3*unsafe.Sizeof(float64(0))]

var (
	// Zero has all components equal to 0.
	Zero = Vector{0, 0, 0}
	// One has all components equal to 1.
	One = Vector{1, 1, 1}
	// Half has all components equal to 0.5.
	Half = Vector{0.5, 0.5, 0.5}

	UnitX = Vector{1, 0, 0}
	UnitY = Vector{0, 1, 0}
	UnitZ = Vector{0, 0, 1}

	Up       = Vector{0, 1, 0}
	Down     = Vector{0, -1, 0}
	Left     = Vector{-1, 0, 0}
	Right    = Vector{1, 0, 0}
	Forward  = Vector{0, 0, 1}
	Backward = Vector{0, 0, -1}

	// Minimum has every component set to the lowest finite float64.
	Minimum = Vector{-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64}
	// Maximum has every component set to the largest finite float64.
	Maximum = Vector{math.MaxFloat64, math.MaxFloat64, math.MaxFloat64}
)

// New creates a vector from its components.
func New(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Splat creates a vector with every component set to xyz.
func Splat(xyz float64) Vector {
	return Vector{X: xyz, Y: xyz, Z: xyz}
}

// FromArray creates a vector from X, Y and Z stored in order.
func FromArray(xyz [3]float64) Vector {
	return Vector{X: xyz[0], Y: xyz[1], Z: xyz[2]}
}

// FromSlice creates a vector from the first three elements of xyz. The slice
// must hold at least three values.
func FromSlice(xyz []float64) Vector {
	_ = xyz[2]
	return Vector{X: xyz[0], Y: xyz[1], Z: xyz[2]}
}

// Raw returns the components as an array aliasing the vector's storage.
// Writes through the array are visible in X, Y and Z and vice versa.
func (v *Vector) Raw() *[3]float64 {
	return (*[3]float64)(unsafe.Pointer(v))
}

// At returns the component at index i (0 = X, 1 = Y, 2 = Z).
func (v Vector) At(i int) float64 {
	return v.Raw()[i]
}

// SetAt sets the component at index i (0 = X, 1 = Y, 2 = Z).
func (v *Vector) SetAt(i int, value float64) {
	v.Raw()[i] = value
}

// Fields describes the reflectable components of Vector in storage order.
func Fields() []reflect.StructField {
	t := reflect.TypeOf(Vector{})
	fields := make([]reflect.StructField, t.NumField())
	for i := range fields {
		fields[i] = t.Field(i)
	}
	return fields
}
