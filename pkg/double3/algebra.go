package double3

import (
	"math"

	"github.com/opd-ai/go-worldmath/pkg/mathd"
)

// Add returns the component-wise sum of v and other.
func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Subtract returns the component-wise difference of v and other.
func (v Vector) Subtract(other Vector) Vector {
	return Vector{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Multiply returns the component-wise product of v and other.
func (v Vector) Multiply(other Vector) Vector {
	return Vector{X: v.X * other.X, Y: v.Y * other.Y, Z: v.Z * other.Z}
}

// Divide returns the component-wise quotient of v and other. Zero components
// in other yield IEEE infinities or NaN.
func (v Vector) Divide(other Vector) Vector {
	return Vector{X: v.X / other.X, Y: v.Y / other.Y, Z: v.Z / other.Z}
}

// AddScalar adds s to every component.
func (v Vector) AddScalar(s float64) Vector {
	return Vector{X: v.X + s, Y: v.Y + s, Z: v.Z + s}
}

// SubtractScalar subtracts s from every component.
func (v Vector) SubtractScalar(s float64) Vector {
	return Vector{X: v.X - s, Y: v.Y - s, Z: v.Z - s}
}

// MultiplyScalar scales every component by s.
func (v Vector) MultiplyScalar(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// DivideScalar divides every component by s.
func (v Vector) DivideScalar(s float64) Vector {
	return Vector{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// AddAssign adds other to v in place.
func (v *Vector) AddAssign(other Vector) {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
}

// SubtractAssign subtracts other from v in place.
func (v *Vector) SubtractAssign(other Vector) {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
}

// MultiplyAssign multiplies v by other component-wise in place.
func (v *Vector) MultiplyAssign(other Vector) {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
}

// DivideAssign divides v by other component-wise in place.
func (v *Vector) DivideAssign(other Vector) {
	v.X /= other.X
	v.Y /= other.Y
	v.Z /= other.Z
}

// AddScalarAssign adds s to every component in place.
func (v *Vector) AddScalarAssign(s float64) {
	*v = AddScalar(*v, s)
}

// SubtractScalarAssign subtracts s from every component in place.
func (v *Vector) SubtractScalarAssign(s float64) {
	*v = SubtractScalar(*v, s)
}

// MultiplyScalarAssign scales every component by s in place.
func (v *Vector) MultiplyScalarAssign(s float64) {
	*v = MultiplyScalar(*v, s)
}

// DivideScalarAssign divides every component by s in place.
func (v *Vector) DivideScalarAssign(s float64) {
	*v = DivideScalar(*v, s)
}

// Add returns a + b.
func Add(a, b Vector) Vector {
	var result Vector
	AddTo(a, b, &result)
	return result
}

// AddTo stores a + b in result.
func AddTo(a, b Vector, result *Vector) {
	result.X = a.X + b.X
	result.Y = a.Y + b.Y
	result.Z = a.Z + b.Z
}

// Subtract returns a - b.
func Subtract(a, b Vector) Vector {
	var result Vector
	SubtractTo(a, b, &result)
	return result
}

// SubtractTo stores a - b in result.
func SubtractTo(a, b Vector, result *Vector) {
	result.X = a.X - b.X
	result.Y = a.Y - b.Y
	result.Z = a.Z - b.Z
}

// Multiply returns the component-wise product of a and b.
func Multiply(a, b Vector) Vector {
	return Vector{X: a.X * b.X, Y: a.Y * b.Y, Z: a.Z * b.Z}
}

// MultiplyTo stores the component-wise product of a and b in result.
func MultiplyTo(a, b Vector, result *Vector) {
	*result = Vector{X: a.X * b.X, Y: a.Y * b.Y, Z: a.Z * b.Z}
}

// Divide returns the component-wise quotient of a and b.
func Divide(a, b Vector) Vector {
	return Vector{X: a.X / b.X, Y: a.Y / b.Y, Z: a.Z / b.Z}
}

// DivideTo stores the component-wise quotient of a and b in result.
func DivideTo(a, b Vector, result *Vector) {
	*result = Vector{X: a.X / b.X, Y: a.Y / b.Y, Z: a.Z / b.Z}
}

// AddScalar returns a with s added to every component. Addition commutes, so
// this also covers s + a.
func AddScalar(a Vector, s float64) Vector {
	return Vector{X: a.X + s, Y: a.Y + s, Z: a.Z + s}
}

// SubtractScalar returns a with s subtracted from every component.
func SubtractScalar(a Vector, s float64) Vector {
	return Vector{X: a.X - s, Y: a.Y - s, Z: a.Z - s}
}

// MultiplyScalar returns a scaled by s.
func MultiplyScalar(a Vector, s float64) Vector {
	return Vector{X: a.X * s, Y: a.Y * s, Z: a.Z * s}
}

// DivideScalar returns a with every component divided by s.
func DivideScalar(a Vector, s float64) Vector {
	return Vector{X: a.X / s, Y: a.Y / s, Z: a.Z / s}
}

// ScalarSubtract returns Splat(s) - v.
func ScalarSubtract(s float64, v Vector) Vector {
	return Splat(s).Subtract(v)
}

// ScalarDivide returns Splat(s) / v.
func ScalarDivide(s float64, v Vector) Vector {
	return Splat(s).Divide(v)
}

// GetNegative returns -v.
func (v Vector) GetNegative() Vector {
	return Vector{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Negate flips the sign of every component in place.
func (v *Vector) Negate() {
	v.X = -v.X
	v.Y = -v.Y
	v.Z = -v.Z
}

// GetAbsolute returns v with every component made non-negative.
func (v Vector) GetAbsolute() Vector {
	return Vector{X: math.Abs(v.X), Y: math.Abs(v.Y), Z: math.Abs(v.Z)}
}

// Absolute makes every component non-negative in place.
func (v *Vector) Absolute() {
	v.X = math.Abs(v.X)
	v.Y = math.Abs(v.Y)
	v.Z = math.Abs(v.Z)
}

// Equals reports exact component-wise equality.
func (v Vector) Equals(other Vector) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// Greater reports whether every component of v exceeds the matching
// component of other. The ordering is partial: two vectors can be neither
// Greater, Less nor Equals.
func (v Vector) Greater(other Vector) bool {
	return v.X > other.X && v.Y > other.Y && v.Z > other.Z
}

// GreaterOrEqual reports whether every component of v is >= other's.
func (v Vector) GreaterOrEqual(other Vector) bool {
	return v.X >= other.X && v.Y >= other.Y && v.Z >= other.Z
}

// Less reports whether every component of v is below other's.
func (v Vector) Less(other Vector) bool {
	return v.X < other.X && v.Y < other.Y && v.Z < other.Z
}

// LessOrEqual reports whether every component of v is <= other's.
func (v Vector) LessOrEqual(other Vector) bool {
	return v.X <= other.X && v.Y <= other.Y && v.Z <= other.Z
}

// Length returns the magnitude of the vector.
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude, avoiding the square root.
func (v Vector) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// InvLength returns 1 / Length.
func (v Vector) InvLength() float64 {
	return 1.0 / v.Length()
}

// GetNormalized returns v scaled to unit length. A zero vector produces NaN
// components.
func (v Vector) GetNormalized() Vector {
	rcp := 1.0 / v.Length()
	return Vector{X: v.X * rcp, Y: v.Y * rcp, Z: v.Z * rcp}
}

// Normalize scales v to unit length in place. Vectors shorter than
// mathd.ZeroTolerance are left untouched.
func (v *Vector) Normalize() {
	length := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
	if math.Abs(length) >= mathd.ZeroTolerance {
		inv := 1.0 / length
		v.X *= inv
		v.Y *= inv
		v.Z *= inv
	}
}

// NormalizeFast scales v to unit length in place without checking for a zero
// length. The vector must not be zero.
func (v *Vector) NormalizeFast() {
	inv := 1.0 / math.Sqrt(v.X*v.X+v.Y*v.Y+v.Z*v.Z)
	v.X *= inv
	v.Y *= inv
	v.Z *= inv
}

// Normalize returns input scaled to unit length, or input unchanged when its
// length is within mathd.ZeroTolerance of zero.
func Normalize(input Vector) Vector {
	var result Vector
	NormalizeTo(input, &result)
	return result
}

// NormalizeTo stores the normalized input in result. See Normalize.
func NormalizeTo(input Vector, result *Vector) {
	*result = input
	length := input.Length()
	if !mathd.IsZero(length) {
		inv := 1.0 / length
		result.X *= inv
		result.Y *= inv
		result.Z *= inv
	}
}

// NormalizeFast returns input scaled to unit length without the zero check.
// The input must not be zero.
func NormalizeFast(input Vector) Vector {
	inv := 1.0 / input.Length()
	return Vector{X: input.X * inv, Y: input.Y * inv, Z: input.Z * inv}
}

// AverageArithmetic returns the mean of the components. The sum is scaled by
// mathd.OneOverThree rather than divided by three.
func (v Vector) AverageArithmetic() float64 {
	return (v.X + v.Y + v.Z) * mathd.OneOverThree
}

// SumValues returns X + Y + Z.
func (v Vector) SumValues() float64 {
	return v.X + v.Y + v.Z
}

// MinValue returns the smallest component.
func (v Vector) MinValue() float64 {
	return math.Min(v.X, math.Min(v.Y, v.Z))
}

// MaxValue returns the largest component.
func (v Vector) MaxValue() float64 {
	return math.Max(v.X, math.Max(v.Y, v.Z))
}

// UnwindEuler treats the components as Euler angles in degrees and wraps
// each into [-180, 180].
func (v *Vector) UnwindEuler() {
	v.X = mathd.UnwindDegrees(v.X)
	v.Y = mathd.UnwindDegrees(v.Y)
	v.Z = mathd.UnwindDegrees(v.Z)
}

// Clamp restricts every component of value to the matching [min, max] range.
func Clamp(value, min, max Vector) Vector {
	var result Vector
	ClampTo(value, min, max, &result)
	return result
}

// ClampTo stores the clamped value in result. See Clamp.
func ClampTo(value, min, max Vector, result *Vector) {
	*result = Vector{
		X: mathd.Clamp(value.X, min.X, max.X),
		Y: mathd.Clamp(value.Y, min.Y, max.Y),
		Z: mathd.Clamp(value.Z, min.Z, max.Z),
	}
}

// Min returns the component-wise minimum of a and b.
func Min(a, b Vector) Vector {
	var result Vector
	MinTo(a, b, &result)
	return result
}

// MinTo stores the component-wise minimum of a and b in result.
func MinTo(a, b Vector, result *Vector) {
	*result = Vector{X: pickLess(a.X, b.X), Y: pickLess(a.Y, b.Y), Z: pickLess(a.Z, b.Z)}
}

// Max returns the component-wise maximum of a and b.
func Max(a, b Vector) Vector {
	var result Vector
	MaxTo(a, b, &result)
	return result
}

// MaxTo stores the component-wise maximum of a and b in result.
func MaxTo(a, b Vector, result *Vector) {
	*result = Vector{X: pickGreater(a.X, b.X), Y: pickGreater(a.Y, b.Y), Z: pickGreater(a.Z, b.Z)}
}

// pickLess and pickGreater return b on ties and when either side is NaN.
func pickLess(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func pickGreater(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Round rounds every component to the nearest integer, halves away from zero.
func Round(v Vector) Vector {
	return Vector{X: math.Round(v.X), Y: math.Round(v.Y), Z: math.Round(v.Z)}
}

// Ceil rounds every component up.
func Ceil(v Vector) Vector {
	return Vector{X: math.Ceil(v.X), Y: math.Ceil(v.Y), Z: math.Ceil(v.Z)}
}

// Floor rounds every component down.
func Floor(v Vector) Vector {
	return Vector{X: math.Floor(v.X), Y: math.Floor(v.Y), Z: math.Floor(v.Z)}
}

// Frac returns the fractional part of every component, keeping its sign.
func Frac(v Vector) Vector {
	return Vector{X: mathd.Frac(v.X), Y: mathd.Frac(v.Y), Z: mathd.Frac(v.Z)}
}

// Abs returns v with every component made non-negative.
func Abs(v Vector) Vector {
	return v.GetAbsolute()
}
