package double3

import (
	"math"

	"github.com/opd-ai/go-worldmath/pkg/mathd"
)

// Dot returns the dot product of v and other.
func (v Vector) Dot(other Vector) float64 {
	return Dot(v, other)
}

// Cross returns the right-handed cross product v x other.
func (v Vector) Cross(other Vector) Vector {
	return Cross(v, other)
}

// Dot returns the dot product of a and b.
func Dot(a, b Vector) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// ScalarProduct is the same operation as Dot.
func ScalarProduct(a, b Vector) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the right-handed cross product a x b.
func Cross(a, b Vector) Vector {
	// The conversions round each product before subtracting, which keeps the
	// compiler from fusing them. Cross(a, b) == -Cross(b, a) and
	// Cross(a, a) == Zero then hold exactly.
	return Vector{
		X: float64(a.Y*b.Z) - float64(a.Z*b.Y),
		Y: float64(a.Z*b.X) - float64(a.X*b.Z),
		Z: float64(a.X*b.Y) - float64(a.Y*b.X),
	}
}

// CrossTo stores a x b in result.
func CrossTo(a, b Vector, result *Vector) {
	*result = Cross(a, b)
}

// Distance returns the distance between two points.
func Distance(a, b Vector) float64 {
	x := a.X - b.X
	y := a.Y - b.Y
	z := a.Z - b.Z
	return math.Sqrt(x*x + y*y + z*z)
}

// DistanceSquared returns the squared distance between two points.
func DistanceSquared(a, b Vector) float64 {
	x := a.X - b.X
	y := a.Y - b.Y
	z := a.Z - b.Z
	return x*x + y*y + z*z
}

// Reflect returns vector reflected off a surface with the given normal. The
// normal is expected to be unit length.
func Reflect(vector, normal Vector) Vector {
	var result Vector
	ReflectTo(vector, normal, &result)
	return result
}

// ReflectTo stores the reflection of vector off normal in result.
func ReflectTo(vector, normal Vector, result *Vector) {
	dot := Dot(vector, normal)
	*result = Vector{
		X: vector.X - 2*dot*normal.X,
		Y: vector.Y - 2*dot*normal.Y,
		Z: vector.Z - 2*dot*normal.Z,
	}
}

// Lerp interpolates linearly between start and end. Amount is not clamped;
// values outside [0, 1] extrapolate.
func Lerp(start, end Vector, amount float64) Vector {
	var result Vector
	LerpTo(start, end, amount, &result)
	return result
}

// LerpTo stores the linear interpolation of start and end in result.
func LerpTo(start, end Vector, amount float64, result *Vector) {
	result.X = mathd.Lerp(start.X, end.X, amount)
	result.Y = mathd.Lerp(start.Y, end.Y, amount)
	result.Z = mathd.Lerp(start.Z, end.Z, amount)
}

// SmoothStep interpolates between start and end with a cubic ease in and out.
func SmoothStep(start, end Vector, amount float64) Vector {
	var result Vector
	SmoothStepTo(start, end, amount, &result)
	return result
}

// SmoothStepTo stores the smooth step interpolation in result.
func SmoothStepTo(start, end Vector, amount float64, result *Vector) {
	LerpTo(start, end, mathd.SmoothStep(amount), result)
}

// Hermite evaluates the cubic Hermite spline through value1 and value2 with
// the given tangents.
func Hermite(value1, tangent1, value2, tangent2 Vector, amount float64) Vector {
	var result Vector
	HermiteTo(value1, tangent1, value2, tangent2, amount, &result)
	return result
}

// HermiteTo stores the Hermite spline evaluation in result.
func HermiteTo(value1, tangent1, value2, tangent2 Vector, amount float64, result *Vector) {
	squared := amount * amount
	cubed := amount * squared
	part1 := 2.0*cubed - 3.0*squared + 1.0
	part2 := -2.0*cubed + 3.0*squared
	part3 := cubed - 2.0*squared + amount
	part4 := cubed - squared

	result.X = value1.X*part1 + value2.X*part2 + tangent1.X*part3 + tangent2.X*part4
	result.Y = value1.Y*part1 + value2.Y*part2 + tangent1.Y*part3 + tangent2.Y*part4
	result.Z = value1.Z*part1 + value2.Z*part2 + tangent1.Z*part3 + tangent2.Z*part4
}

// TriangleArea returns the area of the triangle v0, v1, v2.
func TriangleArea(v0, v1, v2 Vector) float64 {
	return Cross(v2.Subtract(v0), v1.Subtract(v0)).Length() * 0.5
}

// Angle returns the smallest angle in radians between two directions. The
// cosine is clamped to [-1, 1] and snaps to 0 or Pi when it is within
// mathd.ZeroTolerance of either end, so rounding never pushes acos out of its
// domain. Inputs are normalized with the guarded Normalize, so a zero length
// input gives Pi/2.
func Angle(from, to Vector) float64 {
	dot := mathd.Clamp(Dot(Normalize(from), Normalize(to)), -1, 1)
	if math.Abs(dot) > 1-mathd.ZeroTolerance {
		if dot > 0 {
			return 0
		}
		return math.Pi
	}
	return math.Acos(dot)
}
