package mathf

import (
	"fmt"

	fmath "github.com/EngoEngine/math"
)

// Quaternion is a float32 rotation quaternion. W is the scalar part.
type Quaternion struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
	Z float32 `json:"z" yaml:"z"`
	W float32 `json:"w" yaml:"w"`
}

// IdentityQuaternion is the rotation that leaves vectors unchanged.
var IdentityQuaternion = Quaternion{W: 1}

// RotationAxis builds a rotation of angle radians around axis. The axis is
// normalized first.
func RotationAxis(axis Float3, angle float32) Quaternion {
	axis = axis.Normalize()
	half := angle * 0.5
	sin := fmath.Sin(half)
	cos := fmath.Cos(half)
	return Quaternion{
		X: axis.X * sin,
		Y: axis.Y * sin,
		Z: axis.Z * sin,
		W: cos,
	}
}

// RotationYawPitchRoll builds a rotation from yaw (Y axis), pitch (X axis)
// and roll (Z axis) angles in radians.
func RotationYawPitchRoll(yaw, pitch, roll float32) Quaternion {
	sinRoll, cosRoll := fmath.Sin(roll*0.5), fmath.Cos(roll*0.5)
	sinPitch, cosPitch := fmath.Sin(pitch*0.5), fmath.Cos(pitch*0.5)
	sinYaw, cosYaw := fmath.Sin(yaw*0.5), fmath.Cos(yaw*0.5)

	return Quaternion{
		X: cosYaw*sinPitch*cosRoll + sinYaw*cosPitch*sinRoll,
		Y: sinYaw*cosPitch*cosRoll - cosYaw*sinPitch*sinRoll,
		Z: cosYaw*cosPitch*sinRoll - sinYaw*sinPitch*cosRoll,
		W: cosYaw*cosPitch*cosRoll + sinYaw*sinPitch*sinRoll,
	}
}

// Length returns the quaternion norm.
func (q Quaternion) Length() float32 {
	return fmath.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize scales the quaternion to unit length. A zero quaternion is
// returned unchanged.
func (q Quaternion) Normalize() Quaternion {
	length := q.Length()
	if length == 0 {
		return q
	}
	inv := 1 / length
	return Quaternion{X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv, W: q.W * inv}
}

// Conjugate returns the inverse rotation of a unit quaternion.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Multiply composes two rotations: the result applies q first, then other.
func (q Quaternion) Multiply(other Quaternion) Quaternion {
	a, b := other, q
	return Quaternion{
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}

func (q Quaternion) String() string {
	return fmt.Sprintf("X:%v Y:%v Z:%v W:%v", q.X, q.Y, q.Z, q.W)
}
