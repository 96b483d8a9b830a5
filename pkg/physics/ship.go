package physics

import (
	"github.com/opd-ai/go-worldmath/pkg/double3"
	"github.com/opd-ai/go-worldmath/pkg/mathf"
)

// MovementState tracks the motion of a body in world space. Orientation must
// be a unit quaternion; use mathf.IdentityQuaternion for an unrotated body.
type MovementState struct {
	Position    double3.Vector
	Velocity    double3.Vector
	Orientation mathf.Quaternion
	Mass        float64
	Thrust      float64
	MaxSpeed    float64
}

// Forward returns the direction the body faces in world space.
func (s *MovementState) Forward() double3.Vector {
	return double3.Transform(double3.Forward, s.Orientation)
}

// UpdateMovement advances state by deltaTime seconds. turnRates holds yaw,
// pitch and roll rates in radians per second, applied in the body's local
// frame. Thrust accelerates along Forward, divided by Mass when Mass is
// positive.
func UpdateMovement(state *MovementState, deltaTime float64, thrustInput float64, turnRates double3.Vector) {
	if !turnRates.IsZero() {
		delta := mathf.RotationYawPitchRoll(
			float32(turnRates.X*deltaTime),
			float32(turnRates.Y*deltaTime),
			float32(turnRates.Z*deltaTime),
		)
		state.Orientation = delta.Multiply(state.Orientation).Normalize()
	}

	acceleration := thrustInput * state.Thrust
	if state.Mass > 0 {
		acceleration /= state.Mass
	}
	thrustVector := state.Forward().MultiplyScalar(acceleration)

	state.Velocity.AddAssign(thrustVector.MultiplyScalar(deltaTime))

	if state.Velocity.Length() > state.MaxSpeed {
		state.Velocity = state.Velocity.GetNormalized().MultiplyScalar(state.MaxSpeed)
	}

	state.Position.AddAssign(state.Velocity.MultiplyScalar(deltaTime))
}
