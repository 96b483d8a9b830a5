// Package mathd holds the scalar helpers shared by the double and single
// precision vector families. The helpers are generic over the float types so
// float32 and float64 call sites round the same way.
package mathd

import (
	"math"

	"golang.org/x/exp/constraints"
)

// ZeroTolerance is the epsilon used by IsZero, IsOne and the default
// NearEqual comparison.
const ZeroTolerance = 1e-6

// OneOverThree is the reciprocal used for component averages.
const OneOverThree = 0.333333334

// IsZero reports whether a is within ZeroTolerance of zero.
func IsZero[T constraints.Float](a T) bool {
	return Abs(a) < ZeroTolerance
}

// IsOne reports whether a is within ZeroTolerance of one.
func IsOne[T constraints.Float](a T) bool {
	return IsZero(a - 1)
}

// NearEqual compares two values using ZeroTolerance.
func NearEqual[T constraints.Float](a, b T) bool {
	return Abs(a-b) < ZeroTolerance
}

// NearEqualEpsilon compares two values using a caller supplied tolerance.
func NearEqualEpsilon[T constraints.Float](a, b, epsilon T) bool {
	return Abs(a-b) <= epsilon
}

// Abs returns the absolute value of a.
func Abs[T constraints.Float](a T) T {
	return T(math.Abs(float64(a)))
}

// Lerp interpolates between a and b. Amount is not clamped, so values outside
// [0, 1] extrapolate. Lerp(a, b, 0) == a and Lerp(a, b, 1) == b exactly.
func Lerp[T constraints.Float](a, b, amount T) T {
	return a*(1-amount) + b*amount
}

// SmoothStep remaps amount in [0, 1] with 3t^2 - 2t^3. Inputs outside the
// range saturate.
func SmoothStep[T constraints.Float](amount T) T {
	if amount <= 0 {
		return 0
	}
	if amount >= 1 {
		return 1
	}
	return amount * amount * (3 - 2*amount)
}

// Clamp restricts value to [min, max]. When min > max the result is min.
func Clamp[T constraints.Float](value, min, max T) T {
	if value > max {
		value = max
	}
	if value < min {
		value = min
	}
	return value
}

// Frac returns the fractional part of a, keeping its sign.
func Frac[T constraints.Float](a T) T {
	return a - T(math.Trunc(float64(a)))
}

// UnwindDegrees wraps an angle in degrees into [-180, 180]. NaN and
// infinite angles give NaN.
func UnwindDegrees[T constraints.Float](angle T) T {
	angle = T(math.Mod(float64(angle), 360))
	if angle > 180 {
		angle -= 360
	} else if angle < -180 {
		angle += 360
	}
	return angle
}
