package double3

import (
	"math"

	"github.com/opd-ai/go-worldmath/pkg/mathd"
)

// IsNormalized reports whether the vector has unit length within
// mathd.ZeroTolerance of its squared length.
func (v Vector) IsNormalized() bool {
	return mathd.IsOne(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// IsZero reports whether every component is near zero.
func (v Vector) IsZero() bool {
	return mathd.IsZero(v.X) && mathd.IsZero(v.Y) && mathd.IsZero(v.Z)
}

// IsAnyZero reports whether at least one component is near zero.
func (v Vector) IsAnyZero() bool {
	return mathd.IsZero(v.X) || mathd.IsZero(v.Y) || mathd.IsZero(v.Z)
}

// IsOne reports whether every component is near one.
func (v Vector) IsOne() bool {
	return mathd.IsOne(v.X) && mathd.IsOne(v.Y) && mathd.IsOne(v.Z)
}

// IsNaN reports whether any component is NaN.
func (v Vector) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// IsInfinity reports whether any component is +Inf or -Inf.
func (v Vector) IsInfinity() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) || math.IsInf(v.Z, 0)
}

// IsNanOrInfinity reports whether any component is NaN or infinite.
func (v Vector) IsNanOrInfinity() bool {
	return v.IsInfinity() || v.IsNaN()
}

// NearEqual compares v and other component-wise using mathd.ZeroTolerance.
func (v Vector) NearEqual(other Vector) bool {
	return NearEqual(v, other)
}

// NearEqual reports whether every component of a is within
// mathd.ZeroTolerance of b.
func NearEqual(a, b Vector) bool {
	return mathd.NearEqual(a.X, b.X) && mathd.NearEqual(a.Y, b.Y) && mathd.NearEqual(a.Z, b.Z)
}

// NearEqualEpsilon reports whether every component of a is within epsilon of
// b. There is no aggregate tolerance: each axis is checked on its own.
func NearEqualEpsilon(a, b Vector, epsilon float64) bool {
	return mathd.NearEqualEpsilon(a.X, b.X, epsilon) &&
		mathd.NearEqualEpsilon(a.Y, b.Y, epsilon) &&
		mathd.NearEqualEpsilon(a.Z, b.Z, epsilon)
}
