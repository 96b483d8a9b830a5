// pkg/physics/collision.go
package physics

import (
	"math"

	"github.com/opd-ai/go-worldmath/pkg/double3"
)

// Sphere represents a spherical collision shape
type Sphere struct {
	Center double3.Vector
	Radius float64
}

// Collides checks if two spheres are colliding
func (s Sphere) Collides(other Sphere) bool {
	return double3.Distance(s.Center, other.Center) < s.Radius+other.Radius
}

// IntersectsBox checks if the sphere overlaps an axis-aligned box
func (s Sphere) IntersectsBox(box Box) bool {
	closest := box.ClosestPoint(s.Center)
	return double3.DistanceSquared(closest, s.Center) <= s.Radius*s.Radius
}

// CollisionResult contains information about a collision
type CollisionResult struct {
	Collided     bool
	Normal       double3.Vector
	Penetration  float64
	ContactPoint double3.Vector
}

// CheckCollision performs detailed collision detection between two spheres.
// Coincident centers report double3.Up as the normal.
func CheckCollision(a, b Sphere) CollisionResult {
	// Vector from A to B
	normal := b.Center.Subtract(a.Center)
	distance := normal.Length()

	if distance > a.Radius+b.Radius {
		return CollisionResult{Collided: false}
	}

	penetration := a.Radius + b.Radius - distance

	normal = double3.Normalize(normal)
	if normal.IsZero() {
		normal = double3.Up
	}
	contactPoint := a.Center.Add(normal.MultiplyScalar(a.Radius))

	return CollisionResult{
		Collided:     true,
		Normal:       normal,
		Penetration:  penetration,
		ContactPoint: contactPoint,
	}
}

// Box represents an axis-aligned box. Min must not exceed Max on any axis.
type Box struct {
	Min double3.Vector
	Max double3.Vector
}

// NewBox returns the smallest box containing every point. It returns the
// zero box when points is empty.
func NewBox(points ...double3.Vector) Box {
	if len(points) == 0 {
		return Box{}
	}
	box := Box{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box.Min = double3.Min(box.Min, p)
		box.Max = double3.Max(box.Max, p)
	}
	return box
}

// Contains reports whether point lies inside the box, boundary included.
func (b Box) Contains(point double3.Vector) bool {
	return point.GreaterOrEqual(b.Min) && point.LessOrEqual(b.Max)
}

// Intersects reports whether two boxes overlap, touching faces included.
func (b Box) Intersects(other Box) bool {
	return b.Min.LessOrEqual(other.Max) && b.Max.GreaterOrEqual(other.Min)
}

// Merge returns the smallest box containing both boxes.
func (b Box) Merge(other Box) Box {
	return Box{
		Min: double3.Min(b.Min, other.Min),
		Max: double3.Max(b.Max, other.Max),
	}
}

func (b Box) Center() double3.Vector {
	return double3.Lerp(b.Min, b.Max, 0.5)
}

func (b Box) Size() double3.Vector {
	return b.Max.Subtract(b.Min)
}

// ClosestPoint returns the point of the box nearest to point.
func (b Box) ClosestPoint(point double3.Vector) double3.Vector {
	return double3.Clamp(point, b.Min, b.Max)
}

// Ray is a half line starting at Origin. Direction should be normalized.
type Ray struct {
	Origin    double3.Vector
	Direction double3.Vector
}

// IntersectsSphere returns the distance along the ray to the first hit on
// the sphere. A ray starting inside the sphere hits at distance zero.
func (r Ray) IntersectsSphere(s Sphere) (float64, bool) {
	offset := r.Origin.Subtract(s.Center)
	b := double3.Dot(offset, r.Direction)
	c := offset.LengthSquared() - s.Radius*s.Radius

	if c > 0 && b > 0 {
		return 0, false
	}
	discriminant := b*b - c
	if discriminant < 0 {
		return 0, false
	}

	distance := -b - math.Sqrt(discriminant)
	if distance < 0 {
		distance = 0
	}
	return distance, true
}
