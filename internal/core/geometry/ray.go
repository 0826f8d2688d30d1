package geometry

import "math"

// Ray is a half-line starting at an origin and heading in a unit direction.
type Ray struct {
	origin    Point
	direction Vector
}

// NewRay creates a ray starting at origin and passing through the given point.
func NewRay(origin, through Point) (Ray, error) {
	dir, err := NewVector(origin, through).Scale(1)
	if err != nil {
		return Ray{}, ErrDegenerateRay
	}
	return Ray{origin: origin, direction: dir}, nil
}

// NewRayAngle creates a ray starting at origin with the given angle
// (radians) from the x-axis.
func NewRayAngle(origin Point, angle float64) Ray {
	sin, cos := math.Sincos(angle)
	return Ray{origin: origin, direction: Vector{DX: cos, DY: sin}}
}

func (r Ray) Origin() Point { return r.origin }

// Direction returns the unit direction vector.
func (r Ray) Direction() Vector { return r.direction }

// Through returns the point on the ray at unit distance from the origin.
func (r Ray) Through() Point { return r.origin.Add(r.direction) }

// Angle returns the direction's angle from the x-axis in (-π, π].
func (r Ray) Angle() float64 { return math.Atan2(r.direction.DY, r.direction.DX) }

// Rotate turns the ray around its origin.
func (r Ray) Rotate(angle float64) Ray {
	return Ray{origin: r.origin, direction: r.direction.Rotate(angle)}
}

// PointAt returns the point at the given distance from the origin.
func (r Ray) PointAt(distance float64) Point {
	return r.origin.Add(r.direction.Mul(distance))
}
