package geometry

import "math"

// Vector is the displacement between two points.
type Vector struct {
	DX float64
	DY float64
}

// NewVector returns end - start.
func NewVector(start, end Point) Vector {
	return Vector{DX: end.X - start.X, DY: end.Y - start.Y}
}

func (v Vector) SquaredLength() float64 { return v.DX*v.DX + v.DY*v.DY }

func (v Vector) Length() float64 { return math.Hypot(v.DX, v.DY) }

func (v Vector) IsZero() bool { return v.DX == 0 && v.DY == 0 }

// Rotate turns the vector counterclockwise by angle radians.
func (v Vector) Rotate(angle float64) Vector {
	sin, cos := math.Sincos(angle)
	return Vector{
		DX: v.DX*cos - v.DY*sin,
		DY: v.DX*sin + v.DY*cos,
	}
}

func (v Vector) Add(o Vector) Vector { return Vector{DX: v.DX + o.DX, DY: v.DY + o.DY} }

// Dot returns the scalar product of v and o.
func (v Vector) Dot(o Vector) float64 { return v.DX*o.DX + v.DY*o.DY }

// Cross returns the z component of the 3D cross product of v and o.
func (v Vector) Cross(o Vector) float64 { return v.DX*o.DY - v.DY*o.DX }

// Mul multiplies both components by factor.
func (v Vector) Mul(factor float64) Vector { return Vector{DX: v.DX * factor, DY: v.DY * factor} }

// Scale returns a vector with the direction of v and the given length.
// A zero vector has no direction and yields ErrZeroLength.
func (v Vector) Scale(length float64) (Vector, error) {
	l := v.Length()
	if l == 0 {
		return Vector{}, ErrZeroLength
	}
	return v.Mul(length / l), nil
}
