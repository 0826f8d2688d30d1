package boundary

import (
	"errors"
	"math"

	"github.com/zeusync/cleanerbot/internal/core/geometry"
)

// MaxDistance is reported when a ray meets no obstacle at all.
const MaxDistance = math.MaxFloat64

// DefaultThickness is the wall thickness used by scenes that omit one.
const DefaultThickness = 0.12

var ErrInvalidThickness = errors.New("wall thickness must be positive")

var (
	_ Boundary = (*Wall)(nil)
	_ Boundary = (*Room)(nil)
)

// Boundary is anything a sensing ray can run into.
type Boundary interface {
	// Distance returns the distance from the ray's origin to the nearest
	// intersection, or MaxDistance when there is none.
	Distance(ray geometry.Ray) float64
}

// IsUnbounded reports whether d is the "no obstacle" sentinel.
func IsUnbounded(d float64) bool { return d == MaxDistance }

// Hit describes the nearest intersection of a ray with a boundary.
type Hit struct {
	Point    geometry.Point
	Distance float64
	// Wall is the index of the hit wall within its room; always 0 for a
	// hit reported by a single wall.
	Wall int
}
