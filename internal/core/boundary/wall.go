package boundary

import (
	"math"

	"github.com/pkg/errors"

	"github.com/zeusync/cleanerbot/internal/core/geometry"
)

// Wall is a single obstacle made of one or more polygons. A straight wall
// is one rectangle; curved or angled walls add further sections or
// freeform shapes.
type Wall struct {
	shape []geometry.Polygon
}

// NewWall creates a wall without any shape.
func NewWall() *Wall {
	return &Wall{}
}

// NewWallFromShape creates a wall from a single polygon.
func NewWallFromShape(shape geometry.Polygon) *Wall {
	w := NewWall()
	w.AddShape(shape)
	return w
}

// NewWallSection creates a straight wall between two points.
func NewWallSection(end1, end2 geometry.Point, thickness float64) (*Wall, error) {
	w := NewWall()
	if err := w.AddSection(end1, end2, thickness); err != nil {
		return nil, err
	}
	return w, nil
}

// AddShape appends a copy of the polygon to the wall.
func (w *Wall) AddShape(shape geometry.Polygon) {
	w.shape = append(w.shape, shape.Clone())
}

// AddSection appends a rectangle whose long axis runs from end1 to end2.
// The rectangle extends thickness/2 to each side of the axis and past
// each end.
func (w *Wall) AddSection(end1, end2 geometry.Point, thickness float64) error {
	if thickness <= 0 || math.IsNaN(thickness) || math.IsInf(thickness, 0) {
		return errors.Wrapf(ErrInvalidThickness, "thickness %v", thickness)
	}

	// corner offset along the axis, rotated by ±45° and ±135° below
	cornerOffset, err := geometry.NewVector(end1, end2).Scale(thickness * math.Sqrt2 / 2)
	if err != nil {
		return errors.Wrapf(err, "wall section %s to %s", end1, end2)
	}

	poly := geometry.NewPolygon(
		end1.Add(cornerOffset.Rotate(3*math.Pi/4)),
		end1.Add(cornerOffset.Rotate(-3*math.Pi/4)),
		end2.Add(cornerOffset.Rotate(-math.Pi/4)),
		end2.Add(cornerOffset.Rotate(math.Pi/4)),
	)
	w.shape = append(w.shape, poly)
	return nil
}

// Shape returns a deep copy of the wall's polygons.
func (w *Wall) Shape() []geometry.Polygon {
	out := make([]geometry.Polygon, len(w.shape))
	for i, p := range w.shape {
		out[i] = p.Clone()
	}
	return out
}

// Clone returns an independent copy of the wall.
func (w *Wall) Clone() *Wall {
	return &Wall{shape: w.Shape()}
}

// Distance implements Boundary.
func (w *Wall) Distance(ray geometry.Ray) float64 {
	hit, ok := w.NearestHit(ray)
	if !ok {
		return MaxDistance
	}
	return hit.Distance
}

// NearestHit returns the closest intersection of the ray with any edge of
// any of the wall's polygons.
func (w *Wall) NearestHit(ray geometry.Ray) (Hit, bool) {
	best := Hit{Distance: MaxDistance}
	found := false
	for _, poly := range w.shape {
		for _, edge := range poly.Edges() {
			p, ok := edge.IntersectRay(ray)
			if !ok {
				continue
			}
			if d := ray.Origin().DistanceTo(p); d < best.Distance {
				best = Hit{Point: p, Distance: d}
				found = true
			}
		}
	}
	return best, found
}
