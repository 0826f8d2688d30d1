package geometry

import (
	"math"
	"strconv"
)

// Point is an immutable coordinate in the plane.
type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point { return Point{X: x, Y: y} }

// Add translates the point by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.DX, Y: p.Y + v.DY}
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 { return math.Hypot(q.X-p.X, q.Y-p.Y) }

// String renders the point as "x,y", the vertex form the visualizer reads.
func (p Point) String() string {
	return strconv.FormatFloat(p.X, 'g', -1, 64) + "," + strconv.FormatFloat(p.Y, 'g', -1, 64)
}
