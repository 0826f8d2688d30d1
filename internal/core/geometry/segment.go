package geometry

import "math"

// Segment is a directed line between two points.
type Segment struct {
	Start Point
	End   Point
}

func NewSegment(start, end Point) Segment { return Segment{Start: start, End: end} }

func (s Segment) Vector() Vector { return NewVector(s.Start, s.End) }

func (s Segment) Length() float64 { return s.Vector().Length() }

func (s Segment) SquaredLength() float64 { return s.Vector().SquaredLength() }

// Contains reports whether p lies on the segment. The distances from p to
// both endpoints must add up to the segment length within Tolerance.
func (s Segment) Contains(p Point) bool {
	sum := s.Start.DistanceTo(p) + p.DistanceTo(s.End)
	return math.Abs(s.Length()-sum) <= Tolerance
}

// Intersect finds the point where s and other cross, if any.
func (s Segment) Intersect(other Segment) (Point, bool) {
	p, ok := s.lineIntersection(other)
	if !ok || !s.Contains(p) || !other.Contains(p) {
		return Point{}, false
	}
	return p, true
}

// IntersectRay finds the point where the ray crosses s, if any. Points
// behind the ray's origin are rejected; a hit on the origin itself counts.
func (s Segment) IntersectRay(r Ray) (Point, bool) {
	p, ok := s.lineIntersection(Segment{Start: r.Origin(), End: r.Through()})
	if !ok || !s.Contains(p) {
		return Point{}, false
	}

	toHit := NewVector(r.Origin(), p)
	if toHit.Length() < Tolerance {
		return p, true
	}
	dir, err := toHit.Scale(1)
	if err != nil {
		return Point{}, false
	}
	want := r.Direction()
	if math.Abs(dir.DX-want.DX) >= Tolerance || math.Abs(dir.DY-want.DY) >= Tolerance {
		return Point{}, false
	}
	return p, true
}

// lineIntersection intersects the infinite lines through s and other.
// Parallel lines, including nearly parallel ones, do not intersect.
func (s Segment) lineIntersection(other Segment) (Point, bool) {
	v1 := s.Vector()
	v2 := other.Vector()

	len1 := v1.Length()
	len2 := v2.Length()
	if len1 == 0 || len2 == 0 {
		return Point{}, false
	}

	div := v1.Cross(v2)
	if math.Abs(div)/(len1*len2) < Tolerance {
		return Point{}, false
	}

	v3 := NewVector(other.Start, s.Start)
	ua := v2.Cross(v3) / div
	return s.Start.Add(v1.Mul(ua)), true
}
