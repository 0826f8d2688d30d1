package geometry

// Polygon is an ordered list of vertices. Points are only ever appended.
type Polygon struct {
	points []Point
}

// NewPolygon creates a polygon from the given vertices.
func NewPolygon(points ...Point) Polygon {
	p := Polygon{}
	for _, pt := range points {
		p.Add(pt)
	}
	return p
}

// Add appends a vertex.
func (p *Polygon) Add(pt Point) {
	p.points = append(p.points, pt)
}

func (p Polygon) Len() int { return len(p.points) }

// Vertices returns a copy of the vertices in insertion order.
func (p Polygon) Vertices() []Point {
	out := make([]Point, len(p.points))
	copy(out, p.points)
	return out
}

// Edges returns the boundary segments. With fewer than two vertices there
// are none. Two vertices give a single open edge; three or more give one
// edge per consecutive pair plus the edge closing the last vertex back to
// the first.
func (p Polygon) Edges() []Segment {
	n := len(p.points)
	if n < 2 {
		return nil
	}

	edges := make([]Segment, 0, n)
	for i := 1; i < n; i++ {
		edges = append(edges, Segment{Start: p.points[i-1], End: p.points[i]})
	}
	if n > 2 {
		edges = append(edges, Segment{Start: p.points[n-1], End: p.points[0]})
	}
	return edges
}

// Clone returns a copy that shares no storage with p.
func (p Polygon) Clone() Polygon {
	if p.points == nil {
		return Polygon{}
	}
	return Polygon{points: p.Vertices()}
}
