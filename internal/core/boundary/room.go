package boundary

import "github.com/zeusync/cleanerbot/internal/core/geometry"

// Room is the ordered set of walls bounding the environment. A room
// without walls is open space.
type Room struct {
	walls []*Wall
}

func NewRoom() *Room {
	return &Room{}
}

// AddWall appends a copy of the wall.
func (r *Room) AddWall(w *Wall) {
	r.walls = append(r.walls, w.Clone())
}

// Walls returns deep copies of the room's walls in insertion order.
func (r *Room) Walls() []*Wall {
	out := make([]*Wall, len(r.walls))
	for i, w := range r.walls {
		out[i] = w.Clone()
	}
	return out
}

func (r *Room) Len() int { return len(r.walls) }

// Clone returns an independent copy of the room.
func (r *Room) Clone() *Room {
	return &Room{walls: r.Walls()}
}

// Distance implements Boundary.
func (r *Room) Distance(ray geometry.Ray) float64 {
	hit, ok := r.NearestHit(ray)
	if !ok {
		return MaxDistance
	}
	return hit.Distance
}

// NearestHit returns the closest intersection over all walls. Hit.Wall
// holds the index of the wall that was hit.
func (r *Room) NearestHit(ray geometry.Ray) (Hit, bool) {
	best := Hit{Distance: MaxDistance}
	found := false
	for i, w := range r.walls {
		hit, ok := w.NearestHit(ray)
		if ok && hit.Distance < best.Distance {
			best = hit
			best.Wall = i
			found = true
		}
	}
	return best, found
}
