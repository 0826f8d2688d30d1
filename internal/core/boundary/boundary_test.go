package boundary

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/cleanerbot/internal/core/geometry"
)

func pt(x, y float64) geometry.Point { return geometry.NewPoint(x, y) }

func mustSection(t *testing.T, a, b geometry.Point, thickness float64) *Wall {
	t.Helper()
	w, err := NewWallSection(a, b, thickness)
	require.NoError(t, err)
	return w
}

// boxRoom builds a closed rectangular room of four straight walls.
func boxRoom(t *testing.T, width, height, thickness float64) *Room {
	t.Helper()
	room := NewRoom()
	room.AddWall(mustSection(t, pt(0, 0), pt(width, 0), thickness))
	room.AddWall(mustSection(t, pt(width, 0), pt(width, height), thickness))
	room.AddWall(mustSection(t, pt(width, height), pt(0, height), thickness))
	room.AddWall(mustSection(t, pt(0, height), pt(0, 0), thickness))
	return room
}

func TestWallSectionRectangle(t *testing.T) {
	w := mustSection(t, pt(0, 0), pt(10, 0), 1)

	shape := w.Shape()
	require.Len(t, shape, 1)

	want := []geometry.Point{pt(-0.5, 0.5), pt(-0.5, -0.5), pt(10.5, -0.5), pt(10.5, 0.5)}
	got := shape[0].Vertices()
	require.Len(t, got, 4)
	for i := range want {
		assert.InDelta(t, want[i].X, got[i].X, 1e-9, "vertex %d x", i)
		assert.InDelta(t, want[i].Y, got[i].Y, 1e-9, "vertex %d y", i)
	}
	assert.Len(t, shape[0].Edges(), 4)
}

func TestWallSectionRejectsDegenerateInput(t *testing.T) {
	_, err := NewWallSection(pt(1, 1), pt(1, 1), 0.12)
	assert.ErrorIs(t, err, geometry.ErrZeroLength)

	_, err = NewWallSection(pt(0, 0), pt(1, 1), 0)
	assert.ErrorIs(t, err, ErrInvalidThickness)

	_, err = NewWallSection(pt(0, 0), pt(1, 1), -1)
	assert.ErrorIs(t, err, ErrInvalidThickness)
}

func TestWallDistanceThinWallFromAbove(t *testing.T) {
	w := mustSection(t, pt(0, 0), pt(10, 0), 0.12)
	d := w.Distance(geometry.NewRayAngle(pt(5, 5), -math.Pi/2))
	assert.InDelta(t, 4.94, d, 1e-9)
}

func TestWallDistanceParallelRay(t *testing.T) {
	w := mustSection(t, pt(0, 0), pt(10, 0), 0.12)
	d := w.Distance(geometry.NewRayAngle(pt(-5, 3), 0))
	assert.True(t, IsUnbounded(d))
	assert.Equal(t, MaxDistance, d)
}

func TestWallDistanceMissesBehindOrigin(t *testing.T) {
	w := mustSection(t, pt(0, 0), pt(10, 0), 0.12)
	d := w.Distance(geometry.NewRayAngle(pt(5, 5), math.Pi/2))
	assert.Equal(t, MaxDistance, d)
}

func TestWallDistanceOriginOnBoundary(t *testing.T) {
	w := mustSection(t, pt(0, 0), pt(10, 0), 0.12)
	d := w.Distance(geometry.NewRayAngle(pt(5, 0.06), math.Pi/2))
	assert.InDelta(t, 0, d, 1e-6)
}

func TestWallMultipleShapes(t *testing.T) {
	w := NewWallFromShape(geometry.NewPolygon(pt(0, 4), pt(10, 4)))
	require.NoError(t, w.AddSection(pt(0, 2), pt(10, 2), 0.2))

	hit, ok := w.NearestHit(geometry.NewRayAngle(pt(5, 0), math.Pi/2))
	require.True(t, ok)
	assert.InDelta(t, 1.9, hit.Distance, 1e-9)
	assert.InDelta(t, 5, hit.Point.X, 1e-9)
	assert.Len(t, w.Shape(), 2)
}

func TestWallIgnoresMalformedPolygons(t *testing.T) {
	w := NewWall()
	w.AddShape(geometry.NewPolygon(pt(5, 5)))
	w.AddShape(geometry.Polygon{})
	assert.Equal(t, MaxDistance, w.Distance(geometry.NewRayAngle(pt(0, 0), math.Pi/4)))
}

func TestWallCopiesDoNotAlias(t *testing.T) {
	shape := geometry.NewPolygon(pt(0, 0), pt(1, 0))
	w := NewWallFromShape(shape)
	shape.Add(pt(1, 1))
	assert.Equal(t, 2, w.Shape()[0].Len())

	c := w.Clone()
	c.AddShape(geometry.NewPolygon(pt(3, 3), pt(4, 4)))
	assert.Len(t, w.Shape(), 1)
	assert.Len(t, c.Shape(), 2)
}

func TestRoomDistanceInsideBox(t *testing.T) {
	room := boxRoom(t, 10, 8, 0.1)
	origin := pt(3, 2)

	tests := []struct {
		name  string
		angle float64
		want  float64
	}{
		{"east", 0, 6.95},
		{"north", math.Pi / 2, 5.95},
		{"west", math.Pi, 2.95},
		{"south", -math.Pi / 2, 1.95},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := room.Distance(geometry.NewRayAngle(origin, tt.angle))
			assert.InDelta(t, tt.want, d, 1e-9)
		})
	}
}

func TestRoomNearestHitReportsWall(t *testing.T) {
	room := boxRoom(t, 10, 8, 0.1)
	hit, ok := room.NearestHit(geometry.NewRayAngle(pt(3, 2), math.Pi/2))
	require.True(t, ok)
	assert.Equal(t, 2, hit.Wall)
	assert.InDelta(t, 7.95, hit.Point.Y, 1e-9)
}

func TestEmptyRoomIsUnbounded(t *testing.T) {
	room := NewRoom()
	for _, angle := range []float64{0, 1, 2, -3} {
		assert.Equal(t, MaxDistance, room.Distance(geometry.NewRayAngle(pt(1, 1), angle)))
	}
	_, ok := room.NearestHit(geometry.NewRayAngle(pt(1, 1), 0))
	assert.False(t, ok)
}

func TestRoomWallsIdempotent(t *testing.T) {
	room := boxRoom(t, 4, 4, 0.12)

	first := room.Walls()
	second := room.Walls()
	require.Len(t, first, 4)

	opt := cmp.AllowUnexported(Wall{}, geometry.Polygon{})
	if diff := cmp.Diff(first, second, opt); diff != "" {
		t.Fatalf("Walls() changed between calls (-first +second):\n%s", diff)
	}

	first[0].AddShape(geometry.NewPolygon(pt(0, 0), pt(1, 1)))
	assert.Len(t, room.Walls()[0].Shape(), 1)

	clone := room.Clone()
	clone.AddWall(NewWall())
	assert.Equal(t, 4, room.Len())
	assert.Equal(t, 5, clone.Len())
}
