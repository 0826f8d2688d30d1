package scene

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/cleanerbot/internal/core/boundary"
	"github.com/zeusync/cleanerbot/internal/core/geometry"
)

const kitchen = `
name: kitchen
walls:
  - sections:
      - {from: [0, 0], to: [10, 0], thickness: 1}
  - sections:
      - {from: [10, 0], to: [10, 8]}
    shapes:
      - [[2, 2], [3, 2], [3, 3]]
robot: {x: 5, y: 5, heading: 90}
`

func TestLoadAndBuild(t *testing.T) {
	cfg, err := Load(strings.NewReader(kitchen))
	require.NoError(t, err)

	want := &Config{
		Name: "kitchen",
		Walls: []WallConfig{
			{Sections: []SectionConfig{{From: Coord{0, 0}, To: Coord{10, 0}, Thickness: 1}}},
			{
				Sections: []SectionConfig{{From: Coord{10, 0}, To: Coord{10, 8}}},
				Shapes:   [][]Coord{{{2, 2}, {3, 2}, {3, 3}}},
			},
		},
		Robot: &RobotConfig{X: 5, Y: 5, Heading: 90},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("unexpected config (-want +got):\n%s", diff)
	}
	assert.Equal(t, DefaultRobotDiameter, cfg.Robot.RobotDiameter())

	room, err := cfg.Build()
	require.NoError(t, err)
	require.Equal(t, 2, room.Len())

	walls := room.Walls()
	assert.Len(t, walls[0].Shape(), 1)
	assert.Len(t, walls[1].Shape(), 2)

	// default thickness applied to the second wall
	d := room.Distance(geometry.NewRayAngle(geometry.NewPoint(5, 4), 0))
	assert.InDelta(t, 5-boundary.DefaultThickness/2, d, 1e-9)
}

func TestLoadRejectsBadScenes(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		err  error
	}{
		{"empty wall", "walls:\n  - {}\n", ErrEmptyWall},
		{"zero length", "walls:\n  - sections:\n      - {from: [1, 1], to: [1, 1]}\n", ErrInvalidWall},
		{"negative thickness", "walls:\n  - sections:\n      - {from: [0, 0], to: [1, 1], thickness: -2}\n", ErrInvalidWall},
		{"negative diameter", "walls: []\nrobot: {x: 0, y: 0, heading: 0, diameter: -1}\n", ErrInvalidRobot},
		{"unknown field", "walls: []\ndoors: 3\n", ErrMalformedFile},
		{"not yaml", "walls: [", ErrMalformedFile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.yaml))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(kitchen), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "kitchen", cfg.Name)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEncodePolygon(t *testing.T) {
	p := geometry.NewPolygon(geometry.NewPoint(0, 0), geometry.NewPoint(1.5, -2), geometry.NewPoint(3, 4))
	assert.Equal(t, "0,0;1.5,-2;3,4", EncodePolygon(p))
	assert.Equal(t, "", EncodePolygon(geometry.Polygon{}))
}

func TestCommandsFraming(t *testing.T) {
	room := boundary.NewRoom()
	w := boundary.NewWallFromShape(geometry.NewPolygon(geometry.NewPoint(0, 0), geometry.NewPoint(1, 0)))
	w.AddShape(geometry.NewPolygon(geometry.NewPoint(2, 2), geometry.NewPoint(3, 2), geometry.NewPoint(3, 3)))
	room.AddWall(w)
	room.AddWall(boundary.NewWallFromShape(geometry.NewPolygon(geometry.NewPoint(5, 5), geometry.NewPoint(6, 6))))

	assert.Equal(t, []string{
		"START SCENE",
		"WALL 0,0;1,0",
		"WALL 2,2;3,2;3,3",
		"WALL 5,5;6,6",
		"END SCENE",
	}, Commands(room))

	assert.Equal(t, []string{"START SCENE", "END SCENE"}, Commands(boundary.NewRoom()))
}

func TestFingerprint(t *testing.T) {
	build := func(x float64) *boundary.Room {
		room := boundary.NewRoom()
		w, err := boundary.NewWallSection(geometry.NewPoint(0, 0), geometry.NewPoint(x, 0), 0.12)
		require.NoError(t, err)
		room.AddWall(w)
		return room
	}

	a := build(10)
	assert.Equal(t, Fingerprint(a), Fingerprint(a.Clone()))
	assert.NotEqual(t, Fingerprint(a), Fingerprint(build(math.Pi)))
	assert.NotEqual(t, Fingerprint(a), Fingerprint(boundary.NewRoom()))
}
