package scene

import (
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/zeusync/cleanerbot/internal/core/boundary"
	"github.com/zeusync/cleanerbot/internal/core/geometry"
)

// Visualizer scene commands
const (
	CmdStartScene = "START SCENE"
	CmdEndScene   = "END SCENE"
	CmdWall       = "WALL"
)

// EncodePolygon renders the vertices as "x,y;x,y;..." in vertex order.
func EncodePolygon(p geometry.Polygon) string {
	var b strings.Builder
	for i, v := range p.Vertices() {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(v.String())
	}
	return b.String()
}

// Commands lists the visualizer commands that draw the room: the scene
// start marker, one WALL line per polygon of every wall, the end marker.
func Commands(room *boundary.Room) []string {
	cmds := []string{CmdStartScene}
	for _, w := range room.Walls() {
		for _, poly := range w.Shape() {
			cmds = append(cmds, CmdWall+" "+EncodePolygon(poly))
		}
	}
	return append(cmds, CmdEndScene)
}

// Fingerprint hashes the encoded scene. Rooms that draw the same way
// share a fingerprint.
func Fingerprint(room *boundary.Room) uint64 {
	d := xxhash.New()
	for _, cmd := range Commands(room) {
		_, _ = d.WriteString(cmd)
		_, _ = d.WriteString("\n")
	}
	return d.Sum64()
}
