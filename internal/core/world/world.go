package world

import (
	"context"
	"errors"
	"math"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"

	"github.com/zeusync/cleanerbot/internal/core/boundary"
	"github.com/zeusync/cleanerbot/internal/core/geometry"
	"github.com/zeusync/cleanerbot/internal/core/observability/log"
	"github.com/zeusync/cleanerbot/internal/core/protocol"
	"github.com/zeusync/cleanerbot/internal/core/scene"
	"github.com/zeusync/cleanerbot/pkg/concurrent"
)

var (
	ErrInvalidRayCount = errors.New("scan needs at least one ray")
	ErrNilRoom         = errors.New("room is nil")
)

// Commander delivers a command line to the visualizer. *protocol.Client
// implements it.
type Commander interface {
	Send(cmd string) (protocol.Response, error)
	Close() error
}

var _ Commander = (*protocol.Client)(nil)

// World holds the room the robot lives in, answers sensor queries against
// it and mirrors what happens to the visualizer. Without a Commander the
// world runs offline and every display command is a no-op.
type World struct {
	commander Commander
	logger    log.Log
	name      string

	// sceneMu keeps a START SCENE ... END SCENE frame contiguous.
	sceneMu sync.Mutex

	mu          sync.RWMutex
	room        *boundary.Room
	fingerprint uint64
	sceneSent   bool
}

// New creates a world and announces it to the visualizer.
func New(commander Commander, logger log.Log) (*World, error) {
	if logger == nil {
		logger = log.Nop()
	}
	w := &World{
		commander: commander,
		name:      "World@" + uuid.NewString(),
	}
	w.logger = logger.With(log.String("world", w.name))

	if _, err := w.send("SET NAME " + w.name); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *World) Name() string { return w.name }

// Online reports whether display commands reach a visualizer.
func (w *World) Online() bool { return w.commander != nil }

// SetRoom replaces the world's room with a copy of room and sends the
// scene to the visualizer unless the same scene was already sent.
func (w *World) SetRoom(room *boundary.Room) error {
	if room == nil {
		return ErrNilRoom
	}
	snapshot := room.Clone()
	fp := scene.Fingerprint(snapshot)

	w.sceneMu.Lock()
	defer w.sceneMu.Unlock()

	w.mu.Lock()
	w.room = snapshot
	unchanged := w.sceneSent && w.fingerprint == fp
	w.mu.Unlock()

	if unchanged {
		w.logger.Debug("scene unchanged, not resending")
		return nil
	}

	cmds := scene.Commands(snapshot)
	for _, cmd := range cmds {
		if _, err := w.send(cmd); err != nil {
			return err
		}
	}

	w.mu.Lock()
	w.fingerprint = fp
	w.sceneSent = w.Online()
	w.mu.Unlock()

	w.logger.Info("scene set", log.Int("walls", snapshot.Len()), log.Int("commands", len(cmds)))
	return nil
}

// Room returns a copy of the current room, or nil if none was set.
func (w *World) Room() *boundary.Room {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.room == nil {
		return nil
	}
	return w.room.Clone()
}

// DistanceFront measures the clearance ahead of a robot of the given
// diameter at (x, y) heading at angle radians. The result is not clamped
// and is negative when the robot overlaps a wall.
func (w *World) DistanceFront(x, y, angle, diameter float64) float64 {
	return w.clearance(geometry.NewRayAngle(geometry.NewPoint(x, y), angle), diameter)
}

// DistanceLeft measures the clearance to the robot's left.
func (w *World) DistanceLeft(x, y, angle, diameter float64) float64 {
	return w.clearance(geometry.NewRayAngle(geometry.NewPoint(x, y), angle+math.Pi/2), diameter)
}

// DistanceRight measures the clearance to the robot's right.
func (w *World) DistanceRight(x, y, angle, diameter float64) float64 {
	return w.clearance(geometry.NewRayAngle(geometry.NewPoint(x, y), angle-math.Pi/2), diameter)
}

// Scan takes rays readings evenly spread over a full turn, the first one
// pointing at angle. Readings are computed in parallel on a snapshot of
// the room.
func (w *World) Scan(ctx context.Context, x, y, angle, diameter float64, rays int) ([]float64, error) {
	if rays < 1 {
		return nil, ErrInvalidRayCount
	}

	room := w.Room()
	origin := geometry.NewRayAngle(geometry.NewPoint(x, y), angle)
	step := 2 * math.Pi / float64(rays)

	indexes := make([]int, rays)
	for i := range indexes {
		indexes[i] = i
	}
	return concurrent.Map(ctx, indexes, runtime.GOMAXPROCS(0), func(_ context.Context, i int) (float64, error) {
		return distanceTo(room, origin.Rotate(float64(i)*step)) - diameter/2, nil
	})
}

// Show draws the robot at (x, y) heading at angle radians.
func (w *World) Show(x, y, angle, diameter float64) error {
	sin, cos := math.Sincos(angle)
	cmd := "VACUUM CLEANER " +
		formatFloat(x) + "," + formatFloat(y) + ";" +
		formatFloat(cos) + "," + formatFloat(sin) + ";" +
		formatFloat(diameter)
	_, err := w.send(cmd)
	return err
}

// ShowStatus puts text into the visualizer's status line.
func (w *World) ShowStatus(text string) error {
	_, err := w.send("STATUSLINE " + text)
	return err
}

// Key polls the visualizer for a pressed key. It returns "" when no key
// is available or the world is offline.
func (w *World) Key() (string, error) {
	resp, err := w.send("GET KEY")
	if err != nil || !resp.IsSuccess() {
		return "", err
	}
	return unquote(resp.Rest), nil
}

// Close releases the visualizer connection.
func (w *World) Close() error {
	if w.commander == nil {
		return nil
	}
	return w.commander.Close()
}

func (w *World) clearance(ray geometry.Ray, diameter float64) float64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return distanceTo(w.room, ray) - diameter/2
}

func (w *World) send(cmd string) (protocol.Response, error) {
	if w.commander == nil {
		return protocol.Response{}, nil
	}
	resp, err := w.commander.Send(cmd)
	if err != nil {
		return resp, pkgerrors.Wrap(err, "visualizer command failed")
	}
	if resp.Class() >= 3 {
		w.logger.Warn("visualizer rejected command",
			log.String("command", cmd), log.Int("code", resp.Code), log.String("reply", resp.Rest))
	}
	return resp, nil
}

func distanceTo(room *boundary.Room, ray geometry.Ray) float64 {
	if room == nil {
		return boundary.MaxDistance
	}
	return room.Distance(ray)
}

// unquote strips the opening character and everything from the last
// double quote on: `"a"` becomes a.
func unquote(s string) string {
	last := strings.LastIndexByte(s, '"')
	if last < 1 {
		return ""
	}
	return s[1:last]
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
