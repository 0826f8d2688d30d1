package robot

import (
	"math"

	"github.com/zeusync/cleanerbot/internal/core/scene"
)

// World is what the robot needs from its environment: somewhere to be
// shown and walls to measure.
type World interface {
	Show(x, y, angle, diameter float64) error
	DistanceFront(x, y, angle, diameter float64) float64
	DistanceLeft(x, y, angle, diameter float64) float64
	DistanceRight(x, y, angle, diameter float64) float64
}

// Readings are the clearances reported by the three distance sensors.
type Readings struct {
	Front float64
	Left  float64
	Right float64
}

// Robot is a round vacuum cleaner moving through a World. Heading is kept
// in degrees in [0, 360); 0 points along the x-axis.
type Robot struct {
	world    World
	x, y     float64
	heading  float64
	diameter float64
}

type Option func(*Robot)

// WithDiameter sets the robot's diameter.
func WithDiameter(d float64) Option {
	return func(r *Robot) { r.diameter = d }
}

// WithPose sets the starting position and heading (degrees).
func WithPose(x, y, heading float64) Option {
	return func(r *Robot) {
		r.x, r.y = x, y
		r.heading = normalizeDegrees(heading)
	}
}

func New(world World, opts ...Option) *Robot {
	r := &Robot{world: world, diameter: scene.DefaultRobotDiameter}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Robot) Position() (x, y float64) { return r.x, r.y }

// Heading returns the heading in degrees.
func (r *Robot) Heading() float64 { return r.heading }

// HeadingRad returns the heading in radians.
func (r *Robot) HeadingRad() float64 { return DegToRad(r.heading) }

func (r *Robot) Diameter() float64 { return r.diameter }

// MoveMeters drives straight ahead. Negative distances drive backwards.
func (r *Robot) MoveMeters(distance float64) error {
	sin, cos := math.Sincos(r.HeadingRad())
	r.x += cos * distance
	r.y += sin * distance
	return r.Show()
}

// RotateDegrees turns the robot counterclockwise by the given angle.
func (r *Robot) RotateDegrees(degrees float64) error {
	r.heading = normalizeDegrees(r.heading + degrees)
	return r.Show()
}

// Reset puts the robot back at the origin facing along the x-axis.
func (r *Robot) Reset() error {
	r.x, r.y, r.heading = 0, 0, 0
	return r.Show()
}

// Show draws the robot at its current pose.
func (r *Robot) Show() error {
	return r.world.Show(r.x, r.y, r.HeadingRad(), r.diameter)
}

// Sense reads all three distance sensors.
func (r *Robot) Sense() Readings {
	angle := r.HeadingRad()
	return Readings{
		Front: r.world.DistanceFront(r.x, r.y, angle, r.diameter),
		Left:  r.world.DistanceLeft(r.x, r.y, angle, r.diameter),
		Right: r.world.DistanceRight(r.x, r.y, angle, r.diameter),
	}
}

// DegToRad converts degrees to radians after folding the angle into [0, 360).
func DegToRad(degrees float64) float64 {
	return normalizeDegrees(degrees) * math.Pi / 180
}

func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

func normalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}
