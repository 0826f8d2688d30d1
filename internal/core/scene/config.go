package scene

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/cleanerbot/internal/core/boundary"
	"github.com/zeusync/cleanerbot/internal/core/geometry"
)

// DefaultRobotDiameter applies when a scene places a robot without a size.
const DefaultRobotDiameter = 0.4

var (
	ErrEmptyWall     = errors.New("wall has neither sections nor shapes")
	ErrInvalidRobot  = errors.New("invalid robot placement")
	ErrInvalidWall   = errors.New("invalid wall section")
	ErrMalformedFile = errors.New("malformed scene file")
)

// Config describes a room and, optionally, where the robot starts.
type Config struct {
	Name  string       `json:"name,omitempty" yaml:"name,omitempty"`
	Walls []WallConfig `json:"walls" yaml:"walls"`
	Robot *RobotConfig `json:"robot,omitempty" yaml:"robot,omitempty"`
}

// WallConfig is one obstacle made of straight sections and freeform shapes.
type WallConfig struct {
	Sections []SectionConfig `json:"sections,omitempty" yaml:"sections,omitempty"`
	Shapes   [][]Coord       `json:"shapes,omitempty" yaml:"shapes,omitempty"`
}

// SectionConfig is a straight wall section. A zero thickness means
// boundary.DefaultThickness.
type SectionConfig struct {
	From      Coord   `json:"from" yaml:"from"`
	To        Coord   `json:"to" yaml:"to"`
	Thickness float64 `json:"thickness,omitempty" yaml:"thickness,omitempty"`
}

// RobotConfig places the robot. Heading is in degrees.
type RobotConfig struct {
	X        float64 `json:"x" yaml:"x"`
	Y        float64 `json:"y" yaml:"y"`
	Heading  float64 `json:"heading" yaml:"heading"`
	Diameter float64 `json:"diameter,omitempty" yaml:"diameter,omitempty"`
}

// Coord is an [x, y] pair.
type Coord [2]float64

func (c Coord) Point() geometry.Point { return geometry.NewPoint(c[0], c[1]) }

// Load decodes a YAML scene and validates it.
func Load(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile reads a scene from disk.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Validate validates the scene configuration
func (c *Config) Validate() error {
	for i, w := range c.Walls {
		if err := w.Validate(); err != nil {
			return fmt.Errorf("wall %d: %w", i, err)
		}
	}
	if c.Robot != nil {
		if err := c.Robot.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate validates the wall configuration
func (w WallConfig) Validate() error {
	if len(w.Sections) == 0 && len(w.Shapes) == 0 {
		return ErrEmptyWall
	}
	for i, s := range w.Sections {
		if s.From == s.To {
			return fmt.Errorf("%w: section %d has zero length", ErrInvalidWall, i)
		}
		if s.Thickness < 0 {
			return fmt.Errorf("%w: section %d has negative thickness", ErrInvalidWall, i)
		}
	}
	return nil
}

// Validate validates the robot configuration
func (r *RobotConfig) Validate() error {
	if r.Diameter < 0 {
		return fmt.Errorf("%w: negative diameter %v", ErrInvalidRobot, r.Diameter)
	}
	return nil
}

// RobotDiameter returns the configured diameter or the default.
func (r *RobotConfig) RobotDiameter() float64 {
	if r == nil || r.Diameter == 0 {
		return DefaultRobotDiameter
	}
	return r.Diameter
}

// Build turns the configuration into a room, keeping wall order.
func (c *Config) Build() (*boundary.Room, error) {
	room := boundary.NewRoom()
	for i, wc := range c.Walls {
		w := boundary.NewWall()
		for j, s := range wc.Sections {
			thickness := s.Thickness
			if thickness == 0 {
				thickness = boundary.DefaultThickness
			}
			if err := w.AddSection(s.From.Point(), s.To.Point(), thickness); err != nil {
				return nil, fmt.Errorf("wall %d section %d: %w", i, j, err)
			}
		}
		for _, shape := range wc.Shapes {
			var poly geometry.Polygon
			for _, coord := range shape {
				poly.Add(coord.Point())
			}
			w.AddShape(poly)
		}
		room.AddWall(w)
	}
	return room, nil
}
