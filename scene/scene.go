// Package scene describes a physics.World in yaml and builds worlds from it.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/oliverbestmann/rigid/gm"
	"github.com/oliverbestmann/rigid/physics"
	"gopkg.in/yaml.v3"
)

const (
	ShapeCircle    = "circle"
	ShapeRectangle = "rectangle"
)

// ErrEmptyScene is returned when parsing a document without any content,
// for example a file that is truncated while being written.
var ErrEmptyScene = errors.New("empty scene document")

type Scene struct {
	World  WorldSpec  `yaml:"world"`
	Bodies []BodySpec `yaml:"bodies"`
}

type WorldSpec struct {
	// Gravity defaults to physics.DefaultConfig if not set
	Gravity        *gm.Vec         `yaml:"gravity,omitempty"`
	LinearDamping  float64         `yaml:"linear_damping,omitempty"`
	AngularDamping float64         `yaml:"angular_damping,omitempty"`
	Correction     *CorrectionSpec `yaml:"correction,omitempty"`
}

type CorrectionSpec struct {
	Percent float64 `yaml:"percent"`
	Slop    float64 `yaml:"slop"`
}

type BodySpec struct {
	Name  string `yaml:"name,omitempty"`
	Shape string `yaml:"shape"`

	Center gm.Vec `yaml:"center"`

	// only used by circles
	Radius float64 `yaml:"radius,omitempty"`

	// only used by rectangles
	HalfExtents gm.Vec  `yaml:"half_extents,omitempty"`
	Rotation    float64 `yaml:"rotation,omitempty"`

	Mass        float64 `yaml:"mass"`
	Restitution float64 `yaml:"restitution"`
	Friction    float64 `yaml:"friction"`

	Velocity        gm.Vec  `yaml:"velocity,omitempty"`
	AngularVelocity float64 `yaml:"angular_velocity,omitempty"`

	LinearDamping  float64 `yaml:"linear_damping,omitempty"`
	AngularDamping float64 `yaml:"angular_damping,omitempty"`

	Sensor bool        `yaml:"sensor,omitempty"`
	Filter *FilterSpec `yaml:"filter,omitempty"`
}

type FilterSpec struct {
	Group      uint `yaml:"group"`
	Categories uint `yaml:"categories"`
	Mask       uint `yaml:"mask"`
}

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: load %s: %w", path, err)
	}

	scene, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", path, err)
	}

	return scene, nil
}

// Parse decodes and validates a scene. Unknown keys are rejected.
func Parse(data []byte) (*Scene, error) {
	scene, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene: parse: %w", err)
	}

	return scene, nil
}

func parse(data []byte) (*Scene, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var scene Scene
	if err := decoder.Decode(&scene); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyScene
		}

		return nil, err
	}

	if err := scene.Validate(); err != nil {
		return nil, err
	}

	return &scene, nil
}

// Marshal encodes the scene as yaml.
func (s *Scene) Marshal() ([]byte, error) {
	var buf bytes.Buffer

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(s); err != nil {
		return nil, fmt.Errorf("scene: marshal: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("scene: marshal: %w", err)
	}

	return buf.Bytes(), nil
}

// Save writes the scene to path.
func (s *Scene) Save(path string) error {
	data, err := s.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("scene: save %s: %w", path, err)
	}

	return nil
}

// Validate checks that a world can be built from the scene.
func (s *Scene) Validate() error {
	if _, err := s.config(); err != nil {
		return err
	}

	_, err := s.shapes()
	return err
}

// Build creates a new world containing all bodies of the scene,
// added in the order they appear in the scene.
func (s *Scene) Build(options ...physics.Option) (*physics.World, error) {
	config, err := s.config()
	if err != nil {
		return nil, fmt.Errorf("scene: build: %w", err)
	}

	shapes, err := s.shapes()
	if err != nil {
		return nil, fmt.Errorf("scene: build: %w", err)
	}

	world, err := physics.NewWorld(config, options...)
	if err != nil {
		return nil, fmt.Errorf("scene: build: %w", err)
	}

	if err := world.Add(shapes...); err != nil {
		return nil, fmt.Errorf("scene: build: %w", err)
	}

	return world, nil
}

func (s *Scene) config() (physics.Config, error) {
	config := physics.DefaultConfig()

	if s.World.Gravity != nil {
		config.Gravity = *s.World.Gravity
	}

	config.LinearDamping = s.World.LinearDamping
	config.AngularDamping = s.World.AngularDamping

	if c := s.World.Correction; c != nil {
		config.Correction = physics.Correction{Percent: c.Percent, Slop: c.Slop}
	}

	if err := config.Validate(); err != nil {
		return physics.Config{}, fmt.Errorf("world: %w", err)
	}

	return config, nil
}

func (s *Scene) shapes() ([]physics.Shape, error) {
	shapes := make([]physics.Shape, 0, len(s.Bodies))

	for idx, spec := range s.Bodies {
		shape, err := spec.build()
		if err != nil {
			return nil, fmt.Errorf("body %d (%s): %w", idx, spec.Name, err)
		}

		shapes = append(shapes, shape)
	}

	return shapes, nil
}

func (b *BodySpec) build() (physics.Shape, error) {
	var shape physics.Shape

	switch b.Shape {
	case ShapeCircle:
		circle, err := physics.NewCircle(b.Center, b.Radius, b.Mass, b.Restitution, b.Friction)
		if err != nil {
			return nil, err
		}

		shape = circle

	case ShapeRectangle:
		rect, err := physics.NewRectangle(b.Center,
			b.HalfExtents.X, b.HalfExtents.Y, gm.Rad(b.Rotation),
			b.Mass, b.Restitution, b.Friction)

		if err != nil {
			return nil, err
		}

		shape = rect

	case "":
		return nil, fmt.Errorf("shape not set")

	default:
		return nil, fmt.Errorf("unknown shape %q", b.Shape)
	}

	body := shape.Rigid()
	body.SetName(b.Name)
	body.SetVelocity(b.Velocity)
	body.SetAngularVelocity(b.AngularVelocity)
	body.SetSensor(b.Sensor)

	if err := body.SetDamping(b.LinearDamping, b.AngularDamping); err != nil {
		return nil, err
	}

	if b.Filter != nil {
		body.SetFilter(physics.Filter{
			Group:      b.Filter.Group,
			Categories: b.Filter.Categories,
			Mask:       b.Filter.Mask,
		})
	}

	return shape, nil
}
