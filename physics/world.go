package physics

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/oliverbestmann/rigid/gm"
	"go.uber.org/zap"
)

// World owns a set of shapes and advances them in time.
type World struct {
	config Config
	logger *zap.Logger

	shapes []Shape
	nextId BodyId

	step  uint64
	stats Timings
}

type Option func(w *World)

// WithLogger sets the logger used by the world. The world only logs at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(w *World) {
		w.logger = logger
	}
}

func NewWorld(config Config, options ...Option) (*World, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}

	w := &World{
		config: config,
		logger: zap.NewNop(),
	}

	for _, option := range options {
		option(w)
	}

	return w, nil
}

func (w *World) Config() Config {
	return w.config
}

func (w *World) Gravity() gm.Vec {
	return w.config.Gravity
}

// SetGravity changes the gravity applied from the next step on.
func (w *World) SetGravity(gravity gm.Vec) error {
	if !gravity.IsFinite() {
		return fmt.Errorf("gravity %s: %w", gravity, ErrInvalidConfig)
	}

	w.config.Gravity = gravity
	return nil
}

// Add registers shapes with the world. Shapes are simulated and resolved
// in the order they were added. If any shape was already added, or is listed
// twice, no shape is added at all.
func (w *World) Add(shapes ...Shape) error {
	for idx, shape := range shapes {
		if shape == nil {
			panic("physics: can not add nil shape")
		}

		if shape.Rigid().id != 0 || slices.Contains(shapes[:idx], shape) {
			return fmt.Errorf("add %s: %w", shape, ErrAlreadyAdded)
		}
	}

	for _, shape := range shapes {
		body := shape.Rigid()

		w.nextId += 1
		body.id = w.nextId

		w.shapes = append(w.shapes, shape)

		w.logger.Debug("Shape added",
			zap.Uint32("id", uint32(body.id)),
			zap.Stringer("kind", shape.Kind()),
			zap.String("name", body.name),
			zap.Bool("static", body.IsStatic()),
		)
	}

	return nil
}

// Remove removes a shape from the world. It returns false, if the shape
// was not part of this world.
func (w *World) Remove(shape Shape) bool {
	idx := slices.Index(w.shapes, shape)
	if idx < 0 {
		return false
	}

	w.shapes = slices.Delete(w.shapes, idx, idx+1)
	shape.Rigid().id = 0
	return true
}

// Bodies returns all shapes in registration order.
// The returned slice must not be modified.
func (w *World) Bodies() []Shape {
	return w.shapes
}

// Lookup returns the first shape with the given name.
func (w *World) Lookup(name string) (Shape, bool) {
	for _, shape := range w.shapes {
		if shape.Rigid().name == name {
			return shape, true
		}
	}

	return nil, false
}

// Step returns the number of steps the world was advanced.
func (w *World) Step() uint64 {
	return w.step
}

// Stats returns timings of the previous calls to Advance.
func (w *World) Stats() Timings {
	return w.stats
}

// TestCollision runs collision detection for a single pair without resolving it.
func (w *World) TestCollision(a, b Shape) (CollisionInfo, bool) {
	return Collide(a, b)
}

// Advance runs one simulation step of dt seconds: all bodies are integrated,
// then all pairs are tested and at last the contacts are resolved, one pair at
// a time. A negative or non finite dt is rejected and leaves the world unchanged.
func (w *World) Advance(dt float64) (StepResult, error) {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		w.logger.Debug("Time step rejected", zap.Float64("dt", dt))
		return StepResult{}, fmt.Errorf("advance by %v: %w", dt, ErrInvalidTimeStep)
	}

	startTime := time.Now()

	for _, shape := range w.shapes {
		integrate(shape.Rigid(), dt, w.config.Gravity, w.config.LinearDamping, w.config.AngularDamping)
	}

	contacts := w.detect()

	for idx := range contacts {
		contact := &contacts[idx]
		if contact.Sensor {
			continue
		}

		contact.Impulse = Resolve(contact.A, contact.B, contact.Info, w.config.Correction)
	}

	w.step += 1
	w.stats = w.stats.Add(time.Since(startTime))

	return StepResult{Step: w.step, Contacts: contacts}, nil
}

// detect tests all pairs in registration order. Pairs of static bodies
// and pairs rejected by their filters are skipped.
func (w *World) detect() []Contact {
	var contacts []Contact

	for i, a := range w.shapes {
		bodyA := a.Rigid()

		for _, b := range w.shapes[i+1:] {
			bodyB := b.Rigid()

			if bodyA.IsStatic() && bodyB.IsStatic() {
				continue
			}

			if !bodyA.filter.Accepts(bodyB.filter) {
				continue
			}

			info, ok := Collide(a, b)
			if !ok {
				continue
			}

			contacts = append(contacts, Contact{
				A:      a,
				B:      b,
				Info:   info,
				Sensor: bodyA.sensor || bodyB.sensor,
			})
		}
	}

	return contacts
}
