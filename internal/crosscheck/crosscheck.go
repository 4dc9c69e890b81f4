// Package crosscheck runs a scene in both the rigid physics world and a
// chipmunk space and measures how far the trajectories drift apart.
package crosscheck

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/rigid/gm"
	"github.com/oliverbestmann/rigid/physics"
	"github.com/oliverbestmann/rigid/scene"
)

// Report summarizes the divergence between both engines.
type Report struct {
	Steps int

	// MaxDivergence is the largest distance between the positions of
	// the same body in both engines seen during the run.
	MaxDivergence float64

	// Worst names the body and step where MaxDivergence was measured.
	Worst     string
	WorstStep int

	// Final holds the distance per body after the last step, in scene order.
	Final []float64
}

func (r Report) String() string {
	return fmt.Sprintf("Report(steps=%d, maxDivergence=%.4f, worst=%q at step %d)",
		r.Steps, r.MaxDivergence, r.Worst, r.WorstStep)
}

// Run builds the scene in both engines and advances them for the given
// number of steps of size dt.
func Run(sc *scene.Scene, steps int, dt float64, options ...physics.Option) (Report, error) {
	world, err := sc.Build(options...)
	if err != nil {
		return Report{}, fmt.Errorf("crosscheck: %w", err)
	}

	space, bodies := Mirror(world)

	report := Report{
		Steps: steps,
		Final: make([]float64, len(bodies)),
	}

	for step := 1; step <= steps; step++ {
		if _, err := world.Advance(dt); err != nil {
			return report, fmt.Errorf("crosscheck: step %d: %w", step, err)
		}

		space.Step(dt)

		for idx, shape := range world.Bodies() {
			distance := shape.Center().DistanceTo(fromVector(bodies[idx].Position()))
			report.Final[idx] = distance

			if distance > report.MaxDivergence {
				report.MaxDivergence = distance
				report.Worst = nameOf(shape)
				report.WorstStep = step
			}
		}
	}

	return report, nil
}

// Mirror creates a chipmunk space holding a copy of every body in world. The
// returned bodies are in the same order as world.Bodies().
func Mirror(world *physics.World) (*cp.Space, []*cp.Body) {
	config := world.Config()

	space := cp.NewSpace()
	space.SetGravity(toVector(config.Gravity))
	space.SetCollisionSlop(config.Correction.Slop)

	// chipmunk keeps this fraction of the velocity per second
	space.SetDamping(math.Exp(-config.LinearDamping))

	var bodies []*cp.Body

	for _, shape := range world.Bodies() {
		body := mirrorBody(shape)
		space.AddBody(body)

		var cpShape *cp.Shape
		switch shape := shape.(type) {
		case *physics.Circle:
			cpShape = cp.NewCircle(body, shape.Radius(), cp.Vector{})

		case *physics.Rectangle:
			size := shape.HalfExtents().Mul(2)
			cpShape = cp.NewBox(body, size.X, size.Y, 0)
		}

		rigid := shape.Rigid()
		filter := rigid.Filter()

		cpShape.SetFriction(rigid.Friction())
		cpShape.SetElasticity(rigid.Restitution())
		cpShape.SetSensor(rigid.IsSensor())
		cpShape.SetFilter(cp.ShapeFilter{
			Group:      filter.Group,
			Categories: filter.Categories,
			Mask:       filter.Mask,
		})

		space.AddShape(cpShape)
		bodies = append(bodies, body)
	}

	return space, bodies
}

func mirrorBody(shape physics.Shape) *cp.Body {
	rigid := shape.Rigid()

	var body *cp.Body
	if rigid.IsStatic() {
		body = cp.NewStaticBody()
	} else {
		// circles do not rotate in the rigid contact model
		moment := cp.INFINITY
		if rigid.Inertia() > 0 {
			moment = rigid.Inertia()
		}

		body = cp.NewBody(rigid.Mass(), moment)
		body.SetVelocityVector(toVector(rigid.Velocity()))
		body.SetAngularVelocity(rigid.AngularVelocity())
	}

	body.SetPosition(toVector(rigid.Position()))
	body.SetAngle(float64(rigid.Angle()))

	return body
}

func nameOf(shape physics.Shape) string {
	if name := shape.Rigid().Name(); name != "" {
		return name
	}

	return fmt.Sprintf("#%d", shape.Rigid().Id())
}

func toVector(v gm.Vec) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func fromVector(v cp.Vector) gm.Vec {
	return gm.Vec{X: v.X, Y: v.Y}
}
