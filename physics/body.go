package physics

import (
	"fmt"
	"math"

	"github.com/oliverbestmann/rigid/gm"
)

// BodyId identifies a body within a World. Ids are assigned in registration
// order starting at 1, the zero value marks a body that was never added.
type BodyId uint32

// Body holds the rigid body state shared by all shapes.
//
// A mass of zero makes the body static: its inverse mass and inverse inertia
// are zero, the integrator skips it and collision response never changes it.
type Body struct {
	id   BodyId
	name string

	position        gm.Vec
	angle           gm.Rad
	velocity        gm.Vec
	angularVelocity float64

	force  gm.Vec
	torque float64

	mass       float64
	invMass    float64
	inertia    float64
	invInertia float64

	// moment of inertia per unit of mass, zero for shapes that do not rotate
	inertiaFactor float64
	rotates       bool

	restitution float64
	friction    float64

	linearDamping  float64
	angularDamping float64

	filter Filter
	sensor bool
}

func newBody(center gm.Vec, rotation gm.Rad, inertiaFactor float64, rotates bool) Body {
	return Body{
		position:      center,
		angle:         rotation.Normalized(),
		inertiaFactor: inertiaFactor,
		rotates:       rotates,
		filter:        DefaultFilter,
	}
}

// init validates and applies the material parameters passed to a shape constructor.
func (b *Body) init(mass, restitution, friction float64) error {
	if !b.position.IsFinite() {
		return fmt.Errorf("center %s: %w", b.position, ErrInvalidShape)
	}

	if err := b.SetMass(mass); err != nil {
		return err
	}

	if err := b.SetRestitution(restitution); err != nil {
		return err
	}

	return b.SetFriction(friction)
}

// Rigid returns the body itself. It gives uniform access to the body of any Shape.
func (b *Body) Rigid() *Body {
	return b
}

func (b *Body) Id() BodyId {
	return b.id
}

func (b *Body) Name() string {
	return b.name
}

// SetName assigns a name that can be used to look up the body in a World.
func (b *Body) SetName(name string) {
	b.name = name
}

// Center returns the center of mass of the body, which is also its position.
func (b *Body) Center() gm.Vec {
	return b.position
}

func (b *Body) Position() gm.Vec {
	return b.position
}

func (b *Body) SetPosition(position gm.Vec) {
	b.position = position
}

// Move translates the body by delta.
func (b *Body) Move(delta gm.Vec) {
	b.position = b.position.Add(delta)
}

func (b *Body) Angle() gm.Rad {
	return b.angle
}

// SetAngle sets the orientation of the body. It has no effect on bodies that do not rotate.
func (b *Body) SetAngle(angle gm.Rad) {
	if b.rotates {
		b.angle = angle.Normalized()
	}
}

// Rotate changes the orientation of the body by delta.
// It has no effect on bodies that do not rotate.
func (b *Body) Rotate(delta gm.Rad) {
	if b.rotates {
		b.angle = (b.angle + delta).Normalized()
	}
}

func (b *Body) Velocity() gm.Vec {
	return b.velocity
}

func (b *Body) SetVelocity(velocity gm.Vec) {
	b.velocity = velocity
}

// AngularVelocity returns the angular velocity in radians per second,
// counter clockwise being positive.
func (b *Body) AngularVelocity() float64 {
	return b.angularVelocity
}

// SetAngularVelocity sets the angular velocity. It has no effect on bodies that do not rotate.
func (b *Body) SetAngularVelocity(omega float64) {
	if b.rotates {
		b.angularVelocity = omega
	}
}

// Transform returns the affine transformation from the bodies local space into world space.
func (b *Body) Transform() gm.Affine {
	return gm.IdentityAffine().Translate(b.position).Rotate(b.angle)
}

func (b *Body) Mass() float64 {
	return b.mass
}

func (b *Body) InverseMass() float64 {
	return b.invMass
}

func (b *Body) Inertia() float64 {
	return b.inertia
}

func (b *Body) InverseInertia() float64 {
	return b.invInertia
}

// IsStatic returns true for bodies with a mass of zero.
func (b *Body) IsStatic() bool {
	return b.invMass == 0
}

// SetMass updates mass and inertia of the body. A mass of zero turns the body
// into a static body and stops it.
func (b *Body) SetMass(mass float64) error {
	if mass < 0 || math.IsNaN(mass) || math.IsInf(mass, 0) {
		return fmt.Errorf("mass %v: %w", mass, ErrInvalidShape)
	}

	b.mass = mass
	b.inertia = mass * b.inertiaFactor

	if mass == 0 {
		b.invMass = 0
		b.invInertia = 0
		b.velocity = gm.Vec{}
		b.angularVelocity = 0
		return nil
	}

	b.invMass = 1 / mass

	b.invInertia = 0
	if b.inertia > 0 {
		b.invInertia = 1 / b.inertia
	}

	return nil
}

func (b *Body) Restitution() float64 {
	return b.restitution
}

// SetRestitution sets the coefficient of restitution, 0 meaning fully
// inelastic and 1 perfectly elastic.
func (b *Body) SetRestitution(restitution float64) error {
	if !(restitution >= 0 && restitution <= 1) {
		return fmt.Errorf("restitution %v not in [0, 1]: %w", restitution, ErrInvalidShape)
	}

	b.restitution = restitution
	return nil
}

func (b *Body) Friction() float64 {
	return b.friction
}

func (b *Body) SetFriction(friction float64) error {
	if !(friction >= 0) || math.IsInf(friction, 0) {
		return fmt.Errorf("friction %v: %w", friction, ErrInvalidShape)
	}

	b.friction = friction
	return nil
}

// SetDamping sets linear and angular damping of this body. They are added
// to the damping configured for the World.
func (b *Body) SetDamping(linear, angular float64) error {
	if !(linear >= 0) || !(angular >= 0) {
		return fmt.Errorf("damping %v/%v: %w", linear, angular, ErrInvalidShape)
	}

	b.linearDamping = linear
	b.angularDamping = angular
	return nil
}

func (b *Body) Filter() Filter {
	return b.filter
}

func (b *Body) SetFilter(filter Filter) {
	b.filter = filter
}

// IsSensor returns true, if the body only detects contacts. Contacts
// of sensors are reported by the World, but never resolved.
func (b *Body) IsSensor() bool {
	return b.sensor
}

func (b *Body) SetSensor(sensor bool) {
	b.sensor = sensor
}

// ApplyForce adds a force acting on the center of mass during the next step.
func (b *Body) ApplyForce(force gm.Vec) {
	b.force = b.force.Add(force)
}

// ApplyTorque adds a torque acting during the next step.
// It has no effect on bodies that do not rotate.
func (b *Body) ApplyTorque(torque float64) {
	if b.rotates {
		b.torque += torque
	}
}

// ApplyImpulse instantly changes the velocity of the body. The offset
// is the point of application relative to the center of the body.
func (b *Body) ApplyImpulse(impulse gm.Vec, offset gm.Vec) {
	b.velocity = b.velocity.Add(impulse.Mul(b.invMass))
	b.angularVelocity += offset.Cross(impulse) * b.invInertia
}

// velocityAt returns the velocity of the point at the given offset from the center.
func (b *Body) velocityAt(offset gm.Vec) gm.Vec {
	return b.velocity.Add(gm.CrossScalar(b.angularVelocity, offset))
}
