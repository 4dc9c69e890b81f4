package physics

import (
	"fmt"
	"math"

	"github.com/oliverbestmann/rigid/gm"
)

// tangential speeds below this value do not produce a friction impulse
const frictionSpeedEpsilon = 1e-9

// Correction configures the positional correction applied after the impulse.
type Correction struct {
	// Percent is the fraction of the penetration removed per step, in (0, 1].
	Percent float64

	// Slop is the penetration depth that is tolerated without correction.
	Slop float64
}

// DefaultCorrection removes 40% of the penetration exceeding 0.01 units per step.
var DefaultCorrection = Correction{
	Percent: 0.4,
	Slop:    0.01,
}

func (c Correction) Validate() error {
	if !(c.Percent > 0 && c.Percent <= 1) {
		return fmt.Errorf("correction percent %v not in (0, 1]: %w", c.Percent, ErrInvalidConfig)
	}

	if !(c.Slop >= 0) || math.IsInf(c.Slop, 0) {
		return fmt.Errorf("correction slop %v: %w", c.Slop, ErrInvalidConfig)
	}

	return nil
}

// Impulse records the impulses applied while resolving a contact.
type Impulse struct {
	// Normal is the magnitude of the impulse along the collision normal.
	// It is zero if the bodies were already separating.
	Normal float64

	// Tangent is the signed magnitude of the friction impulse.
	Tangent float64
}

// Resolve changes the velocities of a and b so they stop approaching
// each other at the contact described by info, then moves them apart to
// reduce the penetration. Static bodies are never changed.
//
// Nothing happens if both bodies are static.
func Resolve(a, b Shape, info CollisionInfo, correction Correction) Impulse {
	bodyA, bodyB := a.Rigid(), b.Rigid()

	invMassSum := bodyA.invMass + bodyB.invMass
	if invMassSum == 0 {
		return Impulse{}
	}

	var impulse Impulse

	n := info.Normal
	rA := info.Contact.Sub(bodyA.position)
	rB := info.Contact.Sub(bodyB.position)

	relativeVelocity := bodyB.velocityAt(rB).Sub(bodyA.velocityAt(rA))
	velocityAlongNormal := relativeVelocity.Dot(n)

	// impulses only for approaching bodies
	if velocityAlongNormal < 0 {
		e := min(bodyA.restitution, bodyB.restitution)

		j := -(1 + e) * velocityAlongNormal / effectiveMass(bodyA, bodyB, rA, rB, n)
		applyImpulsePair(bodyA, bodyB, rA, rB, n.Mul(j))
		impulse.Normal = j

		impulse.Tangent = applyFriction(bodyA, bodyB, rA, rB, n, j)
	}

	correctPositions(bodyA, bodyB, info, correction)

	return impulse
}

// effectiveMass returns the inverse of the effective mass of the contact in direction dir.
func effectiveMass(a, b *Body, rA, rB, dir gm.Vec) float64 {
	rnA := rA.Cross(dir)
	rnB := rB.Cross(dir)

	return a.invMass + b.invMass + rnA*rnA*a.invInertia + rnB*rnB*b.invInertia
}

func applyImpulsePair(a, b *Body, rA, rB gm.Vec, impulse gm.Vec) {
	a.ApplyImpulse(impulse.Neg(), rA)
	b.ApplyImpulse(impulse, rB)
}

func applyFriction(a, b *Body, rA, rB, n gm.Vec, normalImpulse float64) float64 {
	relativeVelocity := b.velocityAt(rB).Sub(a.velocityAt(rA))

	tangential := relativeVelocity.Sub(n.Mul(relativeVelocity.Dot(n)))
	speed := tangential.Length()
	if speed < frictionSpeedEpsilon {
		return 0
	}

	tangent := tangential.Mul(1 / speed)

	jt := -relativeVelocity.Dot(tangent) / effectiveMass(a, b, rA, rB, tangent)

	// coulomb friction
	mu := math.Sqrt(a.friction * b.friction)
	limit := mu * normalImpulse
	jt = clamp(jt, -limit, limit)

	if jt == 0 {
		return 0
	}

	applyImpulsePair(a, b, rA, rB, tangent.Mul(jt))
	return jt
}

func correctPositions(a, b *Body, info CollisionInfo, correction Correction) {
	invMassSum := a.invMass + b.invMass

	amount := max(info.Depth-correction.Slop, 0) / invMassSum * correction.Percent
	if amount == 0 {
		return
	}

	offset := info.Normal.Mul(amount)
	a.position = a.position.Sub(offset.Mul(a.invMass))
	b.position = b.position.Add(offset.Mul(b.invMass))
}
