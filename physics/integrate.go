package physics

import "github.com/oliverbestmann/rigid/gm"

// integrate advances a dynamic body by dt using semi-implicit euler:
// velocities are updated first, positions then use the new velocities.
// Static bodies are not touched.
func integrate(body *Body, dt float64, gravity gm.Vec, linearDamping, angularDamping float64) {
	if body.IsStatic() {
		return
	}

	acceleration := gravity.Add(body.force.Mul(body.invMass))
	velocity := body.velocity.Add(acceleration.Mul(dt))

	// damping as in box2d, stable for any dt
	velocity = velocity.Mul(1 / (1 + dt*(linearDamping+body.linearDamping)))

	body.velocity = velocity
	body.position = body.position.Add(velocity.Mul(dt))

	if body.rotates {
		omega := body.angularVelocity + body.torque*body.invInertia*dt
		omega *= 1 / (1 + dt*(angularDamping+body.angularDamping))

		body.angularVelocity = omega
		body.angle = (body.angle + gm.Rad(omega*dt)).Normalized()
	}

	body.force = gm.Vec{}
	body.torque = 0
}
