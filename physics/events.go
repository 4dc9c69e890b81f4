package physics

// Contact is a pair of shapes found overlapping during a step.
type Contact struct {
	A, B Shape
	Info CollisionInfo

	// Impulse is the response applied to the pair. It is zero
	// for sensor contacts and contacts between separating bodies.
	Impulse Impulse

	// Sensor is set, if either shape is a sensor. Sensor contacts are not resolved.
	Sensor bool
}

// StepResult is returned by World.Advance.
type StepResult struct {
	// Step counts the calls to Advance, starting at 1 for the first step.
	Step uint64

	// Contacts of this step, in the order they were resolved.
	Contacts []Contact
}

// Involves returns all contacts that involve the given shape.
func (r StepResult) Involves(shape Shape) []Contact {
	var result []Contact
	for _, contact := range r.Contacts {
		if contact.A == shape || contact.B == shape {
			result = append(result, contact)
		}
	}

	return result
}
