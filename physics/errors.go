package physics

import "errors"

var (
	// ErrInvalidShape is returned for shapes with non positive size,
	// negative mass or out of range material parameters.
	ErrInvalidShape = errors.New("invalid shape")

	// ErrInvalidConfig is returned for world configurations that can not be simulated.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrInvalidTimeStep is returned when advancing by a negative or non finite time step.
	ErrInvalidTimeStep = errors.New("invalid time step")

	// ErrAlreadyAdded is returned when a shape is added to a world twice.
	ErrAlreadyAdded = errors.New("shape already added")
)
