package physics

import (
	"fmt"
	"math"

	"github.com/oliverbestmann/rigid/gm"
)

// Config holds the world wide simulation parameters.
type Config struct {
	// Gravity is the acceleration applied to every dynamic body.
	Gravity gm.Vec

	// LinearDamping and AngularDamping slow down every dynamic body.
	// Per body damping is added on top.
	LinearDamping  float64
	AngularDamping float64

	Correction Correction
}

// DefaultConfig returns earth like gravity along negative y, no damping
// and the DefaultCorrection.
func DefaultConfig() Config {
	return Config{
		Gravity:    gm.Vec{Y: -9.81},
		Correction: DefaultCorrection,
	}
}

func (c Config) Validate() error {
	if !c.Gravity.IsFinite() {
		return fmt.Errorf("gravity %s: %w", c.Gravity, ErrInvalidConfig)
	}

	if !(c.LinearDamping >= 0) || !(c.AngularDamping >= 0) ||
		math.IsInf(c.LinearDamping, 0) || math.IsInf(c.AngularDamping, 0) {
		return fmt.Errorf("damping %v/%v: %w", c.LinearDamping, c.AngularDamping, ErrInvalidConfig)
	}

	return c.Correction.Validate()
}
