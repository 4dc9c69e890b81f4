package physics

import (
	"fmt"
	"time"
)

// DefaultStepInterval runs the simulation at 60 steps per second.
const DefaultStepInterval = time.Second / 60

// Stepper advances a World in fixed time steps from a variable frame delta.
// Time that does not fill a full step is carried over to the next update.
type Stepper struct {
	Interval time.Duration

	// MaxSteps limits the number of steps per update. Time exceeding the
	// limit is dropped so a slow frame can not cause an ever growing backlog.
	MaxSteps int

	overstep time.Duration
}

func NewStepper(interval time.Duration) *Stepper {
	return &Stepper{
		Interval: interval,
		MaxSteps: 8,
	}
}

// Update adds delta to the accumulated time and advances world as often as
// full intervals are available.
func (s *Stepper) Update(world *World, delta time.Duration) ([]StepResult, error) {
	if delta < 0 {
		return nil, fmt.Errorf("update by %s: %w", delta, ErrInvalidTimeStep)
	}

	if s.Interval <= 0 {
		return nil, fmt.Errorf("step interval %s: %w", s.Interval, ErrInvalidConfig)
	}

	s.overstep += delta

	var results []StepResult

	for s.overstep >= s.Interval {
		if s.MaxSteps > 0 && len(results) >= s.MaxSteps {
			s.overstep %= s.Interval
			break
		}

		s.overstep -= s.Interval

		result, err := world.Advance(s.Interval.Seconds())
		if err != nil {
			return results, err
		}

		results = append(results, result)
	}

	return results, nil
}

// Alpha returns the fraction of a step that is accumulated but not yet simulated.
// Renderers can use it to interpolate between the previous and the current state.
func (s *Stepper) Alpha() float64 {
	if s.Interval <= 0 {
		return 0
	}

	return float64(s.overstep) / float64(s.Interval)
}
