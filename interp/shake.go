package interp

import (
	"math"
	"time"

	"github.com/oliverbestmann/rigid/gm"
)

// Shake is an oscillating offset that fades out over its duration.
type Shake struct {
	Frequency float64
	Duration  time.Duration

	// direction and strength of the current shake
	direction gm.Vec
	elapsed   time.Duration
}

func NewShake(frequency float64, duration time.Duration) *Shake {
	return &Shake{
		Frequency: frequency,
		Duration:  duration,
		elapsed:   duration,
	}
}

// Trigger starts a new shake along direction. The length of direction is the
// initial amplitude. A weaker shake does not interrupt a stronger one that is still running.
func (s *Shake) Trigger(direction gm.Vec) {
	if s.Active() && s.amplitude() > direction.Length() {
		return
	}

	s.direction = direction
	s.elapsed = 0
}

func (s *Shake) Active() bool {
	return s.elapsed < s.Duration
}

// Update advances the shake by delta and returns the current offset.
func (s *Shake) Update(delta time.Duration) gm.Vec {
	s.elapsed = min(s.elapsed+delta, s.Duration)
	return s.Offset()
}

// Offset returns the offset at the current point in time.
func (s *Shake) Offset() gm.Vec {
	if !s.Active() {
		return gm.Vec{}
	}

	phase := 2 * math.Pi * s.Frequency * s.elapsed.Seconds()
	return s.direction.Mul(s.fade() * math.Sin(phase))
}

func (s *Shake) amplitude() float64 {
	return s.direction.Length() * s.fade()
}

func (s *Shake) fade() float64 {
	progress := s.elapsed.Seconds() / s.Duration.Seconds()
	return gm.LerpFloat(progress, 1.0, 0.0)
}
