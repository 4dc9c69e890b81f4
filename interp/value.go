// Package interp smooths values over a number of update cycles. It is used
// to move a camera towards its target and to shake it on impacts.
package interp

import (
	"fmt"

	"github.com/oliverbestmann/rigid/gm"
)

// Value approaches a target value. Each call to Update moves the current value
// by Rate towards the target. After Cycles updates the value snaps to the target.
type Value[T any] struct {
	current T
	target  T

	lerp gm.Lerper[T]

	rate      float64
	cycles    int
	remaining int
}

// New creates a Value resting at initial. The rate must be in (0, 1] and
// at least one cycle is required.
func New[T any](initial T, rate float64, cycles int, lerp gm.Lerper[T]) *Value[T] {
	if !(rate > 0 && rate <= 1) {
		panic(fmt.Sprintf("interp: rate %v not in (0, 1]", rate))
	}

	if cycles < 1 {
		panic(fmt.Sprintf("interp: cycles must be positive, got %d", cycles))
	}

	return &Value[T]{
		current: initial,
		target:  initial,
		lerp:    lerp,
		rate:    rate,
		cycles:  cycles,
	}
}

func NewFloat(initial, rate float64, cycles int) *Value[float64] {
	return New(initial, rate, cycles, gm.LerpFloat[float64])
}

func NewVec(initial gm.Vec, rate float64, cycles int) *Value[gm.Vec] {
	return New(initial, rate, cycles, gm.LerpVec)
}

// NewAngle creates a Value for angles. It always turns along the shorter arc.
func NewAngle(initial gm.Rad, rate float64, cycles int) *Value[gm.Rad] {
	return New(initial, rate, cycles, gm.LerpAngle)
}

// Set changes the target and restarts the cycle count.
func (v *Value[T]) Set(target T) {
	v.target = target
	v.remaining = v.cycles
}

// Jump moves current value and target to value immediately.
func (v *Value[T]) Jump(value T) {
	v.current = value
	v.target = value
	v.remaining = 0
}

func (v *Value[T]) Current() T {
	return v.current
}

func (v *Value[T]) Target() T {
	return v.target
}

// Done returns true once the current value reached the target.
func (v *Value[T]) Done() bool {
	return v.remaining == 0
}

// Update runs one cycle and returns the new current value.
func (v *Value[T]) Update() T {
	if v.remaining == 0 {
		return v.current
	}

	v.remaining -= 1

	if v.remaining == 0 {
		v.current = v.target
	} else {
		v.current = v.lerp(v.rate, v.current, v.target)
	}

	return v.current
}
