package interp

import (
	"math"
	"testing"
	"time"

	"github.com/oliverbestmann/rigid/gm"
	"github.com/stretchr/testify/require"
)

func TestValue_Float(t *testing.T) {
	value := NewFloat(0, 0.5, 3)
	require.True(t, value.Done())

	value.Set(8)
	require.False(t, value.Done())
	require.Equal(t, 8.0, value.Target())

	require.Equal(t, 4.0, value.Update())
	require.Equal(t, 6.0, value.Update())

	// snaps to the target in the last cycle
	require.Equal(t, 8.0, value.Update())
	require.True(t, value.Done())

	require.Equal(t, 8.0, value.Update())
}

func TestValue_Vec(t *testing.T) {
	value := NewVec(gm.Vec{}, 0.25, 10)
	value.Set(gm.Vec{X: 4, Y: -4})

	require.Equal(t, gm.Vec{X: 1, Y: -1}, value.Update())

	value.Jump(gm.Vec{X: 2})
	require.True(t, value.Done())
	require.Equal(t, gm.Vec{X: 2}, value.Current())
	require.Equal(t, gm.Vec{X: 2}, value.Update())
}

func TestValue_AngleTakesShorterArc(t *testing.T) {
	value := NewAngle(gm.DegToRad(170), 0.5, 4)
	value.Set(gm.DegToRad(-170))

	// turns through 180° rather than back through 0°
	angle := value.Update()
	require.InDelta(t, -1, angle.Cos(), 1e-9)
	require.InDelta(t, 0, angle.Sin(), 1e-9)
}

func TestValue_InvalidConfig(t *testing.T) {
	require.Panics(t, func() { NewFloat(0, 0, 1) })
	require.Panics(t, func() { NewFloat(0, 1.5, 1) })
	require.Panics(t, func() { NewFloat(0, 0.5, 0) })
}

func TestShake(t *testing.T) {
	shake := NewShake(10, time.Second)
	require.False(t, shake.Active())
	require.Equal(t, gm.Vec{}, shake.Offset())

	shake.Trigger(gm.Vec{X: 2})
	require.True(t, shake.Active())

	// a quarter period in, the sine is at its maximum
	offset := shake.Update(25 * time.Millisecond)
	require.InDelta(t, 2*0.975, offset.X, 1e-9)
	require.Equal(t, 0.0, offset.Y)

	// a weaker shake does not interrupt
	shake.Trigger(gm.Vec{Y: 0.1})
	require.InDelta(t, 2*0.975, shake.Offset().X, 1e-9)

	offset = shake.Update(2 * time.Second)
	require.Equal(t, gm.Vec{}, offset)
	require.False(t, shake.Active())
}

func TestShake_Fades(t *testing.T) {
	shake := NewShake(1, 4*time.Second)
	shake.Trigger(gm.Vec{Y: 1})

	var peaks []float64
	for range 3 {
		// peaks of the sine at 0.25s, 1.25s, 2.25s
		offset := shake.Update(250 * time.Millisecond)
		peaks = append(peaks, math.Abs(offset.Y))
		shake.Update(750 * time.Millisecond)
	}

	require.Greater(t, peaks[0], peaks[1])
	require.Greater(t, peaks[1], peaks[2])
}
