package physics

import (
	"testing"
	"time"

	"github.com/oliverbestmann/rigid/gm"
	"github.com/stretchr/testify/require"
)

func TestIntegrate_SemiImplicit(t *testing.T) {
	circle := mustCircle(t, gm.Vec{}, 1, 2)

	integrate(circle.Rigid(), 0.5, gm.Vec{Y: -10}, 0, 0)

	// velocity is updated first, the position uses the new velocity
	require.Equal(t, gm.Vec{Y: -5}, circle.Velocity())
	require.Equal(t, gm.Vec{Y: -2.5}, circle.Position())
}

func TestIntegrate_ForcesAndDamping(t *testing.T) {
	rect := mustRectangle(t, gm.Vec{}, 1, 1, 0, 2)
	require.NoError(t, rect.SetDamping(1, 0))

	rect.ApplyForce(gm.Vec{X: 4})
	rect.ApplyTorque(rect.Inertia())

	integrate(rect.Rigid(), 1, gm.Vec{}, 1, 1)

	// (4 / 2) * 1 damped by 1 / (1 + 1*(1+1))
	requireVecInDelta(t, gm.Vec{X: 2.0 / 3}, rect.Velocity(), 1e-12)
	require.InDelta(t, 0.5, rect.AngularVelocity(), 1e-12)
	require.InDelta(t, 0.5, float64(rect.Angle()), 1e-12)

	// accumulated forces are consumed by the step, the damping of the body stays
	integrate(rect.Rigid(), 1, gm.Vec{}, 0, 0)
	requireVecInDelta(t, gm.Vec{X: 1.0 / 3}, rect.Velocity(), 1e-12)
}

func TestIntegrate_SkipsStatic(t *testing.T) {
	rect := mustRectangle(t, gm.Vec{X: 1}, 1, 1, 0, 0)

	// static bodies may be moved kinematically by the user, but never by the integrator
	rect.SetVelocity(gm.Vec{X: 5})
	integrate(rect.Rigid(), 1, gm.Vec{Y: -10}, 0, 0)

	require.Equal(t, gm.Vec{X: 1}, rect.Position())
}

func TestIntegrate_AngleStaysNormalized(t *testing.T) {
	rect := mustRectangle(t, gm.Vec{}, 1, 1, 3, 1)
	rect.SetAngularVelocity(1)

	integrate(rect.Rigid(), 1, gm.Vec{}, 0, 0)

	require.InDelta(t, 4-2*3.141592653589793, float64(rect.Angle()), 1e-12)
}

func TestFilter_Accepts(t *testing.T) {
	require.True(t, DefaultFilter.Accepts(DefaultFilter))

	grouped := Filter{Group: 7, Categories: 1, Mask: 1}
	require.False(t, grouped.Accepts(grouped))

	player := Filter{Categories: 0b01, Mask: 0b10}
	enemy := Filter{Categories: 0b10, Mask: 0b01}
	require.True(t, player.Accepts(enemy))
	require.False(t, player.Accepts(player))

	ghost := Filter{Categories: 0b100, Mask: 0}
	require.False(t, ghost.Accepts(DefaultFilter))
	require.False(t, DefaultFilter.Accepts(ghost))
}

func TestTimings_Add(t *testing.T) {
	var timings Timings
	timings = timings.Add(10 * time.Millisecond)
	timings = timings.Add(30 * time.Millisecond)
	timings = timings.Add(20 * time.Millisecond)

	require.Equal(t, 3, timings.Count)
	require.Equal(t, 20*time.Millisecond, timings.Latest)
	require.Equal(t, 10*time.Millisecond, timings.Min)
	require.Equal(t, 30*time.Millisecond, timings.Max)
	require.Greater(t, timings.MovingAverage, 10*time.Millisecond)
	require.Less(t, timings.MovingAverage, 30*time.Millisecond)
}
