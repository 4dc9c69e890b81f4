package physics

import (
	"math"
	"testing"

	"github.com/oliverbestmann/rigid/gm"
	"github.com/stretchr/testify/require"
)

func requireVecInDelta(t *testing.T, expected, actual gm.Vec, delta float64) {
	t.Helper()
	require.InDelta(t, expected.X, actual.X, delta, "x of %s", actual)
	require.InDelta(t, expected.Y, actual.Y, delta, "y of %s", actual)
}

func mustCircle(t *testing.T, center gm.Vec, radius, mass float64) *Circle {
	t.Helper()

	circle, err := NewCircle(center, radius, mass, 0, 0)
	require.NoError(t, err)
	return circle
}

func mustRectangle(t *testing.T, center gm.Vec, hw, hh float64, rotation gm.Rad, mass float64) *Rectangle {
	t.Helper()

	rect, err := NewRectangle(center, hw, hh, rotation, mass, 0, 0)
	require.NoError(t, err)
	return rect
}

func TestNewCircle_Invalid(t *testing.T) {
	cases := []struct {
		name                                string
		center                              gm.Vec
		radius, mass, restitution, friction float64
	}{
		{"zero radius", gm.Vec{}, 0, 1, 0, 0},
		{"negative radius", gm.Vec{}, -1, 1, 0, 0},
		{"nan radius", gm.Vec{}, math.NaN(), 1, 0, 0},
		{"negative mass", gm.Vec{}, 1, -1, 0, 0},
		{"infinite mass", gm.Vec{}, 1, math.Inf(1), 0, 0},
		{"restitution above one", gm.Vec{}, 1, 1, 1.5, 0},
		{"negative friction", gm.Vec{}, 1, 1, 0, -0.1},
		{"nan center", gm.Vec{X: math.NaN()}, 1, 1, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCircle(tc.center, tc.radius, tc.mass, tc.restitution, tc.friction)
			require.ErrorIs(t, err, ErrInvalidShape)
		})
	}
}

func TestNewRectangle_Invalid(t *testing.T) {
	_, err := NewRectangle(gm.Vec{}, 0, 1, 0, 1, 0, 0)
	require.ErrorIs(t, err, ErrInvalidShape)

	_, err = NewRectangle(gm.Vec{}, 1, -1, 0, 1, 0, 0)
	require.ErrorIs(t, err, ErrInvalidShape)

	_, err = NewRectangle(gm.Vec{}, 1, 1, gm.Rad(math.Inf(1)), 1, 0, 0)
	require.ErrorIs(t, err, ErrInvalidShape)

	_, err = NewRectangle(gm.Vec{}, 1, 1, 0, 1, -0.5, 0)
	require.ErrorIs(t, err, ErrInvalidShape)
}

func TestCircle_Properties(t *testing.T) {
	circle, err := NewCircle(gm.Vec{X: 1, Y: 2}, 3, 4, 0.5, 0.25)
	require.NoError(t, err)

	require.Equal(t, KindCircle, circle.Kind())
	require.Equal(t, gm.Vec{X: 1, Y: 2}, circle.Center())
	require.Equal(t, 3.0, circle.BoundingRadius())
	require.Equal(t, 4.0, circle.Mass())
	require.Equal(t, 0.25, circle.InverseMass())
	require.Equal(t, 0.0, circle.Inertia())
	require.Equal(t, 0.0, circle.InverseInertia())
	require.Equal(t, 0.5, circle.Restitution())
	require.Equal(t, 0.25, circle.Friction())
	require.False(t, circle.IsStatic())

	require.Equal(t, gm.RectWithPoints(gm.Vec{X: -2, Y: -1}, gm.Vec{X: 4, Y: 5}), circle.Bounds())

	circle.Move(gm.Vec{X: 1})
	require.Equal(t, gm.Vec{X: 2, Y: 2}, circle.Center())
}

func TestCircle_DoesNotRotate(t *testing.T) {
	circle := mustCircle(t, gm.Vec{}, 1, 1)

	circle.Rotate(1)
	circle.SetAngle(2)
	circle.SetAngularVelocity(3)
	circle.ApplyTorque(4)

	require.Equal(t, gm.Rad(0), circle.Angle())
	require.Equal(t, 0.0, circle.AngularVelocity())
}

func TestRectangle_Inertia(t *testing.T) {
	// full extents 2 x 4
	rect, err := NewRectangle(gm.Vec{}, 1, 2, 0, 3, 0, 0)
	require.NoError(t, err)

	require.InDelta(t, 3*(4.0+16.0)/12, rect.Inertia(), 1e-12)
	require.InDelta(t, 1/rect.Inertia(), rect.InverseInertia(), 1e-12)
	require.InDelta(t, math.Sqrt(5), rect.BoundingRadius(), 1e-12)
}

func TestRectangle_Vertices(t *testing.T) {
	rect := mustRectangle(t, gm.Vec{X: 10}, 2, 1, 0, 1)

	require.Equal(t, [4]gm.Vec{
		{X: 8, Y: -1},
		{X: 12, Y: -1},
		{X: 12, Y: 1},
		{X: 8, Y: 1},
	}, rect.Vertices())

	require.Equal(t, [2]gm.Vec{{X: 1}, {Y: 1}}, rect.Axes())

	t.Run("cache follows rotation", func(t *testing.T) {
		rect.Rotate(math.Pi / 2)

		vertices := rect.Vertices()
		requireVecInDelta(t, gm.Vec{X: 11, Y: -2}, vertices[0], 1e-12)
		requireVecInDelta(t, gm.Vec{X: 11, Y: 2}, vertices[1], 1e-12)
		requireVecInDelta(t, gm.Vec{X: 9, Y: 2}, vertices[2], 1e-12)
		requireVecInDelta(t, gm.Vec{X: 9, Y: -2}, vertices[3], 1e-12)

		axes := rect.Axes()
		requireVecInDelta(t, gm.Vec{Y: 1}, axes[0], 1e-12)
		requireVecInDelta(t, gm.Vec{X: -1}, axes[1], 1e-12)
	})

	t.Run("cache follows movement", func(t *testing.T) {
		before := rect.Vertices()
		rect.Move(gm.Vec{Y: 5})
		after := rect.Vertices()

		for idx := range before {
			requireVecInDelta(t, before[idx].Add(gm.Vec{Y: 5}), after[idx], 1e-12)
		}
	})
}

func TestRectangle_Bounds(t *testing.T) {
	rect := mustRectangle(t, gm.Vec{}, 1, 1, math.Pi/4, 1)

	bounds := rect.Bounds()
	requireVecInDelta(t, gm.VecSplat(-math.Sqrt2), bounds.Min, 1e-12)
	requireVecInDelta(t, gm.VecSplat(math.Sqrt2), bounds.Max, 1e-12)
}

func TestBody_SetMassZero(t *testing.T) {
	rect := mustRectangle(t, gm.Vec{}, 1, 1, 0, 2)
	rect.SetVelocity(gm.Vec{X: 3})
	rect.SetAngularVelocity(1)

	require.NoError(t, rect.SetMass(0))

	require.True(t, rect.IsStatic())
	require.Equal(t, 0.0, rect.InverseMass())
	require.Equal(t, 0.0, rect.InverseInertia())
	require.Equal(t, gm.Vec{}, rect.Velocity())
	require.Equal(t, 0.0, rect.AngularVelocity())

	require.ErrorIs(t, rect.SetMass(-1), ErrInvalidShape)
	require.ErrorIs(t, rect.SetRestitution(2), ErrInvalidShape)
	require.ErrorIs(t, rect.SetFriction(math.NaN()), ErrInvalidShape)
	require.ErrorIs(t, rect.SetDamping(-1, 0), ErrInvalidShape)
}

func TestBody_ApplyImpulse(t *testing.T) {
	rect := mustRectangle(t, gm.Vec{}, 1, 1, 0, 2)

	// a push upwards on the right edge spins the rectangle counter clockwise
	rect.ApplyImpulse(gm.Vec{Y: 2}, gm.Vec{X: 1})

	require.Equal(t, gm.Vec{Y: 1}, rect.Velocity())
	require.InDelta(t, 2*rect.InverseInertia(), rect.AngularVelocity(), 1e-12)
}

func TestBody_Transform(t *testing.T) {
	rect := mustRectangle(t, gm.Vec{X: 3, Y: 4}, 2, 1, math.Pi/2, 1)

	tr := rect.Transform()
	requireVecInDelta(t, gm.Vec{X: 3, Y: 4}, tr.Transform(gm.Vec{}), 1e-12)
	requireVecInDelta(t, rect.Vertices()[1], tr.Transform(gm.Vec{X: 2, Y: -1}), 1e-12)
}
