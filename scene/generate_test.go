package scene

import (
	"testing"

	"github.com/oliverbestmann/rigid/physics"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(kind, func(t *testing.T) {
			scene, err := Generate(kind, 25, 1)
			require.NoError(t, err)

			world, err := scene.Build()
			require.NoError(t, err)

			var dynamic int
			for _, shape := range world.Bodies() {
				if !shape.Rigid().IsStatic() {
					dynamic++
				}
			}

			require.Equal(t, 25, dynamic)

			for range 60 {
				_, err := world.Advance(1.0 / 60.0)
				require.NoError(t, err)
			}
		})
	}
}

func TestGenerate_Reproducible(t *testing.T) {
	first, err := Generate("rain", 50, 99)
	require.NoError(t, err)

	second, err := Generate("rain", 50, 99)
	require.NoError(t, err)

	require.Equal(t, first, second)

	other, err := Generate("rain", 50, 100)
	require.NoError(t, err)
	require.NotEqual(t, first, other)
}

func TestGenerate_Invalid(t *testing.T) {
	_, err := Generate("tornado", 10, 1)
	require.ErrorContains(t, err, "unknown generator")

	_, err = Generate("rain", -1, 1)
	require.Error(t, err)
}

func TestGenerate_PyramidRows(t *testing.T) {
	scene, err := Generate("pyramid", 6, 0)
	require.NoError(t, err)

	world, err := scene.Build()
	require.NoError(t, err)

	// rows of 3, 2 and 1 boxes
	var rows = map[float64]int{}
	for _, shape := range world.Bodies()[1:] {
		require.Equal(t, physics.KindRectangle, shape.Kind())
		rows[shape.Center().Y]++
	}

	require.Equal(t, map[float64]int{0.5: 3, 1.5: 2, 2.5: 1}, rows)
}
