package scene

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/oliverbestmann/rigid/gm"
)

type generator func(rng *rand.Rand, count int) []BodySpec

var generators = map[string]generator{
	"pyramid":   generatePyramid,
	"rain":      generateRain,
	"container": generateContainer,
	"pendulum":  generatePendulum,
	"mixed":     generateMixed,
}

// Kinds returns the names of all generators in sorted order.
func Kinds() []string {
	var kinds []string
	for kind := range generators {
		kinds = append(kinds, kind)
	}

	slices.Sort(kinds)
	return kinds
}

// Generate creates a procedural scene with count dynamic bodies. The
// same kind, count and seed always produce the same scene.
func Generate(kind string, count int, seed uint64) (*Scene, error) {
	gen, ok := generators[kind]
	if !ok {
		return nil, fmt.Errorf("scene: unknown generator %q, expected one of %v", kind, Kinds())
	}

	if count < 0 {
		return nil, fmt.Errorf("scene: negative body count %d", count)
	}

	rng := gm.NewRand(seed)

	return &Scene{Bodies: gen(rng, count)}, nil
}

func staticBox(name string, center gm.Vec, halfWidth, halfHeight float64) BodySpec {
	return BodySpec{
		Name:        name,
		Shape:       ShapeRectangle,
		Center:      center,
		HalfExtents: gm.Vec{X: halfWidth, Y: halfHeight},
		Restitution: 0.2,
		Friction:    0.6,
	}
}

func randomCircle(rng *rand.Rand, idx int, center gm.Vec, minRadius, maxRadius float64) BodySpec {
	radius := gm.RandomIn(rng, minRadius, maxRadius)

	return BodySpec{
		Name:        fmt.Sprintf("body-%d", idx),
		Shape:       ShapeCircle,
		Center:      center,
		Radius:      radius,
		Mass:        radius * radius * math.Pi,
		Restitution: 0.3,
		Friction:    0.4,
	}
}

func randomBox(rng *rand.Rand, idx int, center gm.Vec, minSize, maxSize float64) BodySpec {
	width := gm.RandomIn(rng, minSize, maxSize)
	height := gm.RandomIn(rng, minSize, maxSize)

	return BodySpec{
		Name:        fmt.Sprintf("body-%d", idx),
		Shape:       ShapeRectangle,
		Center:      center,
		HalfExtents: gm.Vec{X: width / 2, Y: height / 2},
		Rotation:    float64(gm.RandomAngle(rng)),
		Mass:        width * height,
		Restitution: 0.2,
		Friction:    0.5,
	}
}

// generatePyramid stacks boxes in rows that get shorter towards the top.
func generatePyramid(_ *rand.Rand, count int) []BodySpec {
	bodies := []BodySpec{staticBox("ground", gm.Vec{Y: -1}, 20, 1)}

	// smallest base that holds count boxes
	base := 0
	for base*(base+1)/2 < count {
		base++
	}

	const size = 1.0

	idx := 0
	for row := 0; idx < count; row++ {
		width := base - row
		for col := 0; col < width && idx < count; col++ {
			x := (float64(col) - float64(width-1)/2) * size
			y := size/2 + float64(row)*size

			bodies = append(bodies, BodySpec{
				Name:        fmt.Sprintf("body-%d", idx),
				Shape:       ShapeRectangle,
				Center:      gm.Vec{X: x, Y: y},
				HalfExtents: gm.VecSplat(size * 0.45),
				Mass:        1,
				Restitution: 0,
				Friction:    0.6,
			})

			idx++
		}
	}

	return bodies
}

// generateRain drops circles and boxes into a wide basin.
func generateRain(rng *rand.Rand, count int) []BodySpec {
	bodies := []BodySpec{
		staticBox("ground", gm.Vec{Y: -1}, 15, 1),
		staticBox("wall-left", gm.Vec{X: -15, Y: 10}, 0.5, 10),
		staticBox("wall-right", gm.Vec{X: 15, Y: 10}, 0.5, 10),
	}

	for idx := range count {
		center := gm.Vec{
			X: gm.RandomIn(rng, -13, 13),
			Y: gm.RandomIn(rng, 5, 30),
		}

		if rng.Float64() < 0.7 {
			bodies = append(bodies, randomCircle(rng, idx, center, 0.2, 0.6))
		} else {
			bodies = append(bodies, randomBox(rng, idx, center, 0.4, 1.2))
		}
	}

	return bodies
}

// generateContainer fills an open box with bodies placed on a grid.
func generateContainer(rng *rand.Rand, count int) []BodySpec {
	bodies := []BodySpec{
		staticBox("floor", gm.Vec{Y: -0.5}, 6, 0.5),
		staticBox("wall-left", gm.Vec{X: -6, Y: 5}, 0.5, 6),
		staticBox("wall-right", gm.Vec{X: 6, Y: 5}, 0.5, 6),
	}

	const columns = 8

	for idx := range count {
		center := gm.Vec{
			X: (float64(idx%columns) - (columns-1)/2.0) * 1.2,
			Y: 1 + float64(idx/columns)*1.2,
		}

		if rng.Float64() < 0.6 {
			bodies = append(bodies, randomCircle(rng, idx, center, 0.3, 0.5))
		} else {
			bodies = append(bodies, randomBox(rng, idx, center, 0.5, 0.8))
		}
	}

	return bodies
}

// generatePendulum builds a row of touching elastic balls on the ground,
// the first one launched into the others.
func generatePendulum(_ *rand.Rand, count int) []BodySpec {
	bodies := []BodySpec{staticBox("ground", gm.Vec{Y: -1}, 20, 1)}

	const radius = 0.5

	for idx := range count {
		ball := BodySpec{
			Name:        fmt.Sprintf("body-%d", idx),
			Shape:       ShapeCircle,
			Center:      gm.Vec{X: float64(idx) * 2 * radius, Y: radius},
			Radius:      radius,
			Mass:        1,
			Restitution: 1,
		}

		if idx == 0 {
			ball.Center.X -= 3
			ball.Velocity = gm.Vec{X: 4}
		}

		bodies = append(bodies, ball)
	}

	return bodies
}

// generateMixed scatters bodies with random materials above a couple of platforms.
func generateMixed(rng *rand.Rand, count int) []BodySpec {
	bodies := []BodySpec{
		staticBox("ground-left", gm.Vec{X: -10, Y: -1}, 6, 1),
		staticBox("ground-right", gm.Vec{X: 10, Y: -1}, 6, 1),
	}

	for idx := range 4 {
		platform := staticBox(
			fmt.Sprintf("platform-%d", idx),
			gm.Vec{X: gm.RandomIn(rng, -12, 12), Y: 3 + float64(idx)*3},
			gm.RandomIn(rng, 1.5, 3), 0.2,
		)

		platform.Rotation = gm.RandomIn(rng, -0.3, 0.3)
		bodies = append(bodies, platform)
	}

	for idx := range count {
		center := gm.Vec{
			X: gm.RandomIn(rng, -15, 15),
			Y: gm.RandomIn(rng, 15, 30),
		}

		var body BodySpec
		switch rng.IntN(3) {
		case 0:
			body = randomCircle(rng, idx, center, 0.2, 0.8)
			body.Restitution = gm.RandomIn(rng, 0.5, 1)
		case 1:
			body = randomBox(rng, idx, center, 0.5, 1.5)
			body.Restitution = gm.RandomIn(rng, 0.3, 0.8)
		default:
			body = randomBox(rng, idx, center, 0.3, 2)
			body.HalfExtents.Y *= 0.5
			body.Mass *= 0.5
		}

		body.Friction = gm.RandomIn(rng, 0.2, 0.9)
		bodies = append(bodies, body)
	}

	return bodies
}
