package gm

import (
	"math"
	"math/rand/v2"
)

// NewRand returns a deterministic random source for the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn(rng *rand.Rand, min, max float64) float64 {
	return rng.Float64()*(max-min) + min
}

// RandomAngle returns a random angle uniformly sampled from the full circle
func RandomAngle(rng *rand.Rand) Rad {
	return Rad(RandomIn(rng, 0, 2*math.Pi))
}

// RandomVec returns a vector uniformly sampled from within the unit circle.
func RandomVec(rng *rand.Rand) Vec {
	for {
		v := Vec{
			X: RandomIn(rng, -1, 1),
			Y: RandomIn(rng, -1, 1),
		}

		if v.LengthSqr() <= 1 {
			return v
		}
	}
}
