package physics

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// StateHash returns a hash over the position, angle and velocities of all bodies
// in registration order. Two worlds built the same way and advanced with the
// same time steps have the same hash.
func (w *World) StateHash() uint64 {
	digest := xxhash.New()

	var buf [8 * 6]byte
	for _, shape := range w.shapes {
		body := shape.Rigid()

		binary.LittleEndian.PutUint64(buf[0:], math.Float64bits(body.position.X))
		binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(body.position.Y))
		binary.LittleEndian.PutUint64(buf[16:], math.Float64bits(float64(body.angle)))
		binary.LittleEndian.PutUint64(buf[24:], math.Float64bits(body.velocity.X))
		binary.LittleEndian.PutUint64(buf[32:], math.Float64bits(body.velocity.Y))
		binary.LittleEndian.PutUint64(buf[40:], math.Float64bits(body.angularVelocity))

		_, _ = digest.Write(buf[:])
	}

	return digest.Sum64()
}
