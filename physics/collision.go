package physics

import (
	"fmt"

	"github.com/oliverbestmann/rigid/gm"
)

// CollisionInfo describes the overlap of two shapes A and B.
//
// It is computed fresh for each pair and step and is not meant to be kept
// around after the contact was resolved.
type CollisionInfo struct {
	// Depth is the distance the shapes need to be moved apart along
	// Normal to separate them. It is never negative.
	Depth float64

	// Normal is a unit vector pointing from A towards B.
	Normal gm.Vec

	// Contact is the point on the surface of A closest to the overlap.
	Contact gm.Vec
}

// End returns the point of B that penetrates A the deepest.
func (c CollisionInfo) End() gm.Vec {
	return c.Contact.Sub(c.Normal.Mul(c.Depth))
}

// Flip returns the same collision seen from B.
func (c CollisionInfo) Flip() CollisionInfo {
	return CollisionInfo{
		Depth:   c.Depth,
		Normal:  c.Normal.Neg(),
		Contact: c.End(),
	}
}

func (c CollisionInfo) String() string {
	return fmt.Sprintf("CollisionInfo(depth=%v, normal=%s, contact=%s)", c.Depth, c.Normal, c.Contact)
}
