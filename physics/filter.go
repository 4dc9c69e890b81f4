package physics

import "math"

type Filter struct {
	// Two objects with the same non-zero group value do not collide.
	// This is generally used to group objects in a composite object together to disable self collisions.
	Group uint
	// A bitmask of user definable categories that this object belongs to.
	// The category/mask combinations of both objects in a collision must agree for a collision to occur.
	Categories uint
	// A bitmask of user definable category types that this object object collides with.
	// The category/mask combinations of both objects in a collision must agree for a collision to occur.
	Mask uint
}

// DefaultFilter puts a body into the first category and lets it collide with everything.
var DefaultFilter = Filter{
	Categories: 1,
	Mask:       math.MaxUint,
}

// Accepts reports whether bodies with the filters f and other may collide.
func (f Filter) Accepts(other Filter) bool {
	if f.Group != 0 && f.Group == other.Group {
		return false
	}

	return f.Categories&other.Mask != 0 && other.Categories&f.Mask != 0
}
