// Package view holds the camera used by the viewer to follow a simulation.
package view

import (
	"time"

	"github.com/oliverbestmann/rigid/gm"
	"github.com/oliverbestmann/rigid/interp"
	"github.com/oliverbestmann/rigid/physics"
)

// Camera follows a point in world space and converts world into screen coordinates.
// The world y axis points up, the screen y axis points down.
type Camera struct {
	Center *interp.Value[gm.Vec]

	// Zoom is the number of pixels per world unit
	Zoom *interp.Value[float64]

	Shake *interp.Shake
}

func NewCamera(center gm.Vec, zoom float64) *Camera {
	return &Camera{
		Center: interp.NewVec(center, 0.08, 60),
		Zoom:   interp.NewFloat(zoom, 0.15, 20),
		Shake:  interp.NewShake(18, 400*time.Millisecond),
	}
}

// Update runs one smoothing cycle and advances the shake by delta.
func (c *Camera) Update(delta time.Duration) {
	c.Center.Update()
	c.Zoom.Update()
	c.Shake.Update(delta)
}

// Follow moves the camera towards the centroid of all dynamic bodies.
// It keeps its target if there are no dynamic bodies.
func (c *Camera) Follow(bodies []physics.Shape) {
	if centroid, ok := Centroid(bodies); ok {
		c.Center.Set(centroid)
	}
}

// Impact shakes the camera along normal with a strength growing with the impulse.
func (c *Camera) Impact(normal gm.Vec, impulse float64) {
	strength := min(impulse*0.02, 0.5)
	c.Shake.Trigger(normal.Mul(strength))
}

// WorldToScreen returns the transformation from world to screen coordinates
// for a screen of the given size in pixels.
func (c *Camera) WorldToScreen(screenSize gm.Vec) gm.Affine {
	center := c.Center.Current().Add(c.Shake.Offset())
	return WorldToScreen(center, c.Zoom.Current(), screenSize)
}

// WorldToScreen maps center to the middle of the screen, scaled by
// pixelsPerUnit and with the y axis flipped.
func WorldToScreen(center gm.Vec, pixelsPerUnit float64, screenSize gm.Vec) gm.Affine {
	// the viewport size in world units
	viewportSizeInWorld := screenSize.Mul(1 / pixelsPerUnit)

	// offset of the screens origin from the center of the viewport in world units
	viewportOffsetInWorld := gm.Vec{X: 0.5, Y: -0.5}.MulEach(viewportSizeInWorld)

	toScreen := gm.IdentityAffine()

	// scale the viewport, flipping y
	toScreen = toScreen.Scale(gm.Vec{X: pixelsPerUnit, Y: -pixelsPerUnit})

	// move the viewport
	toScreen = toScreen.Translate(viewportOffsetInWorld)

	// move the camera to the target position in world space
	toScreen = toScreen.Translate(center.Mul(-1))

	return toScreen
}

// Centroid returns the average center of all dynamic bodies.
func Centroid(bodies []physics.Shape) (gm.Vec, bool) {
	var sum gm.Vec
	var count float64

	for _, shape := range bodies {
		if shape.Rigid().IsStatic() {
			continue
		}

		sum = sum.Add(shape.Center())
		count++
	}

	if count == 0 {
		return gm.Vec{}, false
	}

	return sum.Mul(1 / count), true
}

// Fit returns the zoom that makes the bounds of all bodies fit onto the screen.
func Fit(bodies []physics.Shape, screenSize gm.Vec, margin float64) (center gm.Vec, zoom float64, ok bool) {
	if len(bodies) == 0 {
		return gm.Vec{}, 0, false
	}

	bounds := bodies[0].Bounds()
	for _, shape := range bodies[1:] {
		bounds = bounds.Union(shape.Bounds())
	}

	bounds = bounds.Expand(margin)

	scale := screenSize.DivEach(bounds.Size())
	return bounds.Center(), min(scale.X, scale.Y), true
}
