package physics

import (
	"fmt"
	"math"

	"github.com/oliverbestmann/rigid/gm"
)

// Kind tags the concrete type of a Shape. Collision detection dispatches on
// the pair of kinds.
type Kind uint8

const (
	KindCircle Kind = iota + 1
	KindRectangle
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindRectangle:
		return "rectangle"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Shape is implemented by *Circle and *Rectangle only.
type Shape interface {
	fmt.Stringer

	Kind() Kind

	// Rigid gives access to the rigid body state of the shape.
	Rigid() *Body

	Center() gm.Vec
	Mass() float64
	Inertia() float64

	// BoundingRadius returns the radius of a circle around the center
	// that fully contains the shape.
	BoundingRadius() float64

	// Bounds returns the axis aligned bounding box of the shape.
	Bounds() gm.Rect

	Move(delta gm.Vec)
	Rotate(delta gm.Rad)

	sealed()
}

var _ Shape = (*Circle)(nil)
var _ Shape = (*Rectangle)(nil)

type Circle struct {
	Body
	radius float64
}

// NewCircle creates a circle. Circles do not rotate, their inertia is zero.
func NewCircle(center gm.Vec, radius, mass, restitution, friction float64) (*Circle, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("circle radius %v: %w", radius, ErrInvalidShape)
	}

	circle := &Circle{
		Body:   newBody(center, 0, 0, false),
		radius: radius,
	}

	if err := circle.init(mass, restitution, friction); err != nil {
		return nil, fmt.Errorf("circle: %w", err)
	}

	return circle, nil
}

func (c *Circle) Kind() Kind {
	return KindCircle
}

func (c *Circle) Radius() float64 {
	return c.radius
}

func (c *Circle) BoundingRadius() float64 {
	return c.radius
}

func (c *Circle) Bounds() gm.Rect {
	return gm.RectWithCenterAndSize(c.position, gm.VecSplat(2*c.radius))
}

func (c *Circle) String() string {
	return fmt.Sprintf("Circle(id=%d, center=%s, radius=%v)", c.id, c.position, c.radius)
}

func (*Circle) sealed() {}

// Rectangle is an oriented box given by its center, half extents and rotation.
type Rectangle struct {
	Body
	halfExtents gm.Vec

	// vertices and axes are derived from position and angle and
	// are recomputed lazily whenever one of them changed.
	cacheValid    bool
	cachePosition gm.Vec
	cacheAngle    gm.Rad
	vertices      [4]gm.Vec
	axes          [2]gm.Vec
}

func NewRectangle(center gm.Vec, halfWidth, halfHeight float64, rotation gm.Rad, mass, restitution, friction float64) (*Rectangle, error) {
	if !(halfWidth > 0) || !(halfHeight > 0) || math.IsInf(halfWidth, 0) || math.IsInf(halfHeight, 0) {
		return nil, fmt.Errorf("rectangle half extents %v x %v: %w", halfWidth, halfHeight, ErrInvalidShape)
	}

	if math.IsNaN(float64(rotation)) || math.IsInf(float64(rotation), 0) {
		return nil, fmt.Errorf("rectangle rotation %v: %w", rotation, ErrInvalidShape)
	}

	// m * (w² + h²) / 12 with w and h being the full extents
	inertiaFactor := (halfWidth*halfWidth + halfHeight*halfHeight) / 3

	rect := &Rectangle{
		Body:        newBody(center, rotation, inertiaFactor, true),
		halfExtents: gm.Vec{X: halfWidth, Y: halfHeight},
	}

	if err := rect.init(mass, restitution, friction); err != nil {
		return nil, fmt.Errorf("rectangle: %w", err)
	}

	return rect, nil
}

func (r *Rectangle) Kind() Kind {
	return KindRectangle
}

func (r *Rectangle) HalfExtents() gm.Vec {
	return r.halfExtents
}

func (r *Rectangle) BoundingRadius() float64 {
	return r.halfExtents.Length()
}

// Vertices returns the corners of the rectangle in world space in counter clockwise order,
// starting at the bottom left corner in local space.
func (r *Rectangle) Vertices() [4]gm.Vec {
	r.updateCache()
	return r.vertices
}

// Axes returns the unit normals of the rectangles faces, the local x and y axis in world space.
func (r *Rectangle) Axes() [2]gm.Vec {
	r.updateCache()
	return r.axes
}

func (r *Rectangle) Bounds() gm.Rect {
	vertices := r.Vertices()
	return gm.RectEnclosing(vertices[:]...)
}

// toLocal transforms a point from world space into the rectangles local space.
func (r *Rectangle) toLocal(point gm.Vec) gm.Vec {
	axes := r.Axes()
	d := point.Sub(r.position)
	return gm.Vec{X: d.Dot(axes[0]), Y: d.Dot(axes[1])}
}

// toWorldVec rotates a direction from local into world space.
func (r *Rectangle) toWorldVec(vec gm.Vec) gm.Vec {
	axes := r.Axes()
	return axes[0].Mul(vec.X).Add(axes[1].Mul(vec.Y))
}

func (r *Rectangle) updateCache() {
	if r.cacheValid && r.cachePosition == r.position && r.cacheAngle == r.angle {
		return
	}

	rot := gm.RotationMat(r.angle)
	ex, ey := r.halfExtents.X, r.halfExtents.Y

	local := [4]gm.Vec{
		{X: -ex, Y: -ey},
		{X: ex, Y: -ey},
		{X: ex, Y: ey},
		{X: -ex, Y: ey},
	}

	for idx, corner := range local {
		r.vertices[idx] = rot.Transform(corner).Add(r.position)
	}

	r.axes[0] = rot.Transform(gm.Vec{X: 1})
	r.axes[1] = rot.Transform(gm.Vec{Y: 1})

	r.cacheValid = true
	r.cachePosition = r.position
	r.cacheAngle = r.angle
}

func (r *Rectangle) String() string {
	return fmt.Sprintf("Rectangle(id=%d, center=%s, halfExtents=%s, angle=%v)",
		r.id, r.position, r.halfExtents, float64(r.angle))
}

func (*Rectangle) sealed() {}
