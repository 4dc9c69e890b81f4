package physics

import (
	"fmt"
	"math"

	"github.com/oliverbestmann/rigid/gm"
)

// vertices with projections this close are considered to lie on the same face
const vertexTieTolerance = 1e-9

// fallback normal for circles sharing the same center
var coincidentNormal = gm.Vec{X: 1}

type kindPair struct {
	A, B Kind
}

// Collide tests two shapes for overlap. If they overlap, it returns the
// collision info with the normal pointing from a to b.
//
// Collide does not change either shape, calling it twice on the same unmodified
// shapes returns the same result.
func Collide(a, b Shape) (CollisionInfo, bool) {
	if !boundingCirclesOverlap(a, b) {
		return CollisionInfo{}, false
	}

	switch (kindPair{a.Kind(), b.Kind()}) {
	case kindPair{KindCircle, KindCircle}:
		return collideCircles(a.(*Circle), b.(*Circle))

	case kindPair{KindCircle, KindRectangle}:
		return collideCircleRectangle(a.(*Circle), b.(*Rectangle))

	case kindPair{KindRectangle, KindCircle}:
		info, ok := collideCircleRectangle(b.(*Circle), a.(*Rectangle))
		if !ok {
			return CollisionInfo{}, false
		}

		return info.Flip(), true

	case kindPair{KindRectangle, KindRectangle}:
		return collideRectangles(a.(*Rectangle), b.(*Rectangle))

	default:
		panic(fmt.Sprintf("no collision test for %s and %s", a.Kind(), b.Kind()))
	}
}

func boundingCirclesOverlap(a, b Shape) bool {
	distance := a.Center().DistanceTo(b.Center())
	return distance <= a.BoundingRadius()+b.BoundingRadius()
}

func collideCircles(a, b *Circle) (CollisionInfo, bool) {
	delta := b.position.Sub(a.position)
	distance := delta.Length()

	radiusSum := a.radius + b.radius
	if distance >= radiusSum {
		return CollisionInfo{}, false
	}

	normal := coincidentNormal
	if distance > 0 {
		normal = delta.Mul(1 / distance)
	}

	info := CollisionInfo{
		Depth:   radiusSum - distance,
		Normal:  normal,
		Contact: a.position.Add(normal.Mul(a.radius)),
	}

	return info, true
}

func collideCircleRectangle(circle *Circle, rect *Rectangle) (CollisionInfo, bool) {
	local := rect.toLocal(circle.position)
	extents := rect.halfExtents

	closest := gm.Vec{
		X: clamp(local.X, -extents.X, extents.X),
		Y: clamp(local.Y, -extents.Y, extents.Y),
	}

	var depth float64
	var localNormal gm.Vec

	if closest != local {
		// center is outside of the rectangle, test against the closest point
		delta := closest.Sub(local)
		distance := delta.Length()
		if distance >= circle.radius {
			return CollisionInfo{}, false
		}

		depth = circle.radius - distance
		localNormal = delta.Mul(1 / distance)
	} else {
		// center is inside, the nearest face decides the normal. The normal
		// points from the circle into the rectangle, opposite to the faces normal.
		dx := extents.X - math.Abs(local.X)
		dy := extents.Y - math.Abs(local.Y)

		if dx <= dy {
			depth = circle.radius + dx
			localNormal = gm.Vec{X: -signum(local.X)}
		} else {
			depth = circle.radius + dy
			localNormal = gm.Vec{Y: -signum(local.Y)}
		}
	}

	normal := rect.toWorldVec(localNormal)

	info := CollisionInfo{
		Depth:   depth,
		Normal:  normal,
		Contact: circle.position.Add(normal.Mul(circle.radius)),
	}

	return info, true
}

// collideRectangles runs the separating axis test on the face normals of both rectangles.
// The face on the axis of least penetration is the reference face. The facing side of the
// other rectangle is clipped against the side planes of the reference face and the
// penetrating points of the clipped segment are averaged into a single contact point.
func collideRectangles(a, b *Rectangle) (CollisionInfo, bool) {
	verticesA := a.Vertices()
	verticesB := b.Vertices()

	axesA := a.Axes()
	axesB := b.Axes()
	axes := [4]gm.Vec{axesA[0], axesA[1], axesB[0], axesB[1]}

	bestAxis := -1
	depth := math.Inf(1)
	var normal gm.Vec

	for idx, axis := range axes {
		minA, maxA := project(verticesA, axis)
		minB, maxB := project(verticesB, axis)

		// distance to push b along +axis or -axis to separate the projections
		forward := maxA - minB
		backward := maxB - minA

		if forward <= 0 || backward <= 0 {
			return CollisionInfo{}, false
		}

		overlap, dir := forward, axis
		if backward < forward {
			overlap, dir = backward, axis.Neg()
		}

		if overlap < depth {
			depth = overlap
			normal = dir
			bestAxis = idx
		}
	}

	var contact gm.Vec
	if bestAxis < 2 {
		// face of a is the reference, the clipped points of b are moved back onto it
		points, ok := clipIncidentFace(a, b, bestAxis, normal, true)
		if !ok {
			deepest := extremeVertex(verticesB, normal.Neg())
			points = []gm.Vec{deepest.Add(normal.Mul(depth))}
		}

		contact = average(points)
	} else {
		// face of b is the reference, the clipped points of a lie on a's surface
		points, ok := clipIncidentFace(b, a, bestAxis-2, normal.Neg(), false)
		if !ok {
			points = []gm.Vec{extremeVertex(verticesA, normal)}
		}

		contact = average(points)
	}

	info := CollisionInfo{
		Depth:   depth,
		Normal:  normal,
		Contact: contact,
	}

	return info, true
}

// clipIncidentFace clips the face of inc that points against n to the side planes of the
// face of ref with the outward normal n along ref's axis refAxis. It returns the clipped
// points that lie behind the reference face, projected onto the reference face if onReference is set.
func clipIncidentFace(ref, inc *Rectangle, refAxis int, n gm.Vec, onReference bool) ([]gm.Vec, bool) {
	refAxes := ref.Axes()
	refExtents := [2]float64{ref.halfExtents.X, ref.halfExtents.Y}

	// side planes of the reference face along its tangent
	tangent := refAxes[1-refAxis]
	center := ref.position.Dot(tangent)
	lo := center - refExtents[1-refAxis]
	hi := center + refExtents[1-refAxis]

	faceOffset := ref.position.Dot(n) + refExtents[refAxis]

	start, end := incidentFace(inc, n)

	start, end, ok := clipSegment(start, end, tangent, lo, hi)
	if !ok {
		return nil, false
	}

	var points []gm.Vec
	for _, point := range [2]gm.Vec{start, end} {
		separation := point.Dot(n) - faceOffset
		if separation > vertexTieTolerance {
			continue
		}

		if onReference {
			point = point.Sub(n.Mul(separation))
		}

		points = append(points, point)
	}

	return points, len(points) > 0
}

// incidentFace returns the end points of the face of rect whose normal
// is most anti-parallel to n.
func incidentFace(rect *Rectangle, n gm.Vec) (gm.Vec, gm.Vec) {
	axes := rect.Axes()
	extents := [2]float64{rect.halfExtents.X, rect.halfExtents.Y}

	axis := 0
	if math.Abs(axes[1].Dot(n)) > math.Abs(axes[0].Dot(n)) {
		axis = 1
	}

	faceNormal := axes[axis]
	if faceNormal.Dot(n) > 0 {
		faceNormal = faceNormal.Neg()
	}

	faceCenter := rect.position.Add(faceNormal.Mul(extents[axis]))
	side := axes[1-axis].Mul(extents[1-axis])

	return faceCenter.Sub(side), faceCenter.Add(side)
}

// clipSegment clips the segment from a to b to the points p with lo <= p·dir <= hi.
func clipSegment(a, b, dir gm.Vec, lo, hi float64) (gm.Vec, gm.Vec, bool) {
	da, db := a.Dot(dir), b.Dot(dir)
	if max(da, db) < lo || min(da, db) > hi {
		return gm.Vec{}, gm.Vec{}, false
	}

	if da == db {
		return a, b, true
	}

	at := func(d float64) gm.Vec {
		return a.Add(b.Sub(a).Mul((d - da) / (db - da)))
	}

	clippedA, clippedB := a, b

	if da < lo {
		clippedA = at(lo)
	} else if da > hi {
		clippedA = at(hi)
	}

	if db < lo {
		clippedB = at(lo)
	} else if db > hi {
		clippedB = at(hi)
	}

	return clippedA, clippedB, true
}

func project(vertices [4]gm.Vec, axis gm.Vec) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, vertex := range vertices {
		p := vertex.Dot(axis)
		lo = min(lo, p)
		hi = max(hi, p)
	}

	return lo, hi
}

// extremeVertex returns the vertex furthest along dir. Vertices within
// vertexTieTolerance of the maximum are averaged.
func extremeVertex(vertices [4]gm.Vec, dir gm.Vec) gm.Vec {
	best := math.Inf(-1)
	for _, vertex := range vertices {
		best = max(best, vertex.Dot(dir))
	}

	var points []gm.Vec
	for _, vertex := range vertices {
		if vertex.Dot(dir) >= best-vertexTieTolerance {
			points = append(points, vertex)
		}
	}

	return average(points)
}

func average(points []gm.Vec) gm.Vec {
	var sum gm.Vec
	for _, point := range points {
		sum = sum.Add(point)
	}

	return sum.Mul(1 / float64(len(points)))
}

func clamp(value, lo, hi float64) float64 {
	return max(lo, min(value, hi))
}

func signum(value float64) float64 {
	if value < 0 {
		return -1
	}

	return 1
}
