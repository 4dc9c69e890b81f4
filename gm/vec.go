package gm

import (
	"fmt"
	"math"
)

// Vec is a 2d vector of float64 values. It is used for points
// as well as for directions.
type Vec struct {
	X, Y float64
}

var VecZero = Vec{}

// VecSplat returns a vector with both components set to value.
func VecSplat(value float64) Vec {
	return Vec{X: value, Y: value}
}

func (v Vec) Add(other Vec) Vec {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v Vec) Sub(other Vec) Vec {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v Vec) Mul(scalar float64) Vec {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v Vec) MulEach(other Vec) Vec {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

func (v Vec) DivEach(other Vec) Vec {
	v.X /= other.X
	v.Y /= other.Y
	return v
}

// Neg returns the vector pointing in the opposite direction.
func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

func (v Vec) Dot(other Vec) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3d cross product of v and other.
func (v Vec) Cross(other Vec) float64 {
	return v.X*other.Y - v.Y*other.X
}

// CrossScalar returns the cross product of the scalar s (a vector along the z axis)
// with v. For an angular velocity s and an offset v this is the tangential velocity.
func CrossScalar(s float64, v Vec) Vec {
	return Vec{X: -s * v.Y, Y: s * v.X}
}

// Perp returns the vector rotated by 90° counter clockwise.
func (v Vec) Perp() Vec {
	return Vec{X: -v.Y, Y: v.X}
}

func (v Vec) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vec) LengthSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec) DistanceTo(other Vec) float64 {
	return other.Sub(v).Length()
}

// Normalized returns a vector of length one pointing in the same direction as v.
// The result for a zero vector is not defined, use NormalizedOr in that case.
func (v Vec) Normalized() Vec {
	length := v.Length()
	v.X /= length
	v.Y /= length
	return v
}

// NormalizedOr returns the normalized vector, or fallback
// if v is too short to be normalized.
func (v Vec) NormalizedOr(fallback Vec) Vec {
	length := v.Length()
	if length < 1e-12 {
		return fallback
	}

	v.X /= length
	v.Y /= length
	return v
}

// Rotated returns the vector rotated counter clockwise by the given angle.
func (v Vec) Rotated(angle Rad) Vec {
	sin, cos := angle.SinCos()
	return Vec{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// IsFinite returns true, if neither component is NaN or infinite.
func (v Vec) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

func (v Vec) String() string {
	return fmt.Sprintf("vec(x=%v, y=%v)", v.X, v.Y)
}
