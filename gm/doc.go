// Package gm (stands for geometry math) provides some geometry primitives.
//
// It includes a simple 2d vector type called Vec, a 2d matrix type Mat, an
// affine transform matrix named Affine and an axis aligned rectangle Rect.
//
// There is also a type named Rad to represent angle values in radian, and
// a few helpers for interpolation and seeded random sampling.
package gm
