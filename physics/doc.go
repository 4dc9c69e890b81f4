// Package physics implements a small planar rigid body simulation.
//
// A World holds Circle and Rectangle shapes. Each call to World.Advance
// integrates all dynamic bodies with semi-implicit euler, tests every
// shape pair for overlap and resolves the found contacts with a single
// impulse and a positional correction per pair.
//
// Contacts are described by a single contact point. This is an approximation
// and not a clipped contact manifold: resting stacks of rectangles will show a
// little jitter, as pairs are resolved once per step in registration order
// without iterating to a fixed point.
//
// The package does no I/O and uses no locks. A World must only be used
// from one goroutine at a time, independent worlds can run concurrently.
package physics
