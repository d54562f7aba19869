// SPDX-License-Identifier: MIT

// Package geometry holds the float32 ray-tracing primitives (Ray, Sphere,
// Plane, Triangle) and the ray intersection tests between them.
//
// Conventions:
//
//	A Ray direction is expected to be unit length; hit distances t are then
//	world-space distances along the ray. NewRay normalizes for you.
//	A Plane is the set of points p with Normal·p = Distance.
//	Intersection functions return (t, ok); ok is false on a miss and t is
//	meaningless in that case. Hits behind the ray origin (t < 0) are misses.
package geometry
