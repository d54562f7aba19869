// SPDX-License-Identifier: MIT

package geometry

import "github.com/katalvlaran/straaljager/vector"

// Ray is a half-line from Origin along Direction.
type Ray struct {
	Origin    vector.Vec3
	Direction vector.Vec3
}

// NewRay returns a ray with a normalized direction. A zero direction yields
// NaN components, as with vector.Normalized.
func NewRay(origin, direction vector.Vec3) Ray {
	return Ray{Origin: origin, Direction: vector.Normalized(direction)}
}

// At returns the point Origin + t·Direction.
func (r Ray) At(t float32) vector.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Sphere is a solid ball.
type Sphere struct {
	Center vector.Vec3
	Radius float32
}

// Normal returns the outward unit normal at a point p on the surface.
func (s Sphere) Normal(p vector.Vec3) vector.Vec3 {
	return p.Sub(s.Center).DivScalar(s.Radius)
}

// Plane is the set of points p with Normal·p = Distance. Normal is unit length.
type Plane struct {
	Normal   vector.Vec3
	Distance float32
}

// SignedDistance returns how far p lies in front of (positive) or behind
// (negative) the plane.
func (pl Plane) SignedDistance(p vector.Vec3) float32 {
	return pl.Normal.Dot(p) - pl.Distance
}
