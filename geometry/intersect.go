// SPDX-License-Identifier: MIT

package geometry

import (
	"github.com/chewxy/math32"

	"github.com/katalvlaran/straaljager/scalar"
)

// sphereRoots returns the entry and exit distances t0 <= t1 of r through s,
// measured along the ray's unit direction.
//
//	oc  = C - O
//	tca = oc·D            distance to the point closest to C
//	d²  = oc·oc - tca²    squared distance of that point from C
//	thc = √(r² - d²)
//
// A ray whose line passes farther than the radius from C misses (d² > r²).
func sphereRoots(r Ray, s Sphere) (t0, t1 float32, ok bool) {
	oc := s.Center.Sub(r.Origin)
	tca := oc.Dot(r.Direction)
	d2 := oc.Dot(oc) - tca*tca
	r2 := s.Radius * s.Radius
	if d2 > r2 {
		return 0, 0, false
	}
	thc := math32.Sqrt(r2 - d2)

	return tca - thc, tca + thc, true
}

// RaySphereClosest returns the distance to the nearest intersection at or in
// front of the ray origin. A ray starting inside the sphere hits the exit
// point.
func RaySphereClosest(r Ray, s Sphere) (float32, bool) {
	t0, t1, ok := sphereRoots(r, s)
	switch {
	case !ok:
		return 0, false
	case t0 >= 0:
		return t0, true
	case t1 >= 0:
		return t1, true
	default:
		return 0, false
	}
}

// RaySphereAll returns both intersections of the ray's line with s, ordered,
// when at least one lies at or in front of the origin. The first distance is
// negative when the origin is inside the sphere; a tangent ray returns the
// same distance twice.
func RaySphereAll(r Ray, s Sphere) ([2]float32, bool) {
	t0, t1, ok := sphereRoots(r, s)
	if !ok || t1 < 0 {
		return [2]float32{}, false
	}

	return [2]float32{t0, t1}, true
}

// RayPlane returns the distance at which r crosses p. Rays parallel to the
// plane miss, including those lying in it.
func RayPlane(r Ray, p Plane) (float32, bool) {
	denom := p.Normal.Dot(r.Direction)
	if math32.Abs(denom) < scalar.Epsilon {
		return 0, false
	}
	t := (p.Distance - p.Normal.Dot(r.Origin)) / denom
	if t < 0 {
		return 0, false
	}

	return t, true
}

// RayTriangle returns the distance at which r hits t. The hit point lies on
// the plane by construction, so only its barycentric weights are checked.
func RayTriangle(r Ray, t Triangle) (float32, bool) {
	d, ok := RayPlane(r, t.Plane())
	if !ok || !insideWeights(t.Barycentric(r.At(d))) {
		return 0, false
	}

	return d, true
}
