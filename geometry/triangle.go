// SPDX-License-Identifier: MIT

package geometry

import (
	"github.com/chewxy/math32"

	"github.com/katalvlaran/straaljager/scalar"
	"github.com/katalvlaran/straaljager/vector"
)

// Triangle is defined by three vertices.
type Triangle struct {
	V0, V1, V2 vector.Vec3
}

// Normal returns the unit normal (V0-V1)×(V0-V2). Degenerate triangles give
// NaN components.
func (t Triangle) Normal() vector.Vec3 {
	return vector.Normalized(vector.Cross(t.V0.Sub(t.V1), t.V0.Sub(t.V2)))
}

// Plane returns the plane the triangle lies in.
func (t Triangle) Plane() Plane {
	n := t.Normal()

	return Plane{Normal: n, Distance: n.Dot(t.V0)}
}

// Area returns the surface area.
func (t Triangle) Area() float32 {
	return vector.Length(vector.Cross(t.V1.Sub(t.V0), t.V2.Sub(t.V0))) / 2
}

// Barycentric returns the weights (w0, w1, w2) of V0, V1 and V2 for the
// projection of p onto the triangle's plane, so that
// w0·V0 + w1·V1 + w2·V2 is that projection and the weights sum to 1.
func (t Triangle) Barycentric(p vector.Vec3) vector.Vec3 {
	e0 := t.V1.Sub(t.V0)
	e1 := t.V2.Sub(t.V0)
	ep := p.Sub(t.V0)

	d00 := e0.Dot(e0)
	d01 := e0.Dot(e1)
	d11 := e1.Dot(e1)
	dp0 := ep.Dot(e0)
	dp1 := ep.Dot(e1)

	denom := d00*d11 - d01*d01
	w1 := (d11*dp0 - d01*dp1) / denom
	w2 := (d00*dp1 - d01*dp0) / denom

	return vector.New3(1-w1-w2, w1, w2)
}

// Contains reports whether p lies on the triangle, edges included. The
// plane-distance tolerance is scalar.Epsilon scaled by the magnitude of p,
// so distant points are judged relative to their float32 precision.
func (t Triangle) Contains(p vector.Vec3) bool {
	tol := scalar.Epsilon * max(1, vector.Length(p))
	if math32.Abs(t.Plane().SignedDistance(p)) > tol {
		return false
	}

	return insideWeights(t.Barycentric(p))
}

// insideWeights reports whether barycentric weights w lie on the triangle.
func insideWeights(w vector.Vec3) bool {
	return w.X() >= -scalar.Epsilon && w.Y() >= -scalar.Epsilon && w.Z() >= -scalar.Epsilon
}

// Interpolate blends per-vertex attributes a0, a1 and a2 at the barycentric
// weights w returned by Triangle.Barycentric.
func Interpolate[S vector.Size](w vector.Vec3, a0, a1, a2 vector.Vector[float32, S]) vector.Vector[float32, S] {
	return a0.Scale(w.X()).Add(a1.Scale(w.Y())).Add(a2.Scale(w.Z()))
}
