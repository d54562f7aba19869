// SPDX-License-Identifier: MIT

package geometry_test

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/straaljager/geometry"
	"github.com/katalvlaran/straaljager/vector"
)

func v3(x, y, z float32) vector.Vec3 { return vector.New3(x, y, z) }

func TestRay_At(t *testing.T) {
	r := geometry.NewRay(v3(1, 2, 3), v3(0, 0, 5))
	assert.Equal(t, v3(0, 0, 1), r.Direction, "NewRay normalizes")
	assert.Equal(t, v3(1, 2, 5), r.At(2))
	assert.Equal(t, r.Origin, r.At(0))
}

func TestRaySphereClosest(t *testing.T) {
	unit := geometry.Sphere{Center: v3(0, 0, 5), Radius: 1}

	tests := []struct {
		name   string
		ray    geometry.Ray
		sphere geometry.Sphere
		want   float32
		hit    bool
	}{
		{"head on", geometry.NewRay(v3(0, 0, 0), v3(0, 0, 1)), unit, 4, true},
		{"miss", geometry.NewRay(v3(0, 0, 0), v3(0, 1, 0)), unit, 0, false},
		{"offset miss", geometry.NewRay(v3(2, 0, 0), v3(0, 0, 1)), unit, 0, false},
		{"tangent", geometry.NewRay(v3(1, 0, 0), v3(0, 0, 1)), unit, 5, true},
		{"inside hits exit", geometry.NewRay(v3(0, 0, 5), v3(0, 0, 1)), unit, 1, true},
		{"behind", geometry.NewRay(v3(0, 0, 10), v3(0, 0, 1)), unit, 0, false},
		{"big sphere", geometry.NewRay(v3(0, 0, -20), v3(0, 0, 1)), geometry.Sphere{Radius: 10}, 10, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := geometry.RaySphereClosest(tc.ray, tc.sphere)
			require.Equal(t, tc.hit, ok)
			if ok {
				assert.InDelta(t, tc.want, got, 1e-5)
			}
		})
	}
}

func TestRaySphereClosest_OnSurface(t *testing.T) {
	s := geometry.Sphere{Center: v3(0, 0, 5), Radius: 1}
	r := geometry.NewRay(v3(0.5, 0.5, -1), v3(0, 0, 1))

	d, ok := geometry.RaySphereClosest(r, s)
	require.True(t, ok)
	p := r.At(d)
	assert.InDelta(t, s.Radius, vector.Length(p.Sub(s.Center)), 1e-5)
	assert.True(t, vector.IsUnit(s.Normal(p)))
}

func TestRaySphereAll(t *testing.T) {
	s := geometry.Sphere{Center: v3(0, 0, 5), Radius: 1}

	ts, ok := geometry.RaySphereAll(geometry.NewRay(v3(0, 0, 0), v3(0, 0, 1)), s)
	require.True(t, ok)
	assert.InDelta(t, 4, ts[0], 1e-5)
	assert.InDelta(t, 6, ts[1], 1e-5)

	ts, ok = geometry.RaySphereAll(geometry.NewRay(v3(0, 0, 5), v3(0, 0, 1)), s)
	require.True(t, ok)
	assert.InDelta(t, -1, ts[0], 1e-5, "origin inside: entry is behind")
	assert.InDelta(t, 1, ts[1], 1e-5)

	ts, ok = geometry.RaySphereAll(geometry.NewRay(v3(1, 0, 0), v3(0, 0, 1)), s)
	require.True(t, ok)
	assert.Equal(t, ts[0], ts[1], "tangent")

	_, ok = geometry.RaySphereAll(geometry.NewRay(v3(0, 0, 7), v3(0, 0, 1)), s)
	assert.False(t, ok)
	_, ok = geometry.RaySphereAll(geometry.NewRay(v3(0, 3, 0), v3(0, 0, 1)), s)
	assert.False(t, ok)
}

func TestRayPlane(t *testing.T) {
	floor := geometry.Plane{Normal: v3(0, 1, 0), Distance: -2}

	d, ok := geometry.RayPlane(geometry.NewRay(v3(0, 3, 0), v3(0, -1, 0)), floor)
	require.True(t, ok)
	assert.InDelta(t, 5, d, 1e-6)

	// 45° down: the path is √2 times longer.
	d, ok = geometry.RayPlane(geometry.NewRay(v3(0, 0, 0), v3(1, -1, 0)), floor)
	require.True(t, ok)
	assert.InDelta(t, 2*math32.Sqrt(2), d, 1e-5)

	_, ok = geometry.RayPlane(geometry.NewRay(v3(0, 0, 0), v3(1, 0, 0)), floor)
	assert.False(t, ok, "parallel")
	_, ok = geometry.RayPlane(geometry.NewRay(v3(0, 0, 0), v3(0, 1, 0)), floor)
	assert.False(t, ok, "pointing away")

	assert.InDelta(t, 2, floor.SignedDistance(v3(5, 0, 5)), 1e-6)
}

func TestTriangle_Plane(t *testing.T) {
	tri := geometry.Triangle{V0: v3(0, 0, 0), V1: v3(1, 0, 0), V2: v3(0, 1, 0)}

	// (V0-V1)×(V0-V2) = (-1,0,0)×(0,-1,0) = (0,0,1).
	assert.Equal(t, v3(0, 0, 1), tri.Normal())

	lifted := geometry.Triangle{V0: v3(0, 0, 3), V1: v3(1, 0, 3), V2: v3(0, 1, 3)}
	pl := lifted.Plane()
	assert.Equal(t, v3(0, 0, 1), pl.Normal)
	assert.InDelta(t, 3, pl.Distance, 1e-6)
	assert.InDelta(t, 0.5, lifted.Area(), 1e-6)
}

func TestTriangle_Barycentric(t *testing.T) {
	tri := geometry.Triangle{V0: v3(0, 0, 0), V1: v3(2, 0, 0), V2: v3(0, 2, 0)}

	tests := []struct {
		name string
		p    vector.Vec3
		want vector.Vec3
	}{
		{"V0", tri.V0, v3(1, 0, 0)},
		{"V1", tri.V1, v3(0, 1, 0)},
		{"V2", tri.V2, v3(0, 0, 1)},
		{"edge midpoint", v3(1, 1, 0), v3(0, 0.5, 0.5)},
		{"inside", v3(0.5, 0.5, 0), v3(0.5, 0.25, 0.25)},
		{"outside", v3(2, 2, 0), v3(-1, 1, 1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tri.Barycentric(tc.p)
			assert.True(t, tc.want.Equal(got), "got %v", got)
		})
	}
}

func TestTriangle_Contains(t *testing.T) {
	tri := geometry.Triangle{V0: v3(0, 0, 0), V1: v3(2, 0, 0), V2: v3(0, 2, 0)}

	assert.True(t, tri.Contains(v3(0.5, 0.5, 0)))
	assert.True(t, tri.Contains(v3(1, 1, 0)), "edge")
	assert.True(t, tri.Contains(tri.V2), "vertex")
	assert.False(t, tri.Contains(v3(2, 2, 0)), "outside in plane")
	assert.False(t, tri.Contains(v3(0.5, 0.5, 1)), "off plane")
}

func TestInterpolate(t *testing.T) {
	tri := geometry.Triangle{V0: v3(0, 0, 0), V1: v3(2, 0, 0), V2: v3(0, 2, 0)}
	w := tri.Barycentric(v3(1, 1, 0))

	uv := geometry.Interpolate(w, vector.New2[float32](0, 0), vector.New2[float32](1, 0), vector.New2[float32](0, 1))
	assert.True(t, vector.New2[float32](0.5, 0.5).Equal(uv), "got %v", uv)

	// Interpolating the vertices reproduces the point.
	p := v3(0.3, 0.9, 0)
	assert.True(t, p.Equal(geometry.Interpolate(tri.Barycentric(p), tri.V0, tri.V1, tri.V2)))
}

func TestRayTriangle(t *testing.T) {
	tri := geometry.Triangle{V0: v3(-1, -1, 5), V1: v3(1, -1, 5), V2: v3(0, 1, 5)}

	d, ok := geometry.RayTriangle(geometry.NewRay(v3(0, 0, 0), v3(0, 0, 1)), tri)
	require.True(t, ok)
	assert.InDelta(t, 5, d, 1e-5)

	_, ok = geometry.RayTriangle(geometry.NewRay(v3(3, 0, 0), v3(0, 0, 1)), tri)
	assert.False(t, ok, "passes beside")
	_, ok = geometry.RayTriangle(geometry.NewRay(v3(0, 0, 6), v3(0, 0, 1)), tri)
	assert.False(t, ok, "behind")
}

func TestRayTriangle_Distant(t *testing.T) {
	r := geometry.NewRay(v3(0, 0, 0), v3(0.1, 0.2, 1))
	for _, z := range []float32{5, 50, 500, 5000} {
		tri := geometry.Triangle{V0: v3(-z, -z, z), V1: v3(z, -z, z), V2: v3(0, z, z)}

		d, ok := geometry.RayTriangle(r, tri)
		require.True(t, ok, "z=%v", z)
		assert.InDelta(t, z*vector.Length(v3(0.1, 0.2, 1)), d, float64(z)*1e-5, "z=%v", z)
		assert.True(t, tri.Contains(r.At(d)), "z=%v: hit point on triangle", z)
	}
}
