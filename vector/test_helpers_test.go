// SPDX-License-Identifier: MIT

package vector_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/straaljager/scalar"
	"github.com/katalvlaran/straaljager/vector"
	"github.com/stretchr/testify/require"
)

// requirePanicsIs runs f and requires it to panic with an error matching target.
func requirePanicsIs(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, target), "panic %v does not wrap %v", err, target)
	}()
	f()
}

// requireVecEqual compares two vectors with the package's approximate equality.
// Extra msgAndArgs are appended to the failure message.
func requireVecEqual[T scalar.Number, S vector.Size](t *testing.T, want, got vector.Vector[T, S], msgAndArgs ...any) {
	t.Helper()
	if !want.Equal(got) {
		require.Fail(t, fmt.Sprintf("want %v, got %v", want, got), msgAndArgs...)
	}
}

// requireApprox compares two scalars with scalar.ApproxEq.
func requireApprox[T scalar.Number](t *testing.T, want, got T) {
	t.Helper()
	require.True(t, scalar.ApproxEq(want, got), "want %v, got %v", want, got)
}

// seededVec3s is a deterministic spread of float32 3-vectors used by
// property-style tests.
var seededVec3s = []vector.Vec3{
	vector.New3[float32](1, 2, 3),
	vector.New3[float32](-4, 0.5, 9),
	vector.New3[float32](0.25, -7, 2),
	vector.New3[float32](10, -5, 12.5),
	vector.New3[float32](-0.1, 0.2, -0.3),
	vector.New3[float32](3, 3, 3),
}
