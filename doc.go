// Package straaljager is fixed-size, generic linear algebra for the small
// vectors and matrices of graphics and ray tracing.
//
// 🚀 What is in the box?
//
//	• scalar/   element constraints (Number, Float), ApproxEq, Clamp/Mix/SmoothStep
//	• vector/   Vector[T, S] for S ∈ {Two, Three, Four}: arithmetic, Dot, Cross,
//	            Length, Normalized, Reflect, Refract
//	• matrix/   Matrix[T, R, C], column-major: Mul, Transposed, Adjoint,
//	            Determinant, Inverse/TryInverse
//	• dense/    runtime-sized Dense[T] and Vector[T] for anything larger,
//	            returning errors instead of panicking
//	• color/    Color = Vec4 plus image/color conversions
//	• texture/  Constant, Checker and Image samplers
//	• geometry/ Ray, Sphere, Plane, Triangle and their intersections
//
// ✨ Dimensions live in the type system
//
//	Vec3 + Vec2 does not compile, nor does Mat2x3 · Mat2x3. Values are plain
//	arrays: copying is cheap and nothing on the fixed-size paths allocates.
//
// Quick example:
//
//	a := vector.New3[float32](0, 1, 1)
//	b := vector.New3[float32](1, 1, 1)
//	d := a.Sub(b)             // (-1, 0, 0)
//	l := vector.Length(d)     // 1
//	n := vector.Cross(a, b)   // (0, 1, -1)
//
// Build with -tags straaljager_debug to check unit-length preconditions of
// Reflect and Refract at run time.
//
//	go get github.com/katalvlaran/straaljager
package straaljager
