// SPDX-License-Identifier: MIT
// Package: dense
//
// Purpose:
//   - Element-wise and broadcast kernels: Hadamard product, per-row and
//     per-column scaling, clipping, NaN/Inf replacement and AllClose.
//
// Determinism & Performance:
//   - Flat 0..n-1 or i→j loops over the row-major buffer.
//   - One output allocation per call; O(r*c) time and space.

package dense

import (
	"math"

	"github.com/katalvlaran/straaljager/scalar"
)

const (
	opHadamard         = "Hadamard"
	opScaleRows        = "ScaleRows"
	opScaleCols        = "ScaleCols"
	opClip             = "Clip"
	opReplaceNonFinite = "ReplaceNonFinite"
	opAllClose         = "AllClose"
)

// Hadamard returns the element-wise product a ∘ b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func Hadamard[T scalar.Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	out := newLike(a, a.r, a.c)
	for k := range out.data {
		out.data[k] = a.data[k] * b.data[k]
	}

	return out, nil
}

// ScaleRows computes out[i,j] = m[i,j] * scale[i], i.e. diag(scale)·m.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(scale) != m.Rows()).
func ScaleRows[T scalar.Number](m *Dense[T], scale []T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	if len(scale) != m.r {
		return nil, matrixErrorf(opScaleRows, ErrDimensionMismatch)
	}
	out := newLike(m, m.r, m.c)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			out.data[base+j] = m.data[base+j] * scale[i]
		}
	}

	return out, nil
}

// ScaleCols computes out[i,j] = m[i,j] * scale[j], i.e. m·diag(scale).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(scale) != m.Cols()).
func ScaleCols[T scalar.Number](m *Dense[T], scale []T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	if len(scale) != m.c {
		return nil, matrixErrorf(opScaleCols, ErrDimensionMismatch)
	}
	out := newLike(m, m.r, m.c)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			out.data[base+j] = m.data[base+j] * scale[j]
		}
	}

	return out, nil
}

// Clip copies m clamping each entry into [lo, hi]. Swapped bounds are
// reordered.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf for a non-finite bound.
func Clip[T scalar.Number](m *Dense[T], lo, hi T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opClip, err)
	}
	if isNonFinite(lo) || isNonFinite(hi) {
		return nil, matrixErrorf(opClip, ErrNaNInf)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	out := newLike(m, m.r, m.c)
	for k, v := range m.data {
		out.data[k] = scalar.Clamp(v, lo, hi)
	}

	return out, nil
}

// ReplaceNonFinite copies m with every NaN or ±Inf entry replaced by val.
// The result keeps the options of m; replacing with a non-finite val is
// allowed only when m does not validate NaN/Inf.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf for a non-finite val under the default policy.
func ReplaceNonFinite[T scalar.Float](m *Dense[T], val T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReplaceNonFinite, err)
	}
	if m.opts.validateNaNInf && isNonFinite(val) {
		return nil, matrixErrorf(opReplaceNonFinite, ErrNaNInf)
	}
	out := newLike(m, m.r, m.c)
	for k, v := range m.data {
		if isNonFinite(v) {
			v = val
		}
		out.data[k] = v
	}

	return out, nil
}

// AllClose reports whether |a-b| ≤ atol + rtol·|b| holds for every element.
// Negative tolerances are taken by absolute value.
//
// Errors:
//   - ErrNaNInf (non-finite tolerance), ErrNilMatrix, ErrDimensionMismatch.
func AllClose[T scalar.Number](a, b *Dense[T], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for k := range a.data {
		av, bv := float64(a.data[k]), float64(b.data[k])
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}
