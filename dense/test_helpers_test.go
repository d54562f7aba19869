// SPDX-License-Identifier: MIT
// Package dense_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for kernels.
//   - Keep all data finite so the numeric policy never interferes.

package dense_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/straaljager/dense"
	"github.com/katalvlaran/straaljager/scalar"
)

// MustDense allocates an r×c zero matrix or fails the test.
func MustDense[T scalar.Number](tb testing.TB, r, c int, opts ...dense.Option) *dense.Dense[T] {
	tb.Helper()
	m, err := dense.NewDense[T](r, c, opts...)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRows builds a matrix from literal rows or fails the test.
func MustRows[T scalar.Number](tb testing.TB, rows [][]T, opts ...dense.Option) *dense.Dense[T] {
	tb.Helper()
	m, err := dense.FromRows(rows, opts...)
	if err != nil {
		tb.Fatalf("FromRows(%v): %v", rows, err)
	}

	return m
}

// MustVector builds a vector or fails the test.
func MustVector[T scalar.Number](tb testing.TB, e ...T) *dense.Vector[T] {
	tb.Helper()
	v, err := dense.NewVector(e...)
	if err != nil {
		tb.Fatalf("NewVector(%v): %v", e, err)
	}

	return v
}

// MustAt reads (i, j) or fails the test.
func MustAt[T scalar.Number](tb testing.TB, m *dense.Dense[T], i, j int) T {
	tb.Helper()
	v, err := m.At(i, j)
	if err != nil {
		tb.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandFilledDense returns an r×c float64 matrix with entries drawn uniformly
// from [-1, 1) by a seeded source, so runs are reproducible.
func RandFilledDense(tb testing.TB, r, c int, seed int64) *dense.Dense[float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for k := range data {
		data[k] = rng.Float64()*2 - 1
	}
	m, err := dense.FromFlat(r, c, data)
	if err != nil {
		tb.Fatalf("FromFlat(%d,%d): %v", r, c, err)
	}

	return m
}

// diagDominant returns a random n×n matrix with a boosted diagonal, which is
// always invertible.
func diagDominant(tb testing.TB, n int, seed int64) *dense.Dense[float64] {
	tb.Helper()
	m := RandFilledDense(tb, n, n, seed)
	for i := 0; i < n; i++ {
		v := MustAt(tb, m, i, i)
		if err := m.Set(i, i, v+float64(2*n)); err != nil {
			tb.Fatalf("Set(%d,%d): %v", i, i, err)
		}
	}

	return m
}
