// SPDX-License-Identifier: MIT

// Package dense: functional configuration of the numeric policy carried by a
// Dense matrix. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves them.
//
// Notes:
//   - The policy is captured when a matrix is created and travels with it:
//     Clone and every kernel result inherit the policy of their first operand.
//   - eps drives Equal and the singularity test of Inverse.
//   - validateNaNInf makes Set and the constructors reject NaN/±Inf; it has no
//     effect on integer element types.
package dense

import (
	"math"

	"github.com/katalvlaran/straaljager/scalar"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance used by Equal and Inverse.
	// It matches the fixed-size packages so both report the same results.
	DefaultEpsilon = scalar.Epsilon

	// DefaultValidateNaNInf toggles finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

const panicEpsilonInvalid = "dense: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithEpsilon sets the tolerance used by Equal and by the singularity test
// of Inverse.
//
// Panics when eps is negative, NaN or ±Inf.
//
// Notes:
//   - eps is both the absolute bound near zero and the relative bound
//     elsewhere, as in scalar.ApproxEqEps.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation, letting Set store
// NaN and ±Inf.
//
// AI-Hints:
//   - Useful when a result of Inverse on a near-singular matrix must be
//     copied around without tripping the policy.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewOptions resolves option setters against the documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon returns the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether finite-value validation is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// gatherOptions applies user setters on top of the defaults, in order
// (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
