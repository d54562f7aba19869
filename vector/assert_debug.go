// SPDX-License-Identifier: MIT

//go:build straaljager_debug

package vector

// debugAsserts enables precondition checks on hot paths.
const debugAsserts = true
