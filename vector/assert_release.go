// SPDX-License-Identifier: MIT

//go:build !straaljager_debug

package vector

const debugAsserts = false
