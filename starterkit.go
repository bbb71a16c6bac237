// Package starterkit is the starter template for new modules. Copy this file,
// rename the package, and keep the section layout and comment conventions:
// a package doc comment up top, constants and public API under their own
// section banners, and an inline note on every exported constant.
package starterkit

import "math"

// =============================================================================
// CONSTANTS
// =============================================================================

// ExampleConst is the fixed offset applied by AddConst.
const ExampleConst = 42

// =============================================================================
// PUBLIC API
// =============================================================================

// AddConst returns x plus ExampleConst. Negative inputs are clamped to zero
// first and the sum saturates at math.MaxInt, so the result is always at
// least ExampleConst.
func AddConst(x int) int {
	if x < 0 {
		x = 0
	}
	if x > math.MaxInt-ExampleConst {
		return math.MaxInt
	}
	return x + ExampleConst
}
