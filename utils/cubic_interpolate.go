// SPDX-License-Identifier: EPL-2.0

package utils

// CubicInterpolate evaluates the Catmull-Rom spline through four
// consecutive samples at fractional position x (0 <= x <= 1) between y1
// and y2. At x = 0 it returns y1 exactly and at x = 1 it returns y2.
func CubicInterpolate[S Sample](y0, y1, y2, y3, x S) S {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2

	return ((a0*x+a1)*x+a2)*x + y1
}
