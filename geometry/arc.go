// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"
	"math"
)

// TangentialWidthToArcDeg converts a tangential width measured at radius
// into an angular span in degrees: theta = width / radius * 180 / π.
//
// Returns 0 for width 0. Returns ErrInvalidRadius when radius ≤ 0 or NaN,
// whatever the width. Negative widths map to negative spans; rejecting them
// is the validator's job.
// Complexity: O(1).
func TangentialWidthToArcDeg(width, radius float64) (float64, error) {
	if !(radius > 0) {
		return 0, fmt.Errorf("%w: got %g", ErrInvalidRadius, radius)
	}
	if width == 0 {
		return 0, nil
	}

	return width / radius * 180 / math.Pi, nil
}

// AngleRange returns the start and end angles of a span centred on centerDeg.
// No normalisation is applied, so start may be negative and end may exceed 360.
func AngleRange(centerDeg, spanDeg float64) (start, end float64) {
	half := spanDeg / 2

	return centerDeg - half, centerDeg + half
}

// NormalizeDeg maps any finite angle into [0, 360).
func NormalizeDeg(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	// math.Mod(-1e-18, 360)+360 rounds to exactly 360.
	if a >= 360 {
		a = 0
	}

	return a
}

// angularDistance is the smallest absolute difference between two
// directions, in [0, 180].
func angularDistance(a, b float64) float64 {
	d := math.Mod(b-a, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}

	return math.Abs(d)
}
