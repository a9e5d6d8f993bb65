// SPDX-License-Identifier: MIT

package geometry

import "errors"

// Sentinel errors for precondition violations. They signal caller contract
// breaches, not domain problems; domain problems are validation findings.
// Returned wrapped with the offending value; match with errors.Is.
var (
	// ErrInvalidRadius indicates a radius that is not strictly positive.
	ErrInvalidRadius = errors.New("geometry: radius must be positive")

	// ErrInvalidSectorCount indicates a sector (or cut-out) count below 1
	// or above MaxLayoutCount.
	ErrInvalidSectorCount = errors.New("geometry: sector count out of range")

	// ErrInvalidDepth indicates a non-positive mesh depth.
	ErrInvalidDepth = errors.New("geometry: depth must be positive")

	// ErrInvalidSegments indicates too few radial or angular mesh segments.
	ErrInvalidSegments = errors.New("geometry: invalid mesh segmentation")
)
