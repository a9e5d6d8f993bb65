// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"

	"github.com/katalvlaran/tokapit/pit"
)

// MaxLayoutCount caps the number of sectors, joints or cut-outs in one
// ring that a layout will materialize. It bounds allocation; real pits use
// a few dozen.
const MaxLayoutCount = 4096

// SectorWedges returns the sectorCount boundary angles in degrees,
// i * 360/sectorCount for i in [0, sectorCount). The first angle is 0 and
// the sequence is strictly increasing.
// Returns ErrInvalidSectorCount when sectorCount is not in [1, MaxLayoutCount].
// Complexity: O(n).
func SectorWedges(sectorCount int) ([]float64, error) {
	if err := checkCount(sectorCount); err != nil {
		return nil, err
	}

	step := 360.0 / float64(sectorCount)
	angles := make([]float64, sectorCount)
	for i := range angles {
		angles[i] = float64(i) * step
	}

	return angles, nil
}

func checkCount(n int) error {
	if n < 1 || n > MaxLayoutCount {
		return fmt.Errorf("%w: got %d, want [1, %d]", ErrInvalidSectorCount, n, MaxLayoutCount)
	}

	return nil
}

// JointWedges returns one joint Wedge per sector boundary, centred on the
// boundary, with an angular span equal to jointWidth measured at outerRadius.
//
// The radial bounds are left zero; PitJointWedges attaches them. Joints may
// overlap each other for wide joints or few sectors. That is reported by
// validation and never corrected here.
func JointWedges(sectorCount int, jointWidth, outerRadius float64) ([]Wedge, error) {
	angles, err := SectorWedges(sectorCount)
	if err != nil {
		return nil, err
	}
	theta, err := TangentialWidthToArcDeg(jointWidth, outerRadius)
	if err != nil {
		return nil, fmt.Errorf("joint width at outer radius: %w", err)
	}

	joints := make([]Wedge, len(angles))
	for i, a := range angles {
		joints[i] = Wedge{AngleDeg: a, ThetaDeg: theta}
	}

	return joints, nil
}

// PitJointWedges is JointWedges for p with each joint spanning the full
// annulus [inner_radius, outer_radius].
func PitJointWedges(p pit.Params) ([]Wedge, error) {
	joints, err := JointWedges(p.SectorCount, p.SectorJointsWidth, p.OuterRadius)
	if err != nil {
		return nil, err
	}
	for i := range joints {
		joints[i].StartRadius = p.InnerRadius
		joints[i].EndRadius = p.OuterRadius
	}

	return joints, nil
}
