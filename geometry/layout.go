// SPDX-License-Identifier: MIT

package geometry

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tokapit/pit"
)

// Band is the radial extent of a duct ring at its elevation.
type Band struct {
	StartRadius float64 `json:"start_radius"`
	EndRadius   float64 `json:"end_radius"`
	Elevation   float64 `json:"elevation"`
}

// Layout is every plan primitive derived from one pit.Params, in input order.
// Ports, Stairs, DuctBands and DuctCutouts are index-aligned with the
// corresponding pit.Params collections.
type Layout struct {
	Sectors     []float64 `json:"sectors"`
	Joints      []Wedge   `json:"joints"`
	Ports       []Wedge   `json:"ports"`
	Stairs      []Wedge   `json:"stairs"`
	DuctBands   []Band    `json:"duct_bands"`
	DuctCutouts [][]Wedge `json:"duct_cutouts"`
}

// CheckLayoutCounts reports, as ErrInvalidSectorCount, a sector_count or a
// duct ring count above MaxLayoutCount. Callers that must not produce a
// partial layout for such input check it before BuildLayout.
func CheckLayoutCounts(p pit.Params) error {
	if p.SectorCount > MaxLayoutCount {
		return fmt.Errorf("sector_count: %w", checkCount(p.SectorCount))
	}
	for i, ring := range p.DuctRings {
		if ring.Count > MaxLayoutCount {
			return fmt.Errorf("duct_rings[%d].count: %w", i, checkCount(ring.Count))
		}
	}

	return nil
}

// BuildLayout derives the plan geometry of p on a best-effort basis.
//
// Pieces that cannot be computed are left out (sectors, joints, a ring's
// cut-outs) or replaced by a zero-span wedge on the element's own radii
// (ports, stairs), so indices stay aligned with the input. Every such
// failure is reported in the returned error, joined with errors.Join; the
// Layout is usable either way.
// Complexity: O(S + P + T + ΣCount).
func BuildLayout(p pit.Params) (Layout, error) {
	var (
		l    Layout
		errs []error
		err  error
	)

	if l.Sectors, err = SectorWedges(p.SectorCount); err != nil {
		errs = append(errs, fmt.Errorf("sectors: %w", err))
	}
	if l.Joints, err = PitJointWedges(p); err != nil {
		errs = append(errs, fmt.Errorf("joints: %w", err))
	}

	l.Ports = make([]Wedge, len(p.Ports))
	for i, port := range p.Ports {
		if l.Ports[i], err = PortWedge(port); err != nil {
			l.Ports[i] = Wedge{AngleDeg: port.AngleDeg, StartRadius: port.StartRadius, EndRadius: port.EndRadius}
			errs = append(errs, fmt.Errorf("ports[%d]: %w", i, err))
		}
	}

	l.Stairs = make([]Wedge, len(p.Stairs))
	for i, stair := range p.Stairs {
		if l.Stairs[i], err = StairWedge(stair); err != nil {
			l.Stairs[i] = Wedge{AngleDeg: stair.AngleDeg, StartRadius: stair.StartRadius, EndRadius: stair.EndRadius}
			errs = append(errs, fmt.Errorf("stairs[%d]: %w", i, err))
		}
	}

	l.DuctBands = make([]Band, len(p.DuctRings))
	l.DuctCutouts = make([][]Wedge, len(p.DuctRings))
	for i, ring := range p.DuctRings {
		l.DuctBands[i] = Band{
			StartRadius: ring.Radius - ring.Width/2,
			EndRadius:   ring.Radius + ring.Width/2,
			Elevation:   ring.Elevation,
		}
		if l.DuctCutouts[i], err = DuctCutouts(ring); err != nil {
			errs = append(errs, fmt.Errorf("duct_rings[%d]: %w", i, err))
		}
	}

	return l, errors.Join(errs...)
}
