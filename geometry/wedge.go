// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tokapit/pit"
)

// Wedge is an annular sector: a centre angle, an angular span and a radial
// interval. It is the common output shape for joints, ports, stairs and
// duct cut-outs.
type Wedge struct {
	AngleDeg    float64 `json:"angle_deg"`    // centre angle
	ThetaDeg    float64 `json:"theta_deg"`    // angular span
	StartRadius float64 `json:"start_radius"` // radial start
	EndRadius   float64 `json:"end_radius"`   // radial end
}

// StartAngleDeg is AngleDeg - ThetaDeg/2, not normalised.
func (w Wedge) StartAngleDeg() float64 {
	start, _ := AngleRange(w.AngleDeg, w.ThetaDeg)

	return start
}

// EndAngleDeg is AngleDeg + ThetaDeg/2, not normalised.
func (w Wedge) EndAngleDeg() float64 {
	_, end := AngleRange(w.AngleDeg, w.ThetaDeg)

	return end
}

// Overlaps reports whether w and o share an area of positive size.
//
// Two wedges overlap iff their radial intervals intersect with positive
// length AND their angular intervals, taken modulo 360, intersect with
// positive length. Wedges that only touch along an edge do not overlap;
// a zero-span wedge never overlaps anything.
// Complexity: O(1).
func (w Wedge) Overlaps(o Wedge) bool {
	wLo, wHi := minMax(w.StartRadius, w.EndRadius)
	oLo, oHi := minMax(o.StartRadius, o.EndRadius)
	if math.Min(wHi, oHi)-math.Max(wLo, oLo) <= 0 {
		return false
	}

	if w.ThetaDeg == 0 || o.ThetaDeg == 0 {
		return false
	}
	halfSum := (math.Abs(w.ThetaDeg) + math.Abs(o.ThetaDeg)) / 2

	return angularDistance(w.AngleDeg, o.AngleDeg) < halfSum
}

// PortWedge places a port. Its tangential width is converted at the
// mid-radius (start+end)/2 and the wedge spans [start_radius, end_radius].
// Returns ErrInvalidRadius when the mid-radius is not positive.
func PortWedge(port pit.Port) (Wedge, error) {
	return spanWedge(port.AngleDeg, port.Width, port.StartRadius, port.EndRadius)
}

// StairWedge places a stair the same way PortWedge places a port,
// using RunWidth as the tangential width.
func StairWedge(stair pit.Stair) (Wedge, error) {
	return spanWedge(stair.AngleDeg, stair.RunWidth, stair.StartRadius, stair.EndRadius)
}

// DuctCutouts returns ring.Count cut-outs evenly spaced around the ring,
// the first centred on 0°. Each spans ring.DuctWidth measured at ring.Radius
// and covers the ring band radius ± width/2.
// Returns ErrInvalidSectorCount when Count is not in [1, MaxLayoutCount]
// and ErrInvalidRadius when Radius ≤ 0.
// Complexity: O(Count).
func DuctCutouts(ring pit.DuctRing) ([]Wedge, error) {
	angles, err := SectorWedges(ring.Count)
	if err != nil {
		return nil, fmt.Errorf("duct cut-out count: %w", err)
	}
	theta, err := TangentialWidthToArcDeg(ring.DuctWidth, ring.Radius)
	if err != nil {
		return nil, fmt.Errorf("duct cut-out width: %w", err)
	}

	start, end := ring.Radius-ring.Width/2, ring.Radius+ring.Width/2
	cutouts := make([]Wedge, len(angles))
	for i, a := range angles {
		cutouts[i] = Wedge{AngleDeg: a, ThetaDeg: theta, StartRadius: start, EndRadius: end}
	}

	return cutouts, nil
}

func spanWedge(angleDeg, width, startRadius, endRadius float64) (Wedge, error) {
	mid := (startRadius + endRadius) / 2
	theta, err := TangentialWidthToArcDeg(width, mid)
	if err != nil {
		return Wedge{}, fmt.Errorf("mid-radius: %w", err)
	}

	return Wedge{
		AngleDeg:    angleDeg,
		ThetaDeg:    theta,
		StartRadius: startRadius,
		EndRadius:   endRadius,
	}, nil
}

func minMax(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}

	return a, b
}
