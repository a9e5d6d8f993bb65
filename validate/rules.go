// SPDX-License-Identifier: MIT

package validate

import (
	"fmt"

	"github.com/katalvlaran/tokapit/geometry"
	"github.com/katalvlaran/tokapit/pit"
)

// Rule identifiers. They are stable and may be matched by callers.
const (
	RuleInnerRadiusPositive       = "inner-radius-positive"
	RuleOuterRadiusClearsWall     = "outer-radius-clears-wall"
	RulePitDepthPositive          = "pit-depth-positive"
	RuleOuterRadiusMax            = "outer-radius-max"
	RuleFloorThicknessPositive    = "floor-thickness-positive"
	RuleWallThicknessPositive     = "wall-thickness-positive"
	RuleSectorCountRange          = "sector-count-range"
	RuleSectorJointsWidthPositive = "sector-joints-width-positive"
	RuleDuctRingInnerClearance    = "duct-ring-inner-clearance"
	RuleDuctRingOuterClearance    = "duct-ring-outer-clearance"
	RuleDuctRingCount             = "duct-ring-count"
	RuleDuctRingDuctWidth         = "duct-ring-duct-width"
	RuleDuctRingElevation         = "duct-ring-elevation"
	RuleDuctRingCutoutsFit        = "duct-ring-cutouts-fit"
	RuleSpanInnerBound            = "span-inner-bound"
	RuleSpanOuterBound            = "span-outer-bound"
	RuleSpanRadialOrder           = "span-radial-order"
	RuleSpanWidth                 = "span-width"
	RulePlinthPlacement           = "plinth-placement"
	RuleJointsOverlap             = "joints-overlap"
	RuleElementOverlap            = "element-overlap"
)

// rule is one row of a rule table: a pass predicate over a value of type T
// (the whole parameter set, or one element of a collection) and the message
// emitted when it does not hold. Predicates state the PASS condition so that
// NaN inputs fail.
type rule[T any] struct {
	id       string
	severity Severity
	field    string // subject for parameter-level rules
	pass     func(v T, p pit.Params) bool
	message  func(v T, p pit.Params) string
}

// apply evaluates every rule against v and appends one finding per failure.
// An empty subject falls back to the rule's field.
func apply[T any](out []Finding, rules []rule[T], subject string, v T, p pit.Params) []Finding {
	for _, r := range rules {
		if r.pass(v, p) {
			continue
		}
		s := subject
		if s == "" {
			s = r.field
		}
		out = append(out, Finding{
			Severity: r.severity,
			Rule:     r.id,
			Subject:  s,
			Message:  r.message(v, p),
		})
	}

	return out
}

// boundsRules cover the annulus itself.
var boundsRules = []rule[pit.Params]{
	{
		id: RuleInnerRadiusPositive, severity: SeverityError, field: "inner_radius",
		pass: func(_ pit.Params, p pit.Params) bool { return p.InnerRadius > 0 },
		message: func(_ pit.Params, p pit.Params) string {
			return fmt.Sprintf("inner_radius %g must be greater than 0", p.InnerRadius)
		},
	},
	{
		id: RuleOuterRadiusClearsWall, severity: SeverityError, field: "outer_radius",
		pass: func(_ pit.Params, p pit.Params) bool { return p.OuterRadius > p.InnerRadius+p.WallThickness },
		message: func(_ pit.Params, p pit.Params) string {
			return fmt.Sprintf("outer_radius %g must exceed inner_radius + wall_thickness = %g",
				p.OuterRadius, p.InnerRadius+p.WallThickness)
		},
	},
	{
		id: RulePitDepthPositive, severity: SeverityError, field: "pit_depth",
		pass: func(_ pit.Params, p pit.Params) bool { return p.PitDepth > 0 },
		message: func(_ pit.Params, p pit.Params) string {
			return fmt.Sprintf("pit_depth %g must be greater than 0", p.PitDepth)
		},
	},
	{
		id: RuleOuterRadiusMax, severity: SeverityError, field: "outer_radius",
		pass: func(_ pit.Params, p pit.Params) bool { return p.OuterRadius <= pit.MaxRadius },
		message: func(_ pit.Params, p pit.Params) string {
			return fmt.Sprintf("outer_radius %g must not exceed %g", p.OuterRadius, pit.MaxRadius)
		},
	},
	{
		id: RuleFloorThicknessPositive, severity: SeverityError, field: "floor_thickness",
		pass: func(_ pit.Params, p pit.Params) bool { return p.FloorThickness > 0 },
		message: func(_ pit.Params, p pit.Params) string {
			return fmt.Sprintf("floor_thickness %g must be greater than 0", p.FloorThickness)
		},
	},
	{
		id: RuleWallThicknessPositive, severity: SeverityError, field: "wall_thickness",
		pass: func(_ pit.Params, p pit.Params) bool { return p.WallThickness > 0 },
		message: func(_ pit.Params, p pit.Params) string {
			return fmt.Sprintf("wall_thickness %g must be greater than 0", p.WallThickness)
		},
	},
}

// sectorRules cover the sector division.
var sectorRules = []rule[pit.Params]{
	{
		id: RuleSectorCountRange, severity: SeverityError, field: "sector_count",
		pass: func(_ pit.Params, p pit.Params) bool {
			return p.SectorCount >= pit.MinSectorCount && p.SectorCount <= pit.MaxSectorCount
		},
		message: func(_ pit.Params, p pit.Params) string {
			return fmt.Sprintf("sector_count %d must be in [%d, %d]", p.SectorCount, pit.MinSectorCount, pit.MaxSectorCount)
		},
	},
	{
		id: RuleSectorJointsWidthPositive, severity: SeverityError, field: "sector_joints_width",
		pass: func(_ pit.Params, p pit.Params) bool { return p.SectorJointsWidth > 0 },
		message: func(_ pit.Params, p pit.Params) string {
			return fmt.Sprintf("sector_joints_width %g must be greater than 0", p.SectorJointsWidth)
		},
	},
}

var ductRingRules = []rule[pit.DuctRing]{
	{
		id: RuleDuctRingInnerClearance, severity: SeverityError,
		pass: func(r pit.DuctRing, p pit.Params) bool { return r.Radius-r.Width/2 >= p.InnerRadius },
		message: func(r pit.DuctRing, p pit.Params) string {
			return fmt.Sprintf("inner edge %g (radius - width/2) must be >= inner_radius %g", r.Radius-r.Width/2, p.InnerRadius)
		},
	},
	{
		id: RuleDuctRingOuterClearance, severity: SeverityError,
		pass: func(r pit.DuctRing, p pit.Params) bool { return r.Radius+r.Width/2 <= p.WallInnerRadius() },
		message: func(r pit.DuctRing, p pit.Params) string {
			return fmt.Sprintf("outer edge %g (radius + width/2) must be <= outer_radius - wall_thickness = %g",
				r.Radius+r.Width/2, p.WallInnerRadius())
		},
	},
	{
		id: RuleDuctRingCount, severity: SeverityError,
		pass: func(r pit.DuctRing, _ pit.Params) bool { return r.Count >= 1 },
		message: func(r pit.DuctRing, _ pit.Params) string {
			return fmt.Sprintf("count %d must be at least 1", r.Count)
		},
	},
	{
		id: RuleDuctRingDuctWidth, severity: SeverityError,
		pass: func(r pit.DuctRing, _ pit.Params) bool { return r.DuctWidth > 0 },
		message: func(r pit.DuctRing, _ pit.Params) string {
			return fmt.Sprintf("duct_width %g must be greater than 0", r.DuctWidth)
		},
	},
	{
		id: RuleDuctRingElevation, severity: SeverityWarning,
		pass: func(r pit.DuctRing, p pit.Params) bool { return r.Elevation >= 0 && r.Elevation <= p.PitDepth },
		message: func(r pit.DuctRing, p pit.Params) string {
			return fmt.Sprintf("elevation %g should lie within [0, pit_depth %g]", r.Elevation, p.PitDepth)
		},
	},
	{
		id: RuleDuctRingCutoutsFit, severity: SeverityWarning,
		pass: func(r pit.DuctRing, _ pit.Params) bool {
			need, ok := cutoutDemand(r)
			return !ok || need <= 360
		},
		message: func(r pit.DuctRing, _ pit.Params) string {
			need, _ := cutoutDemand(r)
			return fmt.Sprintf("%d cut-outs of duct_width %g need %.2f° at radius %g, more than 360°", r.Count, r.DuctWidth, need, r.Radius)
		},
	},
}

// cutoutDemand is the total angle taken by a ring's cut-outs. ok is false
// when the ring is too broken for the figure to mean anything; other rules
// report that.
func cutoutDemand(r pit.DuctRing) (need float64, ok bool) {
	if r.Count < 1 || !(r.DuctWidth > 0) {
		return 0, false
	}
	theta, err := geometry.TangentialWidthToArcDeg(r.DuctWidth, r.Radius)
	if err != nil {
		return 0, false
	}

	return float64(r.Count) * theta, true
}

// span is the radial element shape shared by ports and stairs.
type span struct {
	widthField string
	angleDeg   float64
	width      float64
	start, end float64
}

func portSpan(p pit.Port) span {
	return span{widthField: "width", angleDeg: p.AngleDeg, width: p.Width, start: p.StartRadius, end: p.EndRadius}
}

func stairSpan(s pit.Stair) span {
	return span{widthField: "run_width", angleDeg: s.AngleDeg, width: s.RunWidth, start: s.StartRadius, end: s.EndRadius}
}

var spanRules = []rule[span]{
	{
		id: RuleSpanInnerBound, severity: SeverityError,
		pass: func(s span, p pit.Params) bool { return s.start >= p.InnerRadius },
		message: func(s span, p pit.Params) string {
			return fmt.Sprintf("start_radius %g must be >= inner_radius %g", s.start, p.InnerRadius)
		},
	},
	{
		id: RuleSpanOuterBound, severity: SeverityError,
		pass: func(s span, p pit.Params) bool { return s.end <= p.OuterRadius },
		message: func(s span, p pit.Params) string {
			return fmt.Sprintf("end_radius %g must be <= outer_radius %g", s.end, p.OuterRadius)
		},
	},
	{
		id: RuleSpanRadialOrder, severity: SeverityError,
		pass: func(s span, _ pit.Params) bool { return s.start < s.end },
		message: func(s span, _ pit.Params) string {
			return fmt.Sprintf("start_radius %g must be < end_radius %g", s.start, s.end)
		},
	},
	{
		id: RuleSpanWidth, severity: SeverityError,
		pass: func(s span, _ pit.Params) bool { return s.width > 0 },
		message: func(s span, _ pit.Params) string {
			return fmt.Sprintf("%s %g must be greater than 0", s.widthField, s.width)
		},
	},
}

var plinthRules = []rule[pit.Params]{
	{
		id: RulePlinthPlacement, severity: SeverityWarning, field: "cryostat_plinth_radius",
		pass: func(_ pit.Params, p pit.Params) bool {
			return p.InnerRadius < p.CryostatPlinthRadius && p.CryostatPlinthRadius <= p.WallInnerRadius()
		},
		message: func(_ pit.Params, p pit.Params) string {
			return fmt.Sprintf("cryostat_plinth_radius %g should satisfy inner_radius %g < r <= outer_radius - wall_thickness = %g",
				p.CryostatPlinthRadius, p.InnerRadius, p.WallInnerRadius())
		},
	},
}

var jointRules = []rule[pit.Params]{
	{
		id: RuleJointsOverlap, severity: SeverityWarning, field: "sector_joints_width",
		pass: func(_ pit.Params, p pit.Params) bool {
			theta, pitch, ok := jointSpan(p)
			return !ok || theta < pitch
		},
		message: func(_ pit.Params, p pit.Params) string {
			theta, pitch, _ := jointSpan(p)
			return fmt.Sprintf("joint span %.3f° at outer_radius %g is not narrower than the sector pitch %.3f°; joints overlap",
				theta, p.OuterRadius, pitch)
		},
	},
}

// jointSpan returns the joint angular span and the sector pitch, both in
// degrees. Every joint has the same span, so only one is computed and the
// cost does not depend on sector_count.
func jointSpan(p pit.Params) (theta, pitch float64, ok bool) {
	if p.SectorCount < 1 {
		return 0, 0, false
	}
	theta, err := geometry.TangentialWidthToArcDeg(p.SectorJointsWidth, p.OuterRadius)
	if err != nil {
		return 0, 0, false
	}

	return theta, 360 / float64(p.SectorCount), true
}
