// SPDX-License-Identifier: MIT

package validate

import (
	"fmt"

	"github.com/katalvlaran/tokapit/geometry"
	"github.com/katalvlaran/tokapit/pit"
)

// Validate applies the full rule set to p and returns every finding in a
// fixed order: geometry bounds, sectoring, duct rings, ports, stairs,
// plinth, joint overlap, element overlaps. The result is never nil.
//
// Validate is pure: the same p always yields the same findings.
// Complexity: O(R + (P+T)²) for R duct rings, P ports and T stairs.
func Validate(p pit.Params) []Finding {
	out := make([]Finding, 0)

	out = apply(out, boundsRules, "", p, p)
	out = apply(out, sectorRules, "", p, p)
	for i, ring := range p.DuctRings {
		out = apply(out, ductRingRules, fmt.Sprintf("duct_rings[%d]", i), ring, p)
	}
	for i, port := range p.Ports {
		out = apply(out, spanRules, fmt.Sprintf("ports[%d]", i), portSpan(port), p)
	}
	for i, stair := range p.Stairs {
		out = apply(out, spanRules, fmt.Sprintf("stairs[%d]", i), stairSpan(stair), p)
	}
	out = apply(out, plinthRules, "", p, p)
	out = apply(out, jointRules, "", p, p)
	out = append(out, elementOverlaps(p)...)

	return out
}

// placed is a port or stair wedge with its subject label.
type placed struct {
	subject string
	wedge   geometry.Wedge
}

// elementOverlaps reports each overlapping pair of ports and stairs once,
// on the earlier element, in input order (ports before stairs). Elements
// whose wedge cannot be computed are skipped; the span rules already
// report why.
func elementOverlaps(p pit.Params) []Finding {
	elems := make([]placed, 0, len(p.Ports)+len(p.Stairs))
	for i, port := range p.Ports {
		if w, err := geometry.PortWedge(port); err == nil {
			elems = append(elems, placed{subject: fmt.Sprintf("ports[%d]", i), wedge: w})
		}
	}
	for i, stair := range p.Stairs {
		if w, err := geometry.StairWedge(stair); err == nil {
			elems = append(elems, placed{subject: fmt.Sprintf("stairs[%d]", i), wedge: w})
		}
	}

	var out []Finding
	for i := 0; i < len(elems); i++ {
		for j := i + 1; j < len(elems); j++ {
			a, b := elems[i], elems[j]
			if !a.wedge.Overlaps(b.wedge) {
				continue
			}
			out = append(out, Finding{
				Severity: SeverityWarning,
				Rule:     RuleElementOverlap,
				Subject:  a.subject,
				Message: fmt.Sprintf("overlaps %s: [%.2f°, %.2f°] over r [%g, %g] and [%.2f°, %.2f°] over r [%g, %g]",
					b.subject,
					a.wedge.StartAngleDeg(), a.wedge.EndAngleDeg(), a.wedge.StartRadius, a.wedge.EndRadius,
					b.wedge.StartAngleDeg(), b.wedge.EndAngleDeg(), b.wedge.StartRadius, b.wedge.EndRadius),
			})
		}
	}

	return out
}
