// SPDX-License-Identifier: MIT

// Package validate checks a pit.Params against the layout rule set and
// reports every problem at once as an ordered list of findings.
//
// What:
//
//   - Validate applies all rules in a fixed order: geometry bounds,
//     sectoring, duct rings, ports, stairs, plinth, then overlap advisories.
//   - Every failing rule yields exactly one Finding naming the subject
//     (a field, or an element such as "duct_rings[1]") together with the
//     offending value and the violated bound.
//   - Elements of a collection are checked independently; one bad duct ring
//     never hides a problem in its siblings.
//
// Severity:
//
//   - SeverityError findings block export. HasErrors is the export gate.
//   - SeverityWarning findings are advisory and never block anything.
//     Summarize gives the counts a UI badge needs.
//
// Overlaps:
//
//   - Port and stair overlaps are advisory. They are computed on the wedges
//     produced by the geometry package: two elements overlap iff their
//     radial intervals and their angular intervals (mod 360) both intersect
//     with positive length (see geometry.Wedge.Overlaps).
//
// Validate never panics and never returns an error: the input is data,
// and bad data is a finding.
package validate
