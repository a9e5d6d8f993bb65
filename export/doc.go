// SPDX-License-Identifier: MIT

// Package export renders a pit layout for downstream tools: an SVG plan,
// a printable PDF plan sheet, an XLSX element schedule and a Wavefront OBJ
// of the preview mesh.
//
// Coordinates written to SVG and OBJ are absolute model coordinates in
// metres, with the pit axis at the origin and angles counter-clockwise from
// +X. No transform is applied, so every path can be traced back to the
// Wedge and radius values computed by the geometry package. SVG's y axis
// points down, so viewers show the plan mirrored top-to-bottom.
//
// The package draws whatever it is given. Refusing to export a layout with
// blocking findings (validate.HasErrors) is the caller's decision.
package export
