// SPDX-License-Identifier: MIT

// Package geometry turns a pit.Params into angular/radial primitives for
// plan rendering and a coarse triangulated mesh for 3D preview.
//
// What:
//
//   - TangentialWidthToArcDeg is the single width→angle conversion; every
//     wedge below goes through it.
//   - SectorWedges, JointWedges and PitJointWedges lay out the sector
//     boundaries and the construction joints on them.
//   - PortWedge, StairWedge and DuctCutouts place elements as Wedges.
//   - BuildLayout bundles all of the above for a renderer.
//   - CoarseAnnulusMesh triangulates the annular pit wall.
//
// Determinism:
//
//   - Every function is pure: no I/O, no randomness, no shared state.
//     Identical inputs give bit-identical outputs (including mesh vertex
//     order), which makes golden-file tests of the preview possible.
//
// Accuracy:
//
//   - Tangential widths are treated as arc lengths at a single radius (the
//     element's mid-radius). The angular span of a real straight-sided
//     opening varies with radius; this preview-grade approximation is
//     accepted and nothing here aims at CAD precision.
//
// Best effort:
//
//   - Geometry does not depend on validation. BuildLayout produces whatever
//     it can for invalid parameters and only refuses inputs that break the
//     math itself (non-positive radius, sector count < 1) or would not fit
//     in memory (a count above MaxLayoutCount).
//
// Errors:
//
//   - ErrInvalidRadius: a radius used as a divisor or as a mesh bound is ≤ 0.
//   - ErrInvalidSectorCount: a sector or cut-out count is < 1 or above
//     MaxLayoutCount.
//   - ErrInvalidDepth: mesh depth is ≤ 0.
//   - ErrInvalidSegments: mesh banding or angular resolution is too small.
package geometry
