// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tokapit/pit"
)

// Mesh resolution limits. They bound allocation, not accuracy.
const (
	// MinAngularSegments is the smallest angular resolution that still
	// encloses area.
	MinAngularSegments = 3
	// MaxAngularSegments caps the angular resolution of a preview mesh.
	MaxAngularSegments = 4096
	// MaxRadialSegments caps the vertical banding of a preview mesh.
	MaxRadialSegments = 1024

	// targetAngularSegments is the resolution DefaultAngularSegments aims for.
	targetAngularSegments = 96
)

// Vertex is a point in model space. Z is the height above the pit floor.
type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Face is a triangle given by three vertex indices, wound counter-clockwise
// when seen from outside the wall solid.
type Face [3]int

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Vertices []Vertex `json:"vertices"`
	Faces    []Face   `json:"faces"`
}

// FaceArea returns the area of face i.
func (m Mesh) FaceArea(i int) float64 {
	f := m.Faces[i]
	a, b, c := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
	ux, uy, uz := b.X-a.X, b.Y-a.Y, b.Z-a.Z
	vx, vy, vz := c.X-a.X, c.Y-a.Y, c.Z-a.Z
	cx := uy*vz - uz*vy
	cy := uz*vx - ux*vz
	cz := ux*vy - uy*vx

	return 0.5 * math.Sqrt(cx*cx+cy*cy+cz*cz)
}

// DefaultAngularSegments returns an angular resolution near 96 that is a
// multiple of sectorCount, so every sector boundary falls on a mesh edge.
func DefaultAngularSegments(sectorCount int) int {
	if sectorCount < 1 {
		return targetAngularSegments
	}
	per := (targetAngularSegments + sectorCount - 1) / sectorCount
	n := per * sectorCount
	if n < MinAngularSegments {
		n = MinAngularSegments * sectorCount
	}

	return n
}

// CoarseAnnulusMesh triangulates the closed annular pit wall: the inner and
// outer cylindrical faces, the rim at z = depth and the floor ring at z = 0.
//
// Vertex layout is fixed: ring (inner, outer) → band k in [0, radialSegments]
// → angular step j in [0, angularSegments), at angle j·360/angularSegments
// from the reference axis. Faces follow in the order inner wall, outer wall,
// rim, floor. angularSegments ≥ sectorCount (ideally a multiple of it) keeps
// sector lines on mesh edges but is not required.
//
// Preconditions: 0 < inner < outer, depth > 0, sectorCount ≥ 1,
// 1 ≤ radialSegments ≤ MaxRadialSegments,
// MinAngularSegments ≤ angularSegments ≤ MaxAngularSegments; all values finite.
// Complexity: O(radialSegments × angularSegments) time and memory.
func CoarseAnnulusMesh(inner, outer, depth float64, sectorCount, radialSegments, angularSegments int) (Mesh, error) {
	switch {
	case !(inner > 0) || math.IsInf(inner, 0):
		return Mesh{}, fmt.Errorf("%w: inner radius %g", ErrInvalidRadius, inner)
	case !(outer > inner) || math.IsInf(outer, 0):
		return Mesh{}, fmt.Errorf("%w: outer radius %g must exceed inner radius %g", ErrInvalidRadius, outer, inner)
	case !(depth > 0) || math.IsInf(depth, 0):
		return Mesh{}, fmt.Errorf("%w: got %g", ErrInvalidDepth, depth)
	case sectorCount < 1:
		return Mesh{}, fmt.Errorf("%w: got %d", ErrInvalidSectorCount, sectorCount)
	case radialSegments < 1 || radialSegments > MaxRadialSegments:
		return Mesh{}, fmt.Errorf("%w: radial segments %d not in [1, %d]", ErrInvalidSegments, radialSegments, MaxRadialSegments)
	case angularSegments < MinAngularSegments || angularSegments > MaxAngularSegments:
		return Mesh{}, fmt.Errorf("%w: angular segments %d not in [%d, %d]",
			ErrInvalidSegments, angularSegments, MinAngularSegments, MaxAngularSegments)
	}

	n, bands := angularSegments, radialSegments+1

	// Angular table computed once so both rings share identical directions.
	cos := make([]float64, n)
	sin := make([]float64, n)
	for j := 0; j < n; j++ {
		theta := 2 * math.Pi * float64(j) / float64(n)
		cos[j], sin[j] = math.Cos(theta), math.Sin(theta)
	}

	m := Mesh{
		Vertices: make([]Vertex, 0, 2*bands*n),
		Faces:    make([]Face, 0, 4*n*bands),
	}
	for _, r := range [2]float64{inner, outer} {
		for k := 0; k < bands; k++ {
			z := depth * float64(k) / float64(radialSegments)
			for j := 0; j < n; j++ {
				m.Vertices = append(m.Vertices, Vertex{X: r * cos[j], Y: r * sin[j], Z: z})
			}
		}
	}

	idx := func(ring, k, j int) int {
		return (ring*bands+k)*n + j%n
	}

	// Walls: quad (a, b, c, d) = (k,j) (k,j+1) (k+1,j+1) (k+1,j).
	for ring := 0; ring < 2; ring++ {
		for k := 0; k < radialSegments; k++ {
			for j := 0; j < n; j++ {
				a, b := idx(ring, k, j), idx(ring, k, j+1)
				c, d := idx(ring, k+1, j+1), idx(ring, k+1, j)
				if ring == 0 { // inner wall faces the axis
					m.Faces = append(m.Faces, Face{a, c, b}, Face{a, d, c})
				} else {
					m.Faces = append(m.Faces, Face{a, b, c}, Face{a, c, d})
				}
			}
		}
	}

	// Rim (k = radialSegments, facing up) and floor (k = 0, facing down).
	top := radialSegments
	for j := 0; j < n; j++ {
		i0, i1 := idx(0, top, j), idx(0, top, j+1)
		o0, o1 := idx(1, top, j), idx(1, top, j+1)
		m.Faces = append(m.Faces, Face{i0, o0, o1}, Face{i0, o1, i1})
	}
	for j := 0; j < n; j++ {
		i0, i1 := idx(0, 0, j), idx(0, 0, j+1)
		o0, o1 := idx(1, 0, j), idx(1, 0, j+1)
		m.Faces = append(m.Faces, Face{i0, o1, o0}, Face{i0, i1, o1})
	}

	return m, nil
}

// PitMesh is CoarseAnnulusMesh for p. A non-positive angularSegments selects
// DefaultAngularSegments(p.SectorCount).
func PitMesh(p pit.Params, radialSegments, angularSegments int) (Mesh, error) {
	if angularSegments <= 0 {
		angularSegments = DefaultAngularSegments(p.SectorCount)
	}

	return CoarseAnnulusMesh(p.InnerRadius, p.OuterRadius, p.PitDepth, p.SectorCount, radialSegments, angularSegments)
}
