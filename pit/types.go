// SPDX-License-Identifier: MIT

package pit

// Limits carried by the interactive designer. Validation reports values
// outside them; the geometry engine itself accepts any sector count ≥ 1.
const (
	// MinSectorCount is the smallest supported number of pit sectors.
	MinSectorCount = 6
	// MaxSectorCount is the largest supported number of pit sectors.
	MaxSectorCount = 48
	// MaxRadius is the largest supported outer radius, in metres.
	MaxRadius = 100.0
)

// DuctRing is a circular duct band running around the annulus at a given
// elevation, pierced by Count radial cut-outs of DuctWidth each.
type DuctRing struct {
	Radius    float64 `json:"radius" toml:"radius"`         // centre-line radius
	Width     float64 `json:"width" toml:"width"`           // radial thickness
	Elevation float64 `json:"elevation" toml:"elevation"`   // height above pit floor
	Count     int     `json:"count" toml:"count"`           // number of cut-outs
	DuctWidth float64 `json:"duct_width" toml:"duct_width"` // tangential width of each cut-out
}

// Port is a radial access opening. AngleDeg is measured counter-clockwise
// from the reference axis; Width is the tangential width at mid-radius.
type Port struct {
	AngleDeg    float64 `json:"angle_deg" toml:"angle_deg"`
	Width       float64 `json:"width" toml:"width"`
	StartRadius float64 `json:"start_radius" toml:"start_radius"`
	EndRadius   float64 `json:"end_radius" toml:"end_radius"`
}

// Stair is a radial stair run. RunWidth is its tangential width.
type Stair struct {
	AngleDeg    float64 `json:"angle_deg" toml:"angle_deg"`
	RunWidth    float64 `json:"run_width" toml:"run_width"`
	StartRadius float64 `json:"start_radius" toml:"start_radius"`
	EndRadius   float64 `json:"end_radius" toml:"end_radius"`
}

// Plinth is the full-circle cryostat support at the pit centre.
type Plinth struct {
	Radius float64
	Height float64
}

// Params is the complete parameter set of one pit layout.
//
// The desired invariants (outer_radius > inner_radius + wall_thickness,
// pit_depth > 0, inner_radius > 0) are not enforced here; they are reported
// by the validate package so that every violation can be shown at once.
type Params struct {
	InnerRadius          float64 `json:"inner_radius" toml:"inner_radius"`
	OuterRadius          float64 `json:"outer_radius" toml:"outer_radius"`
	PitDepth             float64 `json:"pit_depth" toml:"pit_depth"`
	FloorThickness       float64 `json:"floor_thickness" toml:"floor_thickness"`
	WallThickness        float64 `json:"wall_thickness" toml:"wall_thickness"`
	SectorCount          int     `json:"sector_count" toml:"sector_count"`
	SectorJointsWidth    float64 `json:"sector_joints_width" toml:"sector_joints_width"`
	CryostatPlinthRadius float64 `json:"cryostat_plinth_radius" toml:"cryostat_plinth_radius"`
	CryostatPlinthHeight float64 `json:"cryostat_plinth_height" toml:"cryostat_plinth_height"`

	DuctRings []DuctRing `json:"duct_rings" toml:"duct_rings"`
	Ports     []Port     `json:"ports" toml:"ports"`
	Stairs    []Stair    `json:"stairs" toml:"stairs"`
}

// Plinth returns the plinth view of p.
func (p Params) Plinth() Plinth {
	return Plinth{Radius: p.CryostatPlinthRadius, Height: p.CryostatPlinthHeight}
}

// WallInnerRadius is the radius at which the outer wall begins,
// outer_radius - wall_thickness. Duct rings must stay inside it.
func (p Params) WallInnerRadius() float64 {
	return p.OuterRadius - p.WallThickness
}

// Clone returns a deep copy of p. Collections are always non-nil in the
// copy, which keeps encoded output stable ("[]" rather than "null").
func (p Params) Clone() Params {
	out := p
	out.DuctRings = append(make([]DuctRing, 0, len(p.DuctRings)), p.DuctRings...)
	out.Ports = append(make([]Port, 0, len(p.Ports)), p.Ports...)
	out.Stairs = append(make([]Stair, 0, len(p.Stairs)), p.Stairs...)

	return out
}

// WithOuterRadius returns a copy of p with OuterRadius set to r.
func (p Params) WithOuterRadius(r float64) Params {
	out := p.Clone()
	out.OuterRadius = r

	return out
}

// WithInnerRadius returns a copy of p with InnerRadius set to r.
func (p Params) WithInnerRadius(r float64) Params {
	out := p.Clone()
	out.InnerRadius = r

	return out
}

// WithSectorCount returns a copy of p with SectorCount set to n.
func (p Params) WithSectorCount(n int) Params {
	out := p.Clone()
	out.SectorCount = n

	return out
}

// WithDuctRings returns a copy of p whose duct rings are replaced by rings.
func (p Params) WithDuctRings(rings ...DuctRing) Params {
	out := p.Clone()
	out.DuctRings = append(make([]DuctRing, 0, len(rings)), rings...)

	return out
}

// WithPorts returns a copy of p whose ports are replaced by ports.
func (p Params) WithPorts(ports ...Port) Params {
	out := p.Clone()
	out.Ports = append(make([]Port, 0, len(ports)), ports...)

	return out
}

// WithStairs returns a copy of p whose stairs are replaced by stairs.
func (p Params) WithStairs(stairs ...Stair) Params {
	out := p.Clone()
	out.Stairs = append(make([]Stair, 0, len(stairs)), stairs...)

	return out
}
