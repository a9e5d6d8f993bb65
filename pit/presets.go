// SPDX-License-Identifier: MIT

package pit

import (
	"fmt"
	"sort"
)

// Built-in preset names.
const (
	PresetDefault        = "default"
	PresetCompact        = "compact"
	PresetWide           = "wide"
	PresetDeep           = "deep"
	PresetDemoDensePorts = "demo-denseports"
)

// builtins is populated once and never written afterwards; accessors hand
// out deep copies.
var builtins = map[string]Params{
	PresetDefault:        defaultParams(),
	PresetCompact:        compactParams(),
	PresetWide:           wideParams(),
	PresetDeep:           deepParams(),
	PresetDemoDensePorts: demoDensePortsParams(),
}

// Default returns the canonical default parameter set.
func Default() Params {
	return builtins[PresetDefault].Clone()
}

// Preset returns a copy of the named built-in preset.
// Returns ErrUnknownPreset if name is not one of PresetNames().
func Preset(name string) (Params, error) {
	p, ok := builtins[name]
	if !ok {
		return Params{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}

	return p.Clone(), nil
}

// PresetNames lists the built-in presets in lexical order.
func PresetNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// IsBuiltin reports whether name refers to a built-in preset.
func IsBuiltin(name string) bool {
	_, ok := builtins[name]

	return ok
}

func defaultParams() Params {
	return Params{
		InnerRadius:          8.0,
		OuterRadius:          16.0,
		PitDepth:             18.0,
		FloorThickness:       1.0,
		WallThickness:        1.5,
		SectorCount:          16,
		SectorJointsWidth:    0.25,
		CryostatPlinthRadius: 9.5,
		CryostatPlinthHeight: 2.0,
		DuctRings: []DuctRing{
			{Radius: 11.0, Width: 1.0, Elevation: 2.0, Count: 16, DuctWidth: 0.8},
			{Radius: 13.0, Width: 1.0, Elevation: 6.0, Count: 32, DuctWidth: 0.6},
		},
		Ports: []Port{
			{AngleDeg: 0.0, Width: 2.0, StartRadius: 8.5, EndRadius: 16.0},
			{AngleDeg: 120.0, Width: 1.6, StartRadius: 9.0, EndRadius: 16.0},
		},
		Stairs: []Stair{
			{AngleDeg: 220.0, RunWidth: 2.4, StartRadius: 9.0, EndRadius: 15.5},
		},
	}
}

// compactParams shrinks the annulus to 7–14 m; elements are pulled in so
// they stay inside the smaller wall.
func compactParams() Params {
	return Params{
		InnerRadius:          7.0,
		OuterRadius:          14.0,
		PitDepth:             18.0,
		FloorThickness:       1.0,
		WallThickness:        1.5,
		SectorCount:          12,
		SectorJointsWidth:    0.25,
		CryostatPlinthRadius: 9.5,
		CryostatPlinthHeight: 2.0,
		DuctRings: []DuctRing{
			{Radius: 9.0, Width: 1.0, Elevation: 2.0, Count: 12, DuctWidth: 0.8},
			{Radius: 11.0, Width: 1.0, Elevation: 6.0, Count: 24, DuctWidth: 0.6},
		},
		Ports: []Port{
			{AngleDeg: 0.0, Width: 2.0, StartRadius: 7.5, EndRadius: 14.0},
			{AngleDeg: 120.0, Width: 1.6, StartRadius: 8.0, EndRadius: 14.0},
		},
		Stairs: []Stair{
			{AngleDeg: 220.0, RunWidth: 2.4, StartRadius: 8.0, EndRadius: 13.5},
		},
	}
}

// wideParams widens the annulus to 10–22 m with 18 sectors.
func wideParams() Params {
	return Params{
		InnerRadius:          10.0,
		OuterRadius:          22.0,
		PitDepth:             18.0,
		FloorThickness:       1.0,
		WallThickness:        1.5,
		SectorCount:          18,
		SectorJointsWidth:    0.25,
		CryostatPlinthRadius: 11.5,
		CryostatPlinthHeight: 2.0,
		DuctRings: []DuctRing{
			{Radius: 13.0, Width: 1.0, Elevation: 2.0, Count: 18, DuctWidth: 0.8},
			{Radius: 16.0, Width: 1.0, Elevation: 6.0, Count: 36, DuctWidth: 0.6},
		},
		Ports: []Port{
			{AngleDeg: 0.0, Width: 2.0, StartRadius: 10.5, EndRadius: 22.0},
			{AngleDeg: 120.0, Width: 1.6, StartRadius: 11.0, EndRadius: 22.0},
		},
		Stairs: []Stair{
			{AngleDeg: 220.0, RunWidth: 2.4, StartRadius: 11.0, EndRadius: 21.5},
		},
	}
}

// deepParams is the default annulus dug to 28 m with raised duct rings.
func deepParams() Params {
	p := defaultParams()
	p.PitDepth = 28.0
	p.DuctRings = []DuctRing{
		{Radius: 11.0, Width: 1.0, Elevation: 3.0, Count: 16, DuctWidth: 0.8},
		{Radius: 13.0, Width: 1.0, Elevation: 10.0, Count: 32, DuctWidth: 0.6},
	}

	return p
}

// demoDensePortsParams places twelve ports every 30° around the default
// annulus, with the stair between two of them.
func demoDensePortsParams() Params {
	p := defaultParams()
	p.Ports = make([]Port, 0, 12)
	for i := 0; i < 12; i++ {
		p.Ports = append(p.Ports, Port{
			AngleDeg:    float64(i) * 30.0,
			Width:       2.0,
			StartRadius: 8.5,
			EndRadius:   16.0,
		})
	}
	p.Stairs = []Stair{
		{AngleDeg: 195.0, RunWidth: 2.4, StartRadius: 9.0, EndRadius: 15.5},
	}

	return p
}
