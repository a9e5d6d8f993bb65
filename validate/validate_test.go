package validate_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/katalvlaran/tokapit/pit"
	"github.com/katalvlaran/tokapit/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ruleIDs(fs []validate.Finding) []string {
	ids := make([]string, len(fs))
	for i, f := range fs {
		ids[i] = f.Rule
	}

	return ids
}

func ring(mod func(*pit.DuctRing)) pit.DuctRing {
	r := pit.Default().DuctRings[0]
	mod(&r)

	return r
}

//----------------------------------------------------------------------------//
// Scenarios
//----------------------------------------------------------------------------//

// TestValidate_BuiltinPresetsAreClean requires every preset to pass.
func TestValidate_BuiltinPresetsAreClean(t *testing.T) {
	for _, name := range pit.PresetNames() {
		t.Run(name, func(t *testing.T) {
			p, err := pit.Preset(name)
			require.NoError(t, err)
			fs := validate.Validate(p)
			assert.Empty(t, fs, "findings: %v", fs)
			assert.False(t, validate.HasErrors(fs))
		})
	}
}

// TestValidate_OuterRadiusInsideWall is the narrow-annulus scenario.
func TestValidate_OuterRadiusInsideWall(t *testing.T) {
	fs := validate.Validate(pit.Default().WithOuterRadius(9.0))

	require.True(t, validate.HasErrors(fs))
	assert.Equal(t, []string{
		validate.RuleOuterRadiusClearsWall,
		validate.RuleDuctRingOuterClearance,
		validate.RuleDuctRingOuterClearance,
		validate.RuleSpanOuterBound,
		validate.RuleSpanOuterBound,
		validate.RuleSpanOuterBound,
		validate.RulePlinthPlacement,
	}, ruleIDs(fs))

	first := fs[0]
	assert.Equal(t, validate.SeverityError, first.Severity)
	assert.Equal(t, "outer_radius", first.Subject)
	assert.Equal(t, "outer_radius 9 must exceed inner_radius + wall_thickness = 9.5", first.Message)

	assert.Equal(t, "duct_rings[0]", fs[1].Subject)
	assert.Equal(t, "duct_rings[1]", fs[2].Subject)
	assert.Equal(t, "ports[0]", fs[3].Subject)
	assert.Equal(t, "ports[1]", fs[4].Subject)
	assert.Equal(t, "stairs[0]", fs[5].Subject)
	assert.Equal(t, validate.SeverityWarning, fs[6].Severity)
	assert.Equal(t, validate.Summary{Errors: 6, Warnings: 1}, validate.Summarize(fs))
}

// TestValidate_Rules triggers each rule in isolation from the default set.
func TestValidate_Rules(t *testing.T) {
	base := pit.Default()
	cases := []struct {
		name string
		p    pit.Params
		want []string
	}{
		{"InnerRadiusZero", base.WithInnerRadius(0), []string{validate.RuleInnerRadiusPositive}},
		{"PitDepthZero", func() pit.Params { p := base.Clone(); p.PitDepth = 0; return p }(),
			[]string{validate.RulePitDepthPositive, validate.RuleDuctRingElevation, validate.RuleDuctRingElevation}},
		{"OuterRadiusTooLarge", base.WithOuterRadius(120), []string{validate.RuleOuterRadiusMax}},
		{"FloorThicknessZero", func() pit.Params { p := base.Clone(); p.FloorThickness = 0; return p }(),
			[]string{validate.RuleFloorThicknessPositive}},
		{"WallThicknessZero", func() pit.Params { p := base.Clone(); p.WallThickness = 0; return p }(),
			[]string{validate.RuleWallThicknessPositive}},
		{"SectorCountLow", base.WithSectorCount(4), []string{validate.RuleSectorCountRange}},
		{"SectorCountHigh", base.WithSectorCount(49), []string{validate.RuleSectorCountRange}},
		{"JointsWidthZero", func() pit.Params { p := base.Clone(); p.SectorJointsWidth = 0; return p }(),
			[]string{validate.RuleSectorJointsWidthPositive}},
		{"JointsOverlap", func() pit.Params { p := base.Clone(); p.SectorJointsWidth = 30; return p }(),
			[]string{validate.RuleJointsOverlap}},
		{"RingInnerClearance", base.WithDuctRings(ring(func(r *pit.DuctRing) { r.Radius = 8.2 })),
			[]string{validate.RuleDuctRingInnerClearance}},
		{"RingCountZero", base.WithDuctRings(ring(func(r *pit.DuctRing) { r.Count = 0 })),
			[]string{validate.RuleDuctRingCount}},
		{"RingDuctWidthZero", base.WithDuctRings(ring(func(r *pit.DuctRing) { r.DuctWidth = 0 })),
			[]string{validate.RuleDuctRingDuctWidth}},
		{"RingElevationNegative", base.WithDuctRings(ring(func(r *pit.DuctRing) { r.Elevation = -1 })),
			[]string{validate.RuleDuctRingElevation}},
		{"RingCutoutsCrowded", base.WithDuctRings(ring(func(r *pit.DuctRing) { r.Count = 100 })),
			[]string{validate.RuleDuctRingCutoutsFit}},
		{"PortStartInsideInner", base.WithPorts(pit.Port{AngleDeg: 0, Width: 2, StartRadius: 7, EndRadius: 16}),
			[]string{validate.RuleSpanInnerBound}},
		{"PortRadialOrder", base.WithPorts(pit.Port{AngleDeg: 0, Width: 2, StartRadius: 16, EndRadius: 16}),
			[]string{validate.RuleSpanRadialOrder}},
		{"StairRunWidthZero", base.WithStairs(pit.Stair{AngleDeg: 220, RunWidth: 0, StartRadius: 9, EndRadius: 15.5}),
			[]string{validate.RuleSpanWidth}},
		{"PlinthAtInnerRadius", func() pit.Params { p := base.Clone(); p.CryostatPlinthRadius = 8; return p }(),
			[]string{validate.RulePlinthPlacement}},
		{"PortsOverlap", base.WithPorts(append(base.Clone().Ports, pit.Port{AngleDeg: 2, Width: 2, StartRadius: 8.5, EndRadius: 16})...),
			[]string{validate.RuleElementOverlap}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fs := validate.Validate(tc.p)
			assert.Equal(t, tc.want, ruleIDs(fs), "findings: %v", fs)
		})
	}
}

// TestValidate_MessagesNameValues checks element messages carry the numbers.
func TestValidate_MessagesNameValues(t *testing.T) {
	p := pit.Default().
		WithDuctRings(ring(func(r *pit.DuctRing) { r.Radius = 14.5 })).
		WithStairs(pit.Stair{AngleDeg: 220, RunWidth: -1, StartRadius: 9, EndRadius: 15.5})

	fs := validate.Validate(p)
	require.Len(t, fs, 2)
	assert.Equal(t, "duct_rings[0]", fs[0].Subject)
	assert.Equal(t, "outer edge 15 (radius + width/2) must be <= outer_radius - wall_thickness = 14.5", fs[0].Message)
	assert.Equal(t, "stairs[0]", fs[1].Subject)
	assert.Equal(t, "run_width -1 must be greater than 0", fs[1].Message)
	assert.Equal(t, "error stairs[0]: run_width -1 must be greater than 0", fs[1].String())
}

// TestValidate_OverlapIsAdvisory reports overlaps as warnings naming both elements.
func TestValidate_OverlapIsAdvisory(t *testing.T) {
	p := pit.Default().WithStairs(pit.Stair{AngleDeg: 121, RunWidth: 2.4, StartRadius: 9, EndRadius: 15.5})

	fs := validate.Validate(p)
	require.Len(t, fs, 1)
	assert.Equal(t, validate.SeverityWarning, fs[0].Severity)
	assert.Equal(t, "ports[1]", fs[0].Subject)
	assert.Contains(t, fs[0].Message, "overlaps stairs[0]")
	assert.False(t, validate.HasErrors(fs))
}

//----------------------------------------------------------------------------//
// Properties
//----------------------------------------------------------------------------//

// TestValidate_Idempotent validates the same value twice.
func TestValidate_Idempotent(t *testing.T) {
	p := pit.Default().WithOuterRadius(9.0).WithSectorCount(2)
	assert.Equal(t, validate.Validate(p), validate.Validate(p))
}

// TestValidate_SiblingsIndependent adds a second invalid ring and expects a
// strict superset of findings.
func TestValidate_SiblingsIndependent(t *testing.T) {
	bad1 := ring(func(r *pit.DuctRing) { r.Radius = 8.1; r.Count = 0 })
	bad2 := ring(func(r *pit.DuctRing) { r.Radius = 14.4; r.DuctWidth = -0.1 })

	one := validate.Validate(pit.Default().WithDuctRings(bad1))
	two := validate.Validate(pit.Default().WithDuctRings(bad1, bad2))

	require.Greater(t, len(two), len(one))
	for _, f := range one {
		assert.Contains(t, two, f)
	}
	assert.Len(t, validate.Errors(two), 4)
}

// TestValidate_Order follows the documented rule group order.
func TestValidate_Order(t *testing.T) {
	p := pit.Default().
		WithInnerRadius(-1).
		WithSectorCount(3).
		WithDuctRings(ring(func(r *pit.DuctRing) { r.Count = 0 })).
		WithPorts(pit.Port{AngleDeg: 10, Width: 0, StartRadius: 9, EndRadius: 15}).
		WithStairs(pit.Stair{AngleDeg: 20, RunWidth: 1, StartRadius: 9, EndRadius: 30})
	p.CryostatPlinthRadius = 20

	assert.Equal(t, []string{
		validate.RuleInnerRadiusPositive,
		validate.RuleSectorCountRange,
		validate.RuleDuctRingCount,
		validate.RuleSpanWidth,
		validate.RuleSpanOuterBound,
		validate.RulePlinthPlacement,
	}, ruleIDs(validate.Validate(p)))
}

// TestValidate_NeverPanics feeds degenerate numbers.
func TestValidate_NeverPanics(t *testing.T) {
	nan := math.NaN()
	p := pit.Params{
		InnerRadius: nan, OuterRadius: math.Inf(1), PitDepth: nan,
		SectorCount: 0, SectorJointsWidth: nan,
		DuctRings: []pit.DuctRing{{Radius: nan, Width: nan, Count: -3, DuctWidth: nan}},
		Ports:     []pit.Port{{Width: nan, StartRadius: nan, EndRadius: nan}},
		Stairs:    []pit.Stair{{RunWidth: 1, StartRadius: -5, EndRadius: 5}},
	}

	var fs []validate.Finding
	require.NotPanics(t, func() { fs = validate.Validate(p) })
	assert.True(t, validate.HasErrors(fs))
	assert.Contains(t, ruleIDs(fs), validate.RuleInnerRadiusPositive)
	assert.Contains(t, ruleIDs(fs), validate.RuleSpanWidth)

	// Counts far out of range are reported without building per-element
	// geometry.
	huge := pit.Default().WithSectorCount(math.MaxInt32)
	huge.DuctRings[0].Count = math.MaxInt32
	require.NotPanics(t, func() { fs = validate.Validate(huge) })
	assert.Contains(t, ruleIDs(fs), validate.RuleSectorCountRange)
}

// TestValidate_EmptyIsNotNil keeps JSON output as [].
func TestValidate_EmptyIsNotNil(t *testing.T) {
	fs := validate.Validate(pit.Default())
	require.NotNil(t, fs)

	data, err := json.Marshal(fs)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

//----------------------------------------------------------------------------//
// Findings helpers
//----------------------------------------------------------------------------//

// TestFindingHelpers covers the severity filters and JSON shape.
func TestFindingHelpers(t *testing.T) {
	fs := []validate.Finding{
		{Severity: validate.SeverityWarning, Rule: "a", Subject: "x", Message: "m1"},
		{Severity: validate.SeverityError, Rule: "b", Subject: "y", Message: "m2"},
		{Severity: validate.SeverityWarning, Rule: "c", Subject: "z", Message: "m3"},
	}

	assert.True(t, validate.HasErrors(fs))
	assert.False(t, validate.HasErrors(validate.Warnings(fs)))
	assert.Equal(t, []string{"b"}, ruleIDs(validate.Errors(fs)))
	assert.Equal(t, []string{"a", "c"}, ruleIDs(validate.Warnings(fs)))
	assert.Equal(t, validate.Summary{Errors: 1, Warnings: 2}, validate.Summarize(fs))

	data, err := json.Marshal(fs[1])
	require.NoError(t, err)
	assert.JSONEq(t, `{"severity":"error","rule":"b","subject":"y","message":"m2"}`, string(data))

	var back validate.Finding
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, fs[1], back)

	var s validate.Severity
	require.Error(t, s.UnmarshalText([]byte("fatal")))
	assert.Equal(t, "severity(7)", validate.Severity(7).String())
}
