package geometry_test

import (
	"testing"

	"github.com/katalvlaran/tokapit/geometry"
	"github.com/katalvlaran/tokapit/pit"
)

// BenchmarkCoarseAnnulusMesh measures the preview mesh at the largest
// supported sector count and radius.
// Complexity: O(radial × angular)
func BenchmarkCoarseAnnulusMesh(b *testing.B) {
	n := geometry.DefaultAngularSegments(pit.MaxSectorCount)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := geometry.CoarseAnnulusMesh(90, 100, 18, pit.MaxSectorCount, 8, n); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBuildLayout measures plan layout of the densest built-in preset.
func BenchmarkBuildLayout(b *testing.B) {
	p, err := pit.Preset(pit.PresetDemoDensePorts)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = geometry.BuildLayout(p)
	}
}
