// File: geometry/example_test.go
package geometry_test

import (
	"fmt"

	"github.com/katalvlaran/tokapit/geometry"
	"github.com/katalvlaran/tokapit/pit"
)

////////////////////////////////////////////////////////////////////////////////
// Example: TangentialWidthToArcDeg
////////////////////////////////////////////////////////////////////////////////

// ExampleTangentialWidthToArcDeg converts the 2.0 m width of the first
// default port into degrees at its start radius.
func ExampleTangentialWidthToArcDeg() {
	theta, err := geometry.TangentialWidthToArcDeg(2.0, 8.5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.2f deg\n", theta)

	// Output:
	// 13.48 deg
}

////////////////////////////////////////////////////////////////////////////////
// Example: BuildLayout
////////////////////////////////////////////////////////////////////////////////

// ExampleBuildLayout lists the port and stair wedges of the default pit.
// Spans are converted at each element's mid-radius.
func ExampleBuildLayout() {
	l, err := geometry.BuildLayout(pit.Default())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("sectors:", len(l.Sectors), "joints:", len(l.Joints))
	for i, w := range l.Ports {
		fmt.Printf("port %d: %.1f° ± %.2f° over [%.1f, %.1f]\n", i, w.AngleDeg, w.ThetaDeg/2, w.StartRadius, w.EndRadius)
	}
	for i, w := range l.Stairs {
		fmt.Printf("stair %d: %.1f° ± %.2f° over [%.1f, %.1f]\n", i, w.AngleDeg, w.ThetaDeg/2, w.StartRadius, w.EndRadius)
	}

	// Output:
	// sectors: 16 joints: 16
	// port 0: 0.0° ± 4.68° over [8.5, 16.0]
	// port 1: 120.0° ± 3.67° over [9.0, 16.0]
	// stair 0: 220.0° ± 5.61° over [9.0, 15.5]
}

////////////////////////////////////////////////////////////////////////////////
// Example: CoarseAnnulusMesh
////////////////////////////////////////////////////////////////////////////////

// ExampleCoarseAnnulusMesh triangulates the default annulus with sector
// lines on mesh edges.
func ExampleCoarseAnnulusMesh() {
	n := geometry.DefaultAngularSegments(16)
	m, err := geometry.CoarseAnnulusMesh(8, 16, 18, 16, 2, n)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("angular segments:", n)
	fmt.Println("vertices:", len(m.Vertices), "faces:", len(m.Faces))

	// Output:
	// angular segments: 96
	// vertices: 576 faces: 1152
}
