// SPDX-License-Identifier: MIT

package export

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/tokapit/geometry"
	"github.com/katalvlaran/tokapit/pit"
)

// svgMargin enlarges the view box past the outer radius.
const svgMargin = 1.05

// PlanSVG writes the plan view of p as an SVG document.
//
// Geometry is best effort: pieces BuildLayout cannot compute are simply not
// drawn. Only write failures are returned.
func PlanSVG(w io.Writer, p pit.Params) error {
	l, _ := geometry.BuildLayout(p)

	extent := math.Max(math.Abs(p.OuterRadius), math.Abs(p.InnerRadius)) * svgMargin
	if !(extent > 0) || math.IsInf(extent, 0) {
		extent = 1
	}

	sw := &svgWriter{w: bufio.NewWriter(w)}
	sw.printf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" data-units="m">`+"\n",
		num(-extent), num(-extent), num(2*extent), num(2*extent))
	stroke := num(extent / 400)

	sw.printf(`<g id="annulus" fill="none" stroke="black" stroke-width="%s">`+"\n", stroke)
	sw.circle("outer-radius", p.OuterRadius, "")
	sw.circle("wall-inner-radius", p.WallInnerRadius(), ` stroke-dasharray="`+num(extent/100)+`"`)
	sw.circle("inner-radius", p.InnerRadius, "")
	sw.circle("cryostat-plinth", p.CryostatPlinthRadius, ` stroke="grey"`)
	sw.printf("</g>\n")

	sw.printf(`<g id="joints" fill="grey" stroke="none">` + "\n")
	for i, j := range l.Joints {
		sw.wedge(fmt.Sprintf("joint-%d", i), j)
	}
	sw.printf("</g>\n")

	sw.printf(`<g id="duct-rings" fill="none" stroke="steelblue">` + "\n")
	for i, b := range l.DuctBands {
		sw.printf(`<circle id="duct-ring-%d" cx="0" cy="0" r="%s" stroke-width="%s" data-elevation="%g"/>`+"\n",
			i, num((b.StartRadius+b.EndRadius)/2), num(b.EndRadius-b.StartRadius), b.Elevation)
	}
	sw.printf("</g>\n")

	sw.printf(`<g id="duct-cutouts" fill="navy" stroke="none">` + "\n")
	for i, cuts := range l.DuctCutouts {
		for k, c := range cuts {
			sw.wedge(fmt.Sprintf("duct-ring-%d-cutout-%d", i, k), c)
		}
	}
	sw.printf("</g>\n")

	sw.printf(`<g id="ports" fill="orange" fill-opacity="0.6" stroke="darkorange">` + "\n")
	for i, port := range l.Ports {
		sw.wedge(fmt.Sprintf("port-%d", i), port)
	}
	sw.printf("</g>\n")

	sw.printf(`<g id="stairs" fill="seagreen" fill-opacity="0.6" stroke="darkgreen">` + "\n")
	for i, stair := range l.Stairs {
		sw.wedge(fmt.Sprintf("stair-%d", i), stair)
	}
	sw.printf("</g>\n</svg>\n")

	if sw.err != nil {
		return sw.err
	}

	return sw.w.Flush()
}

// svgWriter remembers the first write error so drawing code stays linear.
type svgWriter struct {
	w   *bufio.Writer
	err error
}

func (s *svgWriter) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

func (s *svgWriter) circle(id string, r float64, attrs string) {
	if !(r > 0) {
		return
	}
	s.printf(`<circle id="%s" cx="0" cy="0" r="%s"%s/>`+"\n", id, num(r), attrs)
}

// wedge draws w as an annular sector: outer arc forward, inner arc back.
func (s *svgWriter) wedge(id string, w geometry.Wedge) {
	r0, r1 := math.Min(w.StartRadius, w.EndRadius), math.Max(w.StartRadius, w.EndRadius)
	a0, a1 := w.StartAngleDeg(), w.EndAngleDeg()
	if a1 < a0 {
		a0, a1 = a1, a0
	}
	// A full-circle arc has coincident endpoints and would not render.
	if a1-a0 >= 360 {
		a1 = a0 + 359.99
	}
	large := 0
	if a1-a0 > 180 {
		large = 1
	}

	x0o, y0o := polar(r1, a0)
	x1o, y1o := polar(r1, a1)
	x1i, y1i := polar(r0, a1)
	x0i, y0i := polar(r0, a0)
	s.printf(`<path id="%s" d="M %s %s A %s %s 0 %d 1 %s %s L %s %s A %s %s 0 %d 0 %s %s Z" `+
		`data-angle-deg="%g" data-theta-deg="%g" data-start-radius="%g" data-end-radius="%g"/>`+"\n",
		id,
		num(x0o), num(y0o), num(r1), num(r1), large, num(x1o), num(y1o),
		num(x1i), num(y1i), num(r0), num(r0), large, num(x0i), num(y0i),
		w.AngleDeg, w.ThetaDeg, w.StartRadius, w.EndRadius)
}

func polar(r, deg float64) (x, y float64) {
	rad := deg * math.Pi / 180

	return r * math.Cos(rad), r * math.Sin(rad)
}

// num prints a coordinate with 0.1 mm resolution.
func num(v float64) string {
	s := fmt.Sprintf("%.4f", v)
	if s == "-0.0000" {
		s = "0.0000"
	}

	return s
}
