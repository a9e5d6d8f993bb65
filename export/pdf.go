// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"io"
	"math"

	"github.com/phpdave11/gofpdf"

	"github.com/katalvlaran/tokapit/geometry"
	"github.com/katalvlaran/tokapit/pit"
	"github.com/katalvlaran/tokapit/validate"
)

// Plan sheet layout on A4 portrait, in millimetres.
const (
	sheetCenterX   = 105.0
	sheetCenterY   = 115.0
	sheetPlanRange = 80.0 // page radius of the outer circle
	arcStepDeg     = 2.0  // polygonal arc resolution
)

// PlanPDF writes an A4 plan sheet of p: the annulus with its joints, duct
// rings, ports and stairs, a parameter summary and the findings table.
// Page coordinates are scaled to fit, unlike PlanSVG.
func PlanPDF(w io.Writer, p pit.Params, findings []validate.Finding) error {
	l, _ := geometry.BuildLayout(p)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Tokamak Pit Plan", false)
	pdf.SetCreator("tokapit", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Tokamak Pit Plan")
	pdf.Ln(12)

	extent := math.Max(math.Abs(p.OuterRadius), math.Abs(p.InnerRadius))
	if !(extent > 0) || math.IsInf(extent, 0) {
		extent = 1
	}
	sheet := planSheet{pdf: pdf, scale: sheetPlanRange / extent}

	pdf.SetLineWidth(0.3)
	pdf.SetDrawColor(0, 0, 0)
	sheet.circle(p.OuterRadius)
	sheet.circle(p.InnerRadius)
	pdf.SetDrawColor(128, 128, 128)
	pdf.SetDashPattern([]float64{1, 1}, 0)
	sheet.circle(p.WallInnerRadius())
	sheet.circle(p.CryostatPlinthRadius)
	pdf.SetDashPattern([]float64{}, 0)

	pdf.SetLineWidth(0.1)
	pdf.SetFillColor(160, 160, 160)
	for _, j := range l.Joints {
		sheet.wedge(j)
	}
	pdf.SetDrawColor(70, 130, 180)
	pdf.SetFillColor(70, 130, 180)
	for _, cuts := range l.DuctCutouts {
		for _, c := range cuts {
			sheet.wedge(c)
		}
	}
	pdf.SetDrawColor(255, 140, 0)
	pdf.SetFillColor(255, 200, 120)
	for _, port := range l.Ports {
		sheet.wedge(port)
	}
	pdf.SetDrawColor(0, 100, 0)
	pdf.SetFillColor(140, 200, 160)
	for _, stair := range l.Stairs {
		sheet.wedge(stair)
	}

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetXY(10, sheetCenterY+sheetPlanRange+8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, parameterSummary(p), "", "L", false)
	pdf.Ln(3)

	s := validate.Summarize(findings)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Findings: %d error(s), %d warning(s)", s.Errors, s.Warnings))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 9)
	tr := pdf.UnicodeTranslatorFromDescriptor("") // core fonts are cp1252
	for _, f := range findings {
		if f.Severity == validate.SeverityError {
			pdf.SetTextColor(180, 0, 0)
		} else {
			pdf.SetTextColor(160, 110, 0)
		}
		pdf.MultiCell(0, 4.5, tr(f.String()), "", "L", false)
	}
	pdf.SetTextColor(0, 0, 0)

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("export: pdf: %w", err)
	}

	return pdf.Output(w)
}

// planSheet maps model metres to page millimetres with +Y pointing up.
type planSheet struct {
	pdf   *gofpdf.Fpdf
	scale float64
}

func (s planSheet) point(r, deg float64) gofpdf.PointType {
	x, y := polar(r, deg)

	return gofpdf.PointType{X: sheetCenterX + x*s.scale, Y: sheetCenterY - y*s.scale}
}

func (s planSheet) circle(r float64) {
	if !(r > 0) || math.IsInf(r, 0) {
		return
	}
	s.pdf.Circle(sheetCenterX, sheetCenterY, r*s.scale, "D")
}

// wedge draws w as a filled polygon approximating both arcs.
func (s planSheet) wedge(w geometry.Wedge) {
	r0, r1 := math.Min(w.StartRadius, w.EndRadius), math.Max(w.StartRadius, w.EndRadius)
	a0, a1 := w.StartAngleDeg(), w.EndAngleDeg()
	if a1 < a0 {
		a0, a1 = a1, a0
	}
	if !finite(a0, a1, r0, r1) {
		return
	}
	if a1-a0 > 360 {
		a1 = a0 + 360
	}

	steps := int(math.Ceil((a1-a0)/arcStepDeg)) + 1
	pts := make([]gofpdf.PointType, 0, 2*(steps+1))
	for i := 0; i <= steps; i++ {
		pts = append(pts, s.point(r1, a0+(a1-a0)*float64(i)/float64(steps)))
	}
	for i := steps; i >= 0; i-- {
		pts = append(pts, s.point(r0, a0+(a1-a0)*float64(i)/float64(steps)))
	}
	s.pdf.Polygon(pts, "DF")
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

func parameterSummary(p pit.Params) string {
	return fmt.Sprintf(
		"Radii: inner %g m, outer %g m, wall %g m | depth %g m, floor %g m\n"+
			"Sectors: %d, joint width %g m | plinth radius %g m, height %g m\n"+
			"Elements: %d duct ring(s), %d port(s), %d stair(s)",
		p.InnerRadius, p.OuterRadius, p.WallThickness, p.PitDepth, p.FloorThickness,
		p.SectorCount, p.SectorJointsWidth, p.CryostatPlinthRadius, p.CryostatPlinthHeight,
		len(p.DuctRings), len(p.Ports), len(p.Stairs))
}
