// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/tokapit/geometry"
	"github.com/katalvlaran/tokapit/pit"
	"github.com/katalvlaran/tokapit/validate"
)

// Sheet names of the schedule workbook.
const (
	SheetParameters = "Parameters"
	SheetElements   = "Elements"
	SheetFindings   = "Findings"
)

var elementHeader = []any{"Kind", "Index", "Angle (deg)", "Theta (deg)", "Start radius (m)", "End radius (m)", "Elevation (m)", "Count"}

// ScheduleXLSX writes an element schedule workbook for p with three sheets:
// Parameters (scalar fields), Elements (one row per port, stair, duct ring
// and sector joint, with computed angular spans) and Findings.
func ScheduleXLSX(w io.Writer, p pit.Params, findings []validate.Finding) (err error) {
	l, _ := geometry.BuildLayout(p)

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	if err = f.SetSheetName("Sheet1", SheetParameters); err != nil {
		return fmt.Errorf("export: xlsx: %w", err)
	}
	if _, err = f.NewSheet(SheetElements); err != nil {
		return fmt.Errorf("export: xlsx: %w", err)
	}
	if _, err = f.NewSheet(SheetFindings); err != nil {
		return fmt.Errorf("export: xlsx: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("export: xlsx: %w", err)
	}

	sheets := map[string][][]any{
		SheetParameters: parameterRows(p),
		SheetElements:   elementRows(p, l),
		SheetFindings:   findingRows(findings),
	}
	for _, name := range []string{SheetParameters, SheetElements, SheetFindings} {
		if err = writeRows(f, name, sheets[name]); err != nil {
			return fmt.Errorf("export: xlsx: %s: %w", name, err)
		}
		if err = f.SetRowStyle(name, 1, 1, bold); err != nil {
			return fmt.Errorf("export: xlsx: %s: %w", name, err)
		}
	}
	if err = f.SetColWidth(SheetParameters, "A", "A", 26); err != nil {
		return fmt.Errorf("export: xlsx: %w", err)
	}
	if err = f.SetColWidth(SheetFindings, "D", "D", 80); err != nil {
		return fmt.Errorf("export: xlsx: %w", err)
	}

	if err = f.Write(w); err != nil {
		return fmt.Errorf("export: xlsx: %w", err)
	}

	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return nil
}

func parameterRows(p pit.Params) [][]any {
	return [][]any{
		{"Parameter", "Value"},
		{"inner_radius", p.InnerRadius},
		{"outer_radius", p.OuterRadius},
		{"wall_thickness", p.WallThickness},
		{"wall_inner_radius", p.WallInnerRadius()},
		{"pit_depth", p.PitDepth},
		{"floor_thickness", p.FloorThickness},
		{"sector_count", p.SectorCount},
		{"sector_joints_width", p.SectorJointsWidth},
		{"cryostat_plinth_radius", p.CryostatPlinthRadius},
		{"cryostat_plinth_height", p.CryostatPlinthHeight},
	}
}

func elementRows(p pit.Params, l geometry.Layout) [][]any {
	rows := [][]any{elementHeader}
	for i, w := range l.Ports {
		rows = append(rows, []any{"port", i, w.AngleDeg, w.ThetaDeg, w.StartRadius, w.EndRadius, "", ""})
	}
	for i, w := range l.Stairs {
		rows = append(rows, []any{"stair", i, w.AngleDeg, w.ThetaDeg, w.StartRadius, w.EndRadius, "", ""})
	}
	for i, b := range l.DuctBands {
		rows = append(rows, []any{"duct_ring", i, "", "", b.StartRadius, b.EndRadius, b.Elevation, p.DuctRings[i].Count})
	}
	for i, w := range l.Joints {
		rows = append(rows, []any{"joint", i, w.AngleDeg, w.ThetaDeg, w.StartRadius, w.EndRadius, "", ""})
	}

	return rows
}

func findingRows(findings []validate.Finding) [][]any {
	rows := [][]any{{"Severity", "Rule", "Subject", "Message"}}
	for _, f := range findings {
		rows = append(rows, []any{f.Severity.String(), f.Rule, f.Subject, f.Message})
	}

	return rows
}
