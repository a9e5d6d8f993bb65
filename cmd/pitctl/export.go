// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tokapit/export"
	"github.com/katalvlaran/tokapit/geometry"
	"github.com/katalvlaran/tokapit/pit"
	"github.com/katalvlaran/tokapit/validate"
)

type exporter func(w io.Writer, p pit.Params, fs []validate.Finding) error

func newExportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the plan as SVG or PDF, or the element schedule as XLSX",
		Long: "Export refuses a parameter set with error findings unless --force is given. " +
			"Findings are printed to stderr either way.",
	}

	svg := func(w io.Writer, p pit.Params, _ []validate.Finding) error { return export.PlanSVG(w, p) }
	cmd.AddCommand(
		newExportFormatCmd(a, "svg", "SVG plan view in model coordinates", svg),
		newExportFormatCmd(a, "pdf", "A4 plan sheet with findings", export.PlanPDF),
		newExportFormatCmd(a, "xlsx", "element schedule workbook", export.ScheduleXLSX),
	)

	return cmd
}

func newExportFormatCmd(a *app, format, short string, write exporter) *cobra.Command {
	var (
		output string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   format,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output == "" && format != "svg" {
				return fmt.Errorf("%s export needs --output", format)
			}
			p, err := a.params(cmd.Context())
			if err != nil {
				return err
			}
			if err := geometry.CheckLayoutCounts(p); err != nil {
				return err
			}

			fs := validate.Validate(p)
			for _, f := range fs {
				fmt.Fprintln(cmd.ErrOrStderr(), f)
			}
			if validate.HasErrors(fs) && !force {
				s := validate.Summarize(fs)
				return fmt.Errorf("refusing to export with %d error(s); use --force to override", s.Errors)
			}

			if err := writeOutput(cmd.OutOrStdout(), output, func(w io.Writer) error { return write(w, p, fs) }); err != nil {
				return err
			}
			a.log.Info("exported", "format", format, "output", output, "forced", force && validate.HasErrors(fs))

			return nil
		},
	}
	a.addSourceFlags(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (svg defaults to stdout)")
	cmd.Flags().BoolVar(&force, "force", false, "export even with error findings")

	return cmd
}
