// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tokapit/geometry"
)

func newLayoutCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the plan layout: sectors, joints, ports, stairs and duct cut-outs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.params(cmd.Context())
			if err != nil {
				return err
			}
			if err := geometry.CheckLayoutCounts(p); err != nil {
				return err
			}
			l, err := geometry.BuildLayout(p)
			if err != nil {
				a.log.Warn("partial layout", "err", err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(l)
			}

			return printLayout(cmd.OutOrStdout(), l)
		},
	}
	a.addSourceFlags(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the layout as JSON")

	return cmd
}

func printLayout(w io.Writer, l geometry.Layout) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "sectors\t%d\n", len(l.Sectors))
	fmt.Fprintln(tw, "KIND\tINDEX\tSTART°\tEND°\tTHETA°\tR0\tR1")
	row := func(kind string, i int, wd geometry.Wedge) {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.2f\t%.2f\t%g\t%g\n",
			kind, i, wd.StartAngleDeg(), wd.EndAngleDeg(), wd.ThetaDeg, wd.StartRadius, wd.EndRadius)
	}
	for i, wd := range l.Ports {
		row("port", i, wd)
	}
	for i, wd := range l.Stairs {
		row("stair", i, wd)
	}
	for i, wd := range l.Joints {
		row("joint", i, wd)
	}
	for i, b := range l.DuctBands {
		fmt.Fprintf(tw, "duct_ring\t%d\t\t\t\t%g\t%g\t(z=%g, %d cut-outs)\n",
			i, b.StartRadius, b.EndRadius, b.Elevation, len(l.DuctCutouts[i]))
	}

	return tw.Flush()
}
