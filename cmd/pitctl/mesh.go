// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/tokapit/export"
	"github.com/katalvlaran/tokapit/geometry"
)

func newMeshCmd(a *app) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "mesh",
		Short: "Build the coarse annulus preview mesh",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "obj" && format != "json" {
				return fmt.Errorf("unknown mesh format %q (want obj or json)", format)
			}
			p, err := a.params(cmd.Context())
			if err != nil {
				return err
			}
			m, err := geometry.PitMesh(p, a.cfg.Mesh.RadialSegments, a.cfg.Mesh.AngularSegments)
			if err != nil {
				return err
			}
			a.log.Info("mesh built", "vertices", len(m.Vertices), "faces", len(m.Faces))

			return writeOutput(cmd.OutOrStdout(), output, func(w io.Writer) error {
				if format == "json" {
					return json.NewEncoder(w).Encode(m)
				}

				return export.WriteOBJ(w, m)
			})
		},
	}
	a.addSourceFlags(cmd)
	cmd.Flags().StringVar(&format, "format", "obj", "output format: obj or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().Int("radial", 1, "radial (vertical) segments")
	cmd.Flags().Int("angular", 0, "angular segments (0 aligns with sectors)")
	_ = viper.BindPFlag("mesh.radial_segments", cmd.Flags().Lookup("radial"))
	_ = viper.BindPFlag("mesh.angular_segments", cmd.Flags().Lookup("angular"))

	return cmd
}

// writeOutput runs write against path, or against stdout when path is empty.
func writeOutput(stdout io.Writer, path string, write func(io.Writer) error) (err error) {
	if path == "" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return write(f)
}
