// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/tokapit/internal/batch"
	"github.com/katalvlaran/tokapit/validate"
)

type fileReport struct {
	Path     string             `json:"path"`
	Error    string             `json:"error,omitempty"`
	Findings []validate.Finding `json:"findings"`
	Summary  validate.Summary   `json:"summary"`
}

func newValidateCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "validate [file|glob ...]",
		Short: "Validate parameter files or a preset",
		Long: "Validate checks each file (globs such as 'sites/**/*.toml' are expanded) " +
			"concurrently, or the --preset/--file selection when no argument is given. " +
			"It exits 1 if any input has errors or cannot be read.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var reports []fileReport
			if len(args) == 0 {
				p, err := a.params(cmd.Context())
				if err != nil {
					return err
				}
				fs := validate.Validate(p)
				reports = append(reports, fileReport{Path: sourceName(a), Findings: fs, Summary: validate.Summarize(fs)})
			} else {
				paths, err := batch.Expand(args)
				if err != nil {
					return err
				}
				a.log.Debug("batch", "files", len(paths), "workers", a.cfg.Batch.Workers)
				for _, r := range batch.Run(cmd.Context(), paths, a.cfg.Batch.Workers, a.log) {
					rep := fileReport{Path: r.Path, Findings: r.Findings, Summary: validate.Summarize(r.Findings)}
					if r.Err != nil {
						rep.Error = r.Err.Error()
					}
					reports = append(reports, rep)
				}
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(reports); err != nil {
					return err
				}
			} else {
				printReports(cmd.OutOrStdout(), reports)
			}

			for _, r := range reports {
				if r.Error != "" || r.Summary.Errors > 0 {
					return errBlocking
				}
			}

			return nil
		},
	}
	a.addSourceFlags(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print reports as JSON")
	cmd.Flags().Int("workers", 0, "concurrent validations (default batch.workers)")
	_ = viper.BindPFlag("batch.workers", cmd.Flags().Lookup("workers"))

	return cmd
}

func printReports(w io.Writer, reports []fileReport) {
	for _, r := range reports {
		switch {
		case r.Error != "":
			fmt.Fprintf(w, "%s: FAILED: %s\n", r.Path, r.Error)
			continue
		case len(r.Findings) == 0:
			fmt.Fprintf(w, "%s: ok\n", r.Path)
			continue
		}
		fmt.Fprintf(w, "%s: %d error(s), %d warning(s)\n", r.Path, r.Summary.Errors, r.Summary.Warnings)
		for _, f := range r.Findings {
			fmt.Fprintf(w, "  %s\n", f)
		}
	}
}

func sourceName(a *app) string {
	switch {
	case a.file != "":
		return a.file
	case a.preset != "":
		return "preset " + a.preset
	default:
		return "preset default"
	}
}
