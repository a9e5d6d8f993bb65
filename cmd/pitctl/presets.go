// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tokapit/pit"
)

func newPresetsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List, show, save and delete presets",
	}
	cmd.AddCommand(
		newPresetsListCmd(a),
		newPresetsShowCmd(a),
		newPresetsSaveCmd(a),
		newPresetsDeleteCmd(a),
	)

	return cmd
}

func newPresetsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in and stored presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()
			stored, err := st.List(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSOURCE\tUPDATED")
			for _, name := range pit.PresetNames() {
				fmt.Fprintf(tw, "%s\tbuilt-in\t\n", name)
			}
			for _, e := range stored {
				fmt.Fprintf(tw, "%s\tstored\t%s\n", e.Name, e.UpdatedAt.Local().Format(time.DateTime))
			}

			return tw.Flush()
		},
	}
}

func newPresetsShowCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print a preset as JSON or TOML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := pit.ParseFormat(format)
			if err != nil {
				return err
			}
			a.preset = args[0]
			p, err := a.params(cmd.Context())
			if err != nil {
				return err
			}

			return pit.Encode(cmd.OutOrStdout(), p, f)
		},
	}
	cmd.Flags().StringVar(&format, "format", string(pit.FormatJSON), "output format: json or toml")

	return cmd
}

func newPresetsSaveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Store the --file or --preset parameters under name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.params(cmd.Context())
			if err != nil {
				return err
			}
			st, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Save(cmd.Context(), args[0], p); err != nil {
				return err
			}
			a.log.Info("preset saved", "name", args[0], "path", a.cfg.StorePath)

			return nil
		},
	}
	a.addSourceFlags(cmd)

	return cmd
}

func newPresetsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			a.log.Info("preset deleted", "name", args[0])

			return nil
		},
	}
}
