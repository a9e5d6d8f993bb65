// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/tokapit/internal/config"
	"github.com/katalvlaran/tokapit/internal/store"
	"github.com/katalvlaran/tokapit/pit"
)

// errBlocking makes the process exit 1 after findings were already printed.
var errBlocking = errors.New("blocking findings")

// app is the per-invocation state shared by subcommands.
type app struct {
	cfg config.Config
	log *slog.Logger

	preset string
	file   string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var cfgFile string

	root := &cobra.Command{
		Use:           "pitctl",
		Short:         "Tokamak pit geometry and validation",
		Long:          "pitctl computes the plan layout, preview mesh and validation findings of a tokamak pit parameter set.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Init(cfgFile); err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, err := config.NewLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.cfg, a.log = cfg, log

			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default .pitctl.toml)")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.String("log-format", "text", "log format: text or json")
	pf.String("store", "pitctl.db", "preset database path")
	_ = viper.BindPFlag("log_level", pf.Lookup("log-level"))
	_ = viper.BindPFlag("log_format", pf.Lookup("log-format"))
	_ = viper.BindPFlag("store_path", pf.Lookup("store"))

	root.AddCommand(
		newValidateCmd(a),
		newLayoutCmd(a),
		newMeshCmd(a),
		newExportCmd(a),
		newPresetsCmd(a),
		newWatchCmd(a),
		newServeCmd(a),
	)

	return root
}

// addSourceFlags registers --preset and --file on cmd.
func (a *app) addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&a.preset, "preset", "p", "", "built-in or stored preset name (default \"default\")")
	cmd.Flags().StringVarP(&a.file, "file", "f", "", "parameter file (.json or .toml)")
	cmd.MarkFlagsMutuallyExclusive("preset", "file")
}

// params resolves the parameter set selected by --preset or --file.
func (a *app) params(ctx context.Context) (pit.Params, error) {
	if a.file != "" {
		return pit.ReadFile(a.file)
	}
	name := a.preset
	if name == "" {
		name = pit.PresetDefault
	}
	if pit.IsBuiltin(name) {
		return pit.Preset(name)
	}

	st, err := a.openStore(ctx)
	if err != nil {
		return pit.Params{}, err
	}
	defer st.Close()

	return st.Resolve(ctx, name)
}

func (a *app) openStore(ctx context.Context) (*store.Store, error) {
	st, err := store.Open(ctx, a.cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("preset store: %w", err)
	}
	a.log.Debug("store opened", "path", a.cfg.StorePath)

	return st, nil
}
