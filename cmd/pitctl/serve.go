// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/tokapit/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the validation, layout, mesh, export and preset API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			st, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			srv := server.New(server.Options{
				Store:           st,
				Log:             a.log,
				RateLimit:       a.cfg.Serve.RateLimit,
				RateBurst:       a.cfg.Serve.RateBurst,
				RadialSegments:  a.cfg.Mesh.RadialSegments,
				AngularSegments: a.cfg.Mesh.AngularSegments,
			})

			return srv.ListenAndServe(ctx, a.cfg.Serve.Addr)
		},
	}
	cmd.Flags().String("addr", "127.0.0.1:8080", "listen address")
	_ = viper.BindPFlag("serve.addr", cmd.Flags().Lookup("addr"))

	return cmd
}
