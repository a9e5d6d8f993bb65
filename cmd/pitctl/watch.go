// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tokapit/internal/watch"
	"github.com/katalvlaran/tokapit/validate"
)

func newWatchCmd(a *app) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-validate a parameter file every time it is saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := watch.New(args[0], a.log)
			w.Debounce = debounce
			out := cmd.OutOrStdout()

			return w.Run(ctx, func(r watch.Report) {
				stamp := time.Now().Format(time.TimeOnly)
				if r.Err != nil {
					fmt.Fprintf(out, "[%s] %s: FAILED: %v\n", stamp, r.Path, r.Err)
					return
				}
				s := validate.Summarize(r.Findings)
				fmt.Fprintf(out, "[%s] %s: %d error(s), %d warning(s)\n", stamp, r.Path, s.Errors, s.Warnings)
				for _, f := range r.Findings {
					fmt.Fprintf(out, "  %s\n", f)
				}
			})
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "quiet period before re-validating")

	return cmd
}

