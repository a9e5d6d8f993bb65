// SPDX-License-Identifier: MIT

// Command pitctl validates, lays out, meshes and exports tokamak pit
// parameter sets from the command line, and serves the same engine over
// HTTP.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errBlocking) {
			fmt.Fprintln(os.Stderr, "pitctl:", err)
		}
		os.Exit(1)
	}
}
