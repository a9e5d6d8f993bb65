// SPDX-License-Identifier: MIT

package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/tokapit/geometry"
)

// WriteOBJ writes m as a Wavefront OBJ: one "v x y z" line per vertex
// followed by one "f a b c" line per face, with 1-based indices.
// The winding of m is preserved.
func WriteOBJ(w io.Writer, m geometry.Mesh) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "# tokapit pit mesh\n# vertices %d faces %d\no pit\n", len(m.Vertices), len(m.Faces)); err != nil {
		return err
	}
	for _, v := range m.Vertices {
		if _, err := fmt.Fprintf(bw, "v %s %s %s\n", num(v.X), num(v.Y), num(v.Z)); err != nil {
			return err
		}
	}
	for i, f := range m.Faces {
		for _, vi := range f {
			if vi < 0 || vi >= len(m.Vertices) {
				return fmt.Errorf("export: obj: face %d references vertex %d of %d", i, vi, len(m.Vertices))
			}
		}
		if _, err := fmt.Fprintf(bw, "f %d %d %d\n", f[0]+1, f[1]+1, f[2]+1); err != nil {
			return err
		}
	}

	return bw.Flush()
}
