// Package export writes meshes to Wavefront OBJ text.
package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/voxfield/meshattr/pkg/mesh"
)

// WriteOBJ streams the mesh to w as Wavefront OBJ. Only channels the mesh
// carries are emitted: positions always (with the vertex-color extension
// appended when colors are present), vt records for the first UV channel,
// vn records for normals. The 4-component channels have no OBJ
// representation and are skipped.
func WriteOBJ(w io.Writer, m *mesh.Mesh, name string) error {
	if m == nil {
		return mesh.ErrNilMesh
	}

	bw := bufio.NewWriter(w)
	attrs := m.Attrs()
	hasUV := attrs.Has(mesh.Texture0)
	hasNormal := attrs.Has(mesh.Normal)
	hasColor := attrs.Has(mesh.Color)

	if name != "" {
		fmt.Fprintf(bw, "o %s\n", name)
	}

	for i, p := range m.Positions {
		if hasColor {
			c := m.Colors[i]
			fmt.Fprintf(bw, "v %g %g %g %g %g %g\n", p.X, p.Y, p.Z, c.R, c.G, c.B)
		} else {
			fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
		}
	}
	if hasUV {
		for _, uv := range m.UV {
			fmt.Fprintf(bw, "vt %g %g\n", uv.X, uv.Y)
		}
	}
	if hasNormal {
		for _, n := range m.Normals {
			fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
		}
	}

	writeFace := func(a, b, c uint32) {
		// OBJ indices are 1-based and the index format depends on which
		// channels were written.
		switch {
		case hasUV && hasNormal:
			fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n",
				a+1, a+1, a+1, b+1, b+1, b+1, c+1, c+1, c+1)
		case hasUV:
			fmt.Fprintf(bw, "f %d/%d %d/%d %d/%d\n", a+1, a+1, b+1, b+1, c+1, c+1)
		case hasNormal:
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a+1, a+1, b+1, b+1, c+1, c+1)
		default:
			fmt.Fprintf(bw, "f %d %d %d\n", a+1, b+1, c+1)
		}
	}

	if len(m.Indices) > 0 {
		for i := 0; i+2 < len(m.Indices); i += 3 {
			writeFace(m.Indices[i], m.Indices[i+1], m.Indices[i+2])
		}
	} else {
		for i := 0; i+2 < m.VertexCount(); i += 3 {
			writeFace(uint32(i), uint32(i+1), uint32(i+2))
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing obj: %w", err)
	}
	return nil
}
