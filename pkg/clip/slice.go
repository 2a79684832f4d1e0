package clip

import (
	"errors"
	"fmt"

	"github.com/voxfield/meshattr/pkg/mesh"
)

// ErrBadSide is returned when the keep side is neither Front nor Back.
var ErrBadSide = errors.New("clip: keep side must be front or back")

// SlicePlane clips every triangle of a mesh against a plane and returns a
// new mesh containing only the geometry on the keep side. Edges crossing
// the plane are split with SplitEdge, so clip vertices inherit whatever
// attribute channels the source carries. Vertices within eps of the plane
// count as kept. The input mesh is not modified.
//
// The result has unwelded per-triangle vertices and sequential indices; an
// input with no geometry on the keep side yields an empty mesh.
func SlicePlane(m *mesh.Mesh, p Plane, keep Side, eps float32) (*mesh.Mesh, error) {
	if m == nil {
		return nil, mesh.ErrNilMesh
	}
	if keep != Front && keep != Back {
		return nil, fmt.Errorf("%w: got %v", ErrBadSide, keep)
	}

	verts := mesh.GetVertices(m, nil)

	var kept []mesh.Vertex
	for _, tri := range triangles(m) {
		poly := clipTriangle(p, keep, [3]mesh.Vertex{
			verts[tri[0]], verts[tri[1]], verts[tri[2]],
		}, eps)
		// Fan-triangulate the clipped polygon (3 or 4 vertices).
		for i := 2; i < len(poly); i++ {
			kept = append(kept, poly[0], poly[i-1], poly[i])
		}
	}

	out := &mesh.Mesh{}
	if len(kept) == 0 {
		return out, nil
	}
	if err := mesh.SetMesh(out, kept, nil); err != nil {
		return nil, fmt.Errorf("assembling sliced mesh: %w", err)
	}
	indices := make([]uint32, len(kept))
	for i := range indices {
		indices[i] = uint32(i)
	}
	out.Indices = indices
	return out, nil
}

// triangles returns the index triples of a mesh, deriving sequential
// triples when the mesh has no explicit index buffer.
func triangles(m *mesh.Mesh) [][3]uint32 {
	var tris [][3]uint32
	if len(m.Indices) > 0 {
		for i := 0; i+2 < len(m.Indices); i += 3 {
			tris = append(tris, [3]uint32{m.Indices[i], m.Indices[i+1], m.Indices[i+2]})
		}
		return tris
	}
	for i := 0; i+2 < m.VertexCount(); i += 3 {
		tris = append(tris, [3]uint32{uint32(i), uint32(i + 1), uint32(i + 2)})
	}
	return tris
}

// clipTriangle clips one triangle to the keep half-space, returning the
// surviving polygon in winding order: empty, the original 3 vertices, or
// up to 4 when the plane cuts the triangle.
func clipTriangle(p Plane, keep Side, tri [3]mesh.Vertex, eps float32) []mesh.Vertex {
	sign := float32(1)
	if keep == Back {
		sign = -1
	}

	out := make([]mesh.Vertex, 0, 4)
	for i := 0; i < 3; i++ {
		cur := tri[i]
		next := tri[(i+1)%3]
		dc := sign * p.DistanceTo(cur.Position())
		dn := sign * p.DistanceTo(next.Position())

		if dc >= -eps {
			out = append(out, cur)
		}
		// Edge crosses strictly from one side to the other.
		if (dc > eps && dn < -eps) || (dc < -eps && dn > eps) {
			if v, ok := SplitEdge(p, cur, next); ok {
				out = append(out, v)
			}
		}
	}
	if len(out) < 3 {
		return nil
	}
	return out
}
