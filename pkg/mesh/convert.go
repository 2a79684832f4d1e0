package mesh

import (
	"errors"

	"github.com/voxfield/meshattr/pkg/math"
)

var (
	// ErrNilMesh is returned when a required mesh reference is nil.
	ErrNilMesh = errors.New("mesh: nil mesh")
	// ErrNilVertices is returned when a required vertex slice is nil.
	ErrNilVertices = errors.New("mesh: nil vertex slice")
	// ErrEmptyVertices is returned when an operation that reads the
	// presence template needs at least one vertex.
	ErrEmptyVertices = errors.New("mesh: empty vertex slice")
)

// VertexArrays holds one freshly allocated buffer per extracted attribute
// channel. A nil buffer means the channel was not requested or not present
// on the source vertices.
type VertexArrays struct {
	Positions []math.Vec3
	Colors    []RGBA
	Normals   []math.Vec3
	Tangents  []math.Vec4
	UV        []math.Vec2
	UV2       []math.Vec2
	UV3       []math.Vec4
	UV4       []math.Vec4
}

// GetArrays extracts per-channel buffers from a vertex slice. A channel is
// extracted only when it is both requested in attrs and present on the
// first vertex; every other channel comes back nil. An empty (non-nil)
// slice yields all-nil buffers. A nil slice is a caller error.
//
// When transform is non-nil, positions are transformed as points, normals
// as directions through the inverse-transpose, and tangent directions by
// the rotation component only. Colors and texture coordinates are copied
// verbatim. The input vertices are never mutated.
func GetArrays(verts []Vertex, attrs Attributes, transform *math.Mat4) (*VertexArrays, error) {
	if verts == nil {
		return nil, ErrNilVertices
	}

	// The first vertex is the presence template for the whole slice. An
	// empty slice uses the zero vertex, so nothing is considered present.
	var first Vertex
	if len(verts) > 0 {
		first = verts[0]
	}
	extract := attrs & first.Attrs()

	var point, normal, rotation math.Mat4
	if transform != nil {
		point = *transform
		normal = transform.NormalMatrix()
		rotation = transform.RotationOnly()
	}

	n := len(verts)
	out := &VertexArrays{}
	if extract.Has(Position) {
		out.Positions = make([]math.Vec3, n)
	}
	if extract.Has(Color) {
		out.Colors = make([]RGBA, n)
	}
	if extract.Has(Normal) {
		out.Normals = make([]math.Vec3, n)
	}
	if extract.Has(Tangent) {
		out.Tangents = make([]math.Vec4, n)
	}
	if extract.Has(Texture0) {
		out.UV = make([]math.Vec2, n)
	}
	if extract.Has(Texture1) {
		out.UV2 = make([]math.Vec2, n)
	}
	if extract.Has(Texture2) {
		out.UV3 = make([]math.Vec4, n)
	}
	if extract.Has(Texture3) {
		out.UV4 = make([]math.Vec4, n)
	}

	for i := range verts {
		v := &verts[i]
		if out.Positions != nil {
			if transform != nil {
				out.Positions[i] = point.TransformPoint(v.position)
			} else {
				out.Positions[i] = v.position
			}
		}
		if out.Colors != nil {
			out.Colors[i] = v.color
		}
		if out.Normals != nil {
			if transform != nil {
				out.Normals[i] = normal.TransformDirection(v.normal)
			} else {
				out.Normals[i] = v.normal
			}
		}
		if out.Tangents != nil {
			if transform != nil {
				dir := rotation.TransformDirection(v.tangent.XYZ())
				out.Tangents[i] = math.Vec4{X: dir.X, Y: dir.Y, Z: dir.Z, W: v.tangent.W}
			} else {
				out.Tangents[i] = v.tangent
			}
		}
		if out.UV != nil {
			out.UV[i] = v.uv0
		}
		if out.UV2 != nil {
			out.UV2[i] = v.uv2
		}
		if out.UV3 != nil {
			out.UV3[i] = v.uv3
		}
		if out.UV4 != nil {
			out.UV4[i] = v.uv4
		}
	}

	return out, nil
}

// GetVertices converts a mesh's attribute buffers into a vertex slice, one
// Vertex per index. A channel is present on the output only when its buffer
// length matches the mesh's vertex count exactly; shorter or absent buffers
// leave the channel absent on every output vertex.
//
// A nil mesh yields a nil slice rather than an error; this direction is
// used speculatively. When transform is non-nil it is applied with the same
// point / direction / rotation-only split as GetArrays.
func GetVertices(m *Mesh, transform *math.Mat4) []Vertex {
	if m == nil {
		return nil
	}

	var point, normal, rotation math.Mat4
	if transform != nil {
		point = *transform
		normal = transform.NormalMatrix()
		rotation = transform.RotationOnly()
	}

	n := m.VertexCount()
	attrs := m.Attrs()
	verts := make([]Vertex, n)
	for i := 0; i < n; i++ {
		v := &verts[i]
		if transform != nil {
			v.SetPosition(point.TransformPoint(m.Positions[i]))
		} else {
			v.SetPosition(m.Positions[i])
		}
		if attrs.Has(Color) {
			v.SetColor(m.Colors[i])
		}
		if attrs.Has(Normal) {
			if transform != nil {
				v.SetNormal(normal.TransformDirection(m.Normals[i]))
			} else {
				v.SetNormal(m.Normals[i])
			}
		}
		if attrs.Has(Tangent) {
			if transform != nil {
				tan := m.Tangents[i]
				dir := rotation.TransformDirection(tan.XYZ())
				v.SetTangent(math.Vec4{X: dir.X, Y: dir.Y, Z: dir.Z, W: tan.W})
			} else {
				v.SetTangent(m.Tangents[i])
			}
		}
		if attrs.Has(Texture0) {
			v.SetUV0(m.UV[i])
		}
		if attrs.Has(Texture1) {
			v.SetUV2(m.UV2[i])
		}
		if attrs.Has(Texture2) {
			v.SetUV3(m.UV3[i])
		}
		if attrs.Has(Texture3) {
			v.SetUV4(m.UV4[i])
		}
	}
	return verts
}

// SetMesh replaces a mesh's attribute buffers wholesale from a vertex
// slice. Every existing buffer is cleared first, index data included, so
// the caller must reassign Indices afterward.
//
// The first vertex's presence flags decide which buffers are assigned.
// Both references are required and the slice must be non-empty, since the
// presence template is read from index 0.
func SetMesh(m *Mesh, verts []Vertex, transform *math.Mat4) error {
	if m == nil {
		return ErrNilMesh
	}
	if verts == nil {
		return ErrNilVertices
	}
	if len(verts) == 0 {
		return ErrEmptyVertices
	}

	arrays, err := GetArrays(verts, AttributesAll, transform)
	if err != nil {
		return err
	}

	m.Clear()

	first := verts[0]
	if first.Has(Position) {
		m.Positions = arrays.Positions
	}
	if first.Has(Color) {
		m.Colors = arrays.Colors
	}
	if first.Has(Normal) {
		m.Normals = arrays.Normals
	}
	if first.Has(Tangent) {
		m.Tangents = arrays.Tangents
	}
	if first.Has(Texture0) {
		m.UV = arrays.UV
	}
	if first.Has(Texture1) {
		m.UV2 = arrays.UV2
	}
	if first.Has(Texture2) && arrays.UV3 != nil {
		m.UV3 = arrays.UV3
	}
	if first.Has(Texture3) && arrays.UV4 != nil {
		m.UV4 = arrays.UV4
	}
	return nil
}
