package mesh

import (
	"github.com/voxfield/meshattr/pkg/math"
)

// Mesh is the structure-of-arrays form of a triangle mesh: one parallel
// buffer per attribute channel, each indexed by vertex index. A nil buffer
// means the channel is absent; a buffer shorter than the vertex count is
// treated as absent by GetVertices rather than partially present.
//
// The Positions buffer defines the vertex count. Indices holds triangles as
// consecutive index triples; an empty Indices means the positions form
// implicit sequential triangles.
type Mesh struct {
	Positions []math.Vec3
	Colors    []RGBA
	Normals   []math.Vec3
	Tangents  []math.Vec4
	UV        []math.Vec2
	UV2       []math.Vec2
	UV3       []math.Vec4
	UV4       []math.Vec4
	Indices   []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	if len(m.Indices) > 0 {
		return len(m.Indices) / 3
	}
	return len(m.Positions) / 3
}

// IsEmpty reports whether the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Positions) == 0
}

// Attrs returns the mask of channels the mesh carries, counting a channel
// only when its buffer length matches the vertex count exactly.
func (m *Mesh) Attrs() Attributes {
	n := m.VertexCount()
	if n == 0 {
		return AttributesNone
	}
	attrs := Position
	if len(m.Colors) == n {
		attrs |= Color
	}
	if len(m.Normals) == n {
		attrs |= Normal
	}
	if len(m.Tangents) == n {
		attrs |= Tangent
	}
	if len(m.UV) == n {
		attrs |= Texture0
	}
	if len(m.UV2) == n {
		attrs |= Texture1
	}
	if len(m.UV3) == n {
		attrs |= Texture2
	}
	if len(m.UV4) == n {
		attrs |= Texture3
	}
	return attrs
}

// Clear drops every buffer, index data included. Callers replacing the
// vertex data wholesale (see SetMesh) must reassign Indices afterward.
func (m *Mesh) Clear() {
	m.Positions = nil
	m.Colors = nil
	m.Normals = nil
	m.Tangents = nil
	m.UV = nil
	m.UV2 = nil
	m.UV3 = nil
	m.UV4 = nil
	m.Indices = nil
}
