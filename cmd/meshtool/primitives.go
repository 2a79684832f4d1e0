package main

import (
	"fmt"
	"strings"

	"github.com/voxfield/meshattr/pkg/math"
	"github.com/voxfield/meshattr/pkg/mesh"
)

// buildPrimitive returns the vertex list and index buffer for a named
// primitive, populating only the requested attribute channels.
func buildPrimitive(shape string, attrs mesh.Attributes) ([]mesh.Vertex, []uint32, error) {
	switch shape {
	case "quad":
		verts, idx := buildQuad(attrs)
		return verts, idx, nil
	case "cube":
		verts, idx := buildCube(attrs)
		return verts, idx, nil
	default:
		return nil, nil, fmt.Errorf("unknown primitive %q", shape)
	}
}

// buildQuad returns a unit quad in the XY plane facing +Z.
func buildQuad(attrs mesh.Attributes) ([]mesh.Vertex, []uint32) {
	normal := math.Vec3{X: 0, Y: 0, Z: 1}
	right := math.Vec3{X: 1, Y: 0, Z: 0}
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	verts := faceVertices(math.Vec3{}, normal, right, up, attrs)
	return verts, []uint32{0, 1, 2, 0, 2, 3}
}

// buildCube returns a unit cube centered at the origin with unwelded face
// vertices, so each face keeps its own normals and UVs.
func buildCube(attrs mesh.Attributes) ([]mesh.Vertex, []uint32) {
	type face struct {
		normal, right, up math.Vec3
	}
	faces := []face{
		{math.Vec3{X: 0, Y: 0, Z: 1}, math.Vec3{X: 1, Y: 0, Z: 0}, math.Vec3{X: 0, Y: 1, Z: 0}},   // front
		{math.Vec3{X: 0, Y: 0, Z: -1}, math.Vec3{X: -1, Y: 0, Z: 0}, math.Vec3{X: 0, Y: 1, Z: 0}}, // back
		{math.Vec3{X: 1, Y: 0, Z: 0}, math.Vec3{X: 0, Y: 0, Z: -1}, math.Vec3{X: 0, Y: 1, Z: 0}},  // right
		{math.Vec3{X: -1, Y: 0, Z: 0}, math.Vec3{X: 0, Y: 0, Z: 1}, math.Vec3{X: 0, Y: 1, Z: 0}},  // left
		{math.Vec3{X: 0, Y: 1, Z: 0}, math.Vec3{X: 1, Y: 0, Z: 0}, math.Vec3{X: 0, Y: 0, Z: -1}},  // top
		{math.Vec3{X: 0, Y: -1, Z: 0}, math.Vec3{X: 1, Y: 0, Z: 0}, math.Vec3{X: 0, Y: 0, Z: 1}},  // bottom
	}

	var verts []mesh.Vertex
	var indices []uint32
	for _, f := range faces {
		base := uint32(len(verts))
		center := f.normal.Scale(0.5)
		verts = append(verts, faceVertices(center, f.normal, f.right, f.up, attrs)...)
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return verts, indices
}

// faceVertices builds the four corners of a unit face in counter-clockwise
// order, with right x up == normal.
func faceVertices(center, normal, right, up math.Vec3, attrs mesh.Attributes) []mesh.Vertex {
	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	uvs := [4]math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	out := make([]mesh.Vertex, 4)
	for i, c := range corners {
		var v mesh.Vertex
		pos := center.Add(right.Scale(c[0] / 2)).Add(up.Scale(c[1] / 2))
		v.SetPosition(pos)
		if attrs.Has(mesh.Normal) {
			v.SetNormal(normal)
		}
		if attrs.Has(mesh.Tangent) {
			v.SetTangent(math.Vec4{X: right.X, Y: right.Y, Z: right.Z, W: 1})
		}
		if attrs.Has(mesh.Color) {
			v.SetColor(faceColor(normal))
		}
		if attrs.Has(mesh.Texture0) {
			v.SetUV0(uvs[i])
		}
		if attrs.Has(mesh.Texture1) {
			v.SetUV2(uvs[i])
		}
		if attrs.Has(mesh.Texture2) {
			v.SetUV3(math.Vec4{X: uvs[i].X, Y: uvs[i].Y})
		}
		if attrs.Has(mesh.Texture3) {
			v.SetUV4(math.Vec4{X: uvs[i].X, Y: uvs[i].Y, W: 1})
		}
		out[i] = v
	}
	return out
}

// faceColor derives a debug color from the face normal.
func faceColor(n math.Vec3) mesh.RGBA {
	abs := func(x float32) float32 {
		if x < 0 {
			return -x
		}
		return x
	}
	return mesh.RGBA{R: abs(n.X), G: abs(n.Y), B: abs(n.Z), A: 1}
}

// parseAttrs converts a comma-separated channel list into a mask. Position
// is always included.
func parseAttrs(s string) (mesh.Attributes, error) {
	if s == "" || s == "all" {
		return mesh.AttributesAll, nil
	}
	attrs := mesh.Position
	for _, name := range strings.Split(s, ",") {
		switch strings.TrimSpace(name) {
		case "position", "":
		case "color":
			attrs |= mesh.Color
		case "normal":
			attrs |= mesh.Normal
		case "tangent":
			attrs |= mesh.Tangent
		case "uv0":
			attrs |= mesh.Texture0
		case "uv2":
			attrs |= mesh.Texture1
		case "uv3":
			attrs |= mesh.Texture2
		case "uv4":
			attrs |= mesh.Texture3
		default:
			return 0, fmt.Errorf("unknown attribute %q", name)
		}
	}
	return attrs, nil
}
