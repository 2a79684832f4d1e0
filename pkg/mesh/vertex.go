package mesh

import (
	"github.com/voxfield/meshattr/pkg/math"
)

// Vertex is a single mesh vertex holding an optional value per attribute
// channel. Each channel carries an independent presence flag: the zero
// Vertex has no attributes at all, and a channel only becomes present when
// its setter is called. Presence is what distinguishes "absent" from
// "present with a zero value".
//
// Conversion and interpolation treat the first vertex of a slice as the
// presence template for the whole slice; callers are expected to build
// slices with uniform presence (see GetArrays and SetMesh).
type Vertex struct {
	position math.Vec3
	color    RGBA
	normal   math.Vec3
	tangent  math.Vec4
	uv0      math.Vec2
	uv2      math.Vec2
	uv3      math.Vec4
	uv4      math.Vec4
	attrs    Attributes
}

// Attrs returns the mask of channels present on the vertex.
func (v Vertex) Attrs() Attributes {
	return v.attrs
}

// Has reports whether every channel in the query mask is present.
func (v Vertex) Has(query Attributes) bool {
	return v.attrs&query == query
}

// Position returns the position channel value.
func (v Vertex) Position() math.Vec3 { return v.position }

// SetPosition sets the position channel and marks it present.
func (v *Vertex) SetPosition(p math.Vec3) {
	v.position = p
	v.attrs |= Position
}

// Color returns the color channel value.
func (v Vertex) Color() RGBA { return v.color }

// SetColor sets the color channel and marks it present.
func (v *Vertex) SetColor(c RGBA) {
	v.color = c
	v.attrs |= Color
}

// Normal returns the normal channel value.
func (v Vertex) Normal() math.Vec3 { return v.normal }

// SetNormal sets the normal channel and marks it present.
func (v *Vertex) SetNormal(n math.Vec3) {
	v.normal = n
	v.attrs |= Normal
}

// Tangent returns the tangent channel value.
func (v Vertex) Tangent() math.Vec4 { return v.tangent }

// SetTangent sets the tangent channel and marks it present.
func (v *Vertex) SetTangent(t math.Vec4) {
	v.tangent = t
	v.attrs |= Tangent
}

// UV0 returns the first 2-component texture channel value.
func (v Vertex) UV0() math.Vec2 { return v.uv0 }

// SetUV0 sets the first 2-component texture channel and marks it present.
func (v *Vertex) SetUV0(uv math.Vec2) {
	v.uv0 = uv
	v.attrs |= Texture0
}

// UV2 returns the second 2-component texture channel value.
func (v Vertex) UV2() math.Vec2 { return v.uv2 }

// SetUV2 sets the second 2-component texture channel and marks it present.
func (v *Vertex) SetUV2(uv math.Vec2) {
	v.uv2 = uv
	v.attrs |= Texture1
}

// UV3 returns the first 4-component texture channel value.
func (v Vertex) UV3() math.Vec4 { return v.uv3 }

// SetUV3 sets the first 4-component texture channel and marks it present.
func (v *Vertex) SetUV3(uv math.Vec4) {
	v.uv3 = uv
	v.attrs |= Texture2
}

// UV4 returns the second 4-component texture channel value.
func (v Vertex) UV4() math.Vec4 { return v.uv4 }

// SetUV4 sets the second 4-component texture channel and marks it present.
func (v *Vertex) SetUV4(uv math.Vec4) {
	v.uv4 = uv
	v.attrs |= Texture3
}
