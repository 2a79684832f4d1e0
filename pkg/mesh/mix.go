package mesh

// Mix returns a new vertex blended between x and y by weight w, where 0
// yields x and 1 yields y. The weight is not clamped; values outside [0,1]
// extrapolate.
//
// Position is always blended and is assumed present on both operands. Every
// other channel is handled independently: present on both sides it is
// blended, present on one side the result copies that side unchanged, and
// absent on both it stays absent. The one-sided copy lets edges with
// asymmetric attribute sets interpolate without dropping data.
//
// Blended normals and tangents are not renormalized; callers needing unit
// length must renormalize themselves.
func Mix(x, y Vertex, w float32) Vertex {
	var v Vertex
	v.SetPosition(x.position.Lerp(y.position, w))

	switch {
	case x.Has(Color) && y.Has(Color):
		v.SetColor(x.color.Lerp(y.color, w))
	case x.Has(Color):
		v.SetColor(x.color)
	case y.Has(Color):
		v.SetColor(y.color)
	}

	switch {
	case x.Has(Normal) && y.Has(Normal):
		v.SetNormal(x.normal.Lerp(y.normal, w))
	case x.Has(Normal):
		v.SetNormal(x.normal)
	case y.Has(Normal):
		v.SetNormal(y.normal)
	}

	switch {
	case x.Has(Tangent) && y.Has(Tangent):
		v.SetTangent(x.tangent.Lerp(y.tangent, w))
	case x.Has(Tangent):
		v.SetTangent(x.tangent)
	case y.Has(Tangent):
		v.SetTangent(y.tangent)
	}

	switch {
	case x.Has(Texture0) && y.Has(Texture0):
		v.SetUV0(x.uv0.Lerp(y.uv0, w))
	case x.Has(Texture0):
		v.SetUV0(x.uv0)
	case y.Has(Texture0):
		v.SetUV0(y.uv0)
	}

	switch {
	case x.Has(Texture1) && y.Has(Texture1):
		v.SetUV2(x.uv2.Lerp(y.uv2, w))
	case x.Has(Texture1):
		v.SetUV2(x.uv2)
	case y.Has(Texture1):
		v.SetUV2(y.uv2)
	}

	switch {
	case x.Has(Texture2) && y.Has(Texture2):
		v.SetUV3(x.uv3.Lerp(y.uv3, w))
	case x.Has(Texture2):
		v.SetUV3(x.uv3)
	case y.Has(Texture2):
		v.SetUV3(y.uv3)
	}

	switch {
	case x.Has(Texture3) && y.Has(Texture3):
		v.SetUV4(x.uv4.Lerp(y.uv4, w))
	case x.Has(Texture3):
		v.SetUV4(x.uv4)
	case y.Has(Texture3):
		v.SetUV4(y.uv4)
	}

	return v
}
