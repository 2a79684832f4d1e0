// Package clip slices triangle meshes against planes, synthesizing new
// vertices at edge crossings with attribute-aware interpolation.
package clip

import (
	"github.com/voxfield/meshattr/pkg/math"
	"github.com/voxfield/meshattr/pkg/mesh"
)

// DefaultEpsilon is the plane-distance tolerance below which a point is
// treated as lying on the plane.
const DefaultEpsilon float32 = 1e-5

// Plane is the set of points p where Normal·p + D == 0. Normal should be
// unit length so distances are metric.
type Plane struct {
	Normal math.Vec3
	D      float32
}

// PlaneFromPoint builds a plane with the given normal passing through a
// point. The normal is normalized.
func PlaneFromPoint(normal, point math.Vec3) Plane {
	n := normal.Normalize()
	return Plane{Normal: n, D: -n.Dot(point)}
}

// PlaneFromPoints builds a plane through three points, with the normal
// following the right-hand winding of a, b, c.
func PlaneFromPoints(a, b, c math.Vec3) Plane {
	n := b.Sub(a).Cross(c.Sub(a)).Normalize()
	return Plane{Normal: n, D: -n.Dot(a)}
}

// DistanceTo returns the signed distance from a point to the plane.
// Positive is the side the normal points toward.
func (p Plane) DistanceTo(point math.Vec3) float32 {
	return p.Normal.Dot(point) + p.D
}

// Side classifies a point relative to a plane.
type Side int

const (
	// OnPlane means the point lies within tolerance of the plane.
	OnPlane Side = iota
	// Front is the side the plane normal points toward.
	Front
	// Back is the side opposite the normal.
	Back
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case Front:
		return "front"
	case Back:
		return "back"
	default:
		return "on"
	}
}

// Classify returns which side of the plane a point lies on, treating
// distances within eps as on the plane.
func (p Plane) Classify(point math.Vec3, eps float32) Side {
	d := p.DistanceTo(point)
	switch {
	case d > eps:
		return Front
	case d < -eps:
		return Back
	default:
		return OnPlane
	}
}

// SplitEdge returns the vertex where the edge from a to b crosses the
// plane, synthesized with mesh.Mix so every attribute channel the
// endpoints carry survives the split. Returns false when the edge does not
// cross (both endpoints on one side, or the edge lies in the plane).
func SplitEdge(p Plane, a, b mesh.Vertex) (mesh.Vertex, bool) {
	da := p.DistanceTo(a.Position())
	db := p.DistanceTo(b.Position())
	if da*db > 0 {
		return mesh.Vertex{}, false
	}
	denom := da - db
	if denom == 0 {
		return mesh.Vertex{}, false
	}
	return mesh.Mix(a, b, da/denom), true
}
