package clip

import (
	"errors"
	"testing"

	"github.com/voxfield/meshattr/pkg/math"
	"github.com/voxfield/meshattr/pkg/mesh"
)

// straddlingTriangle is a single triangle crossing the x=0 plane: one
// vertex on the back side, two on the front.
func straddlingTriangle() *mesh.Mesh {
	return &mesh.Mesh{
		Positions: []math.Vec3{{X: -1, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}},
		UV:        []math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}},
		Indices:   []uint32{0, 1, 2},
	}
}

func TestSlicePlaneNilMesh(t *testing.T) {
	p := PlaneFromPoint(math.Vec3{X: 1, Y: 0, Z: 0}, math.Vec3{})
	if _, err := SlicePlane(nil, p, Front, DefaultEpsilon); !errors.Is(err, mesh.ErrNilMesh) {
		t.Errorf("SlicePlane(nil) err = %v, want ErrNilMesh", err)
	}
}

func TestSlicePlaneBadSide(t *testing.T) {
	p := PlaneFromPoint(math.Vec3{X: 1, Y: 0, Z: 0}, math.Vec3{})
	if _, err := SlicePlane(straddlingTriangle(), p, OnPlane, DefaultEpsilon); !errors.Is(err, ErrBadSide) {
		t.Errorf("SlicePlane(OnPlane) err = %v, want ErrBadSide", err)
	}
}

func TestSlicePlaneFrontQuad(t *testing.T) {
	p := PlaneFromPoint(math.Vec3{X: 1, Y: 0, Z: 0}, math.Vec3{})

	out, err := SlicePlane(straddlingTriangle(), p, Front, DefaultEpsilon)
	if err != nil {
		t.Fatalf("SlicePlane err = %v", err)
	}
	// The front side of the cut is a quad: two fan triangles.
	if got := out.TriangleCount(); got != 2 {
		t.Errorf("front TriangleCount() = %d, want 2", got)
	}
	for i, pos := range out.Positions {
		if pos.X < -DefaultEpsilon {
			t.Errorf("vertex %d at %v is behind the keep plane", i, pos)
		}
	}
}

func TestSlicePlaneBackTriangle(t *testing.T) {
	p := PlaneFromPoint(math.Vec3{X: 1, Y: 0, Z: 0}, math.Vec3{})

	out, err := SlicePlane(straddlingTriangle(), p, Back, DefaultEpsilon)
	if err != nil {
		t.Fatalf("SlicePlane err = %v", err)
	}
	if got := out.TriangleCount(); got != 1 {
		t.Errorf("back TriangleCount() = %d, want 1", got)
	}
}

func TestSlicePlaneKeepsAttributeChannels(t *testing.T) {
	p := PlaneFromPoint(math.Vec3{X: 1, Y: 0, Z: 0}, math.Vec3{})

	out, err := SlicePlane(straddlingTriangle(), p, Front, DefaultEpsilon)
	if err != nil {
		t.Fatalf("SlicePlane err = %v", err)
	}
	if !out.Attrs().Has(mesh.Texture0) {
		t.Error("sliced mesh lost its UV channel")
	}
	if len(out.UV) != out.VertexCount() {
		t.Errorf("len(UV) = %d, want %d", len(out.UV), out.VertexCount())
	}
	// Clip vertices sit at x=0 and must carry interpolated UVs, which for
	// this triangle means U == 0.5 at the cut.
	for i, pos := range out.Positions {
		if pos.X == 0 && out.UV[i].X != 0.5 {
			t.Errorf("clip vertex %d uv = %v, want U 0.5", i, out.UV[i])
		}
	}
}

func TestSlicePlaneAllKept(t *testing.T) {
	// Plane far below the triangle: everything survives.
	p := PlaneFromPoint(math.Vec3{X: 0, Y: 1, Z: 0}, math.Vec3{X: 0, Y: -10, Z: 0})

	out, err := SlicePlane(straddlingTriangle(), p, Front, DefaultEpsilon)
	if err != nil {
		t.Fatalf("SlicePlane err = %v", err)
	}
	if got := out.TriangleCount(); got != 1 {
		t.Errorf("TriangleCount() = %d, want 1", got)
	}
}

func TestSlicePlaneNothingKept(t *testing.T) {
	p := PlaneFromPoint(math.Vec3{X: 0, Y: 1, Z: 0}, math.Vec3{X: 0, Y: 10, Z: 0})

	out, err := SlicePlane(straddlingTriangle(), p, Front, DefaultEpsilon)
	if err != nil {
		t.Fatalf("SlicePlane err = %v", err)
	}
	if !out.IsEmpty() {
		t.Errorf("expected empty mesh, got %d vertices", out.VertexCount())
	}
}

func TestSlicePlaneDoesNotModifyInput(t *testing.T) {
	src := straddlingTriangle()
	p := PlaneFromPoint(math.Vec3{X: 1, Y: 0, Z: 0}, math.Vec3{})

	if _, err := SlicePlane(src, p, Front, DefaultEpsilon); err != nil {
		t.Fatalf("SlicePlane err = %v", err)
	}
	if len(src.Positions) != 3 || len(src.Indices) != 3 {
		t.Error("SlicePlane modified its input mesh")
	}
}
