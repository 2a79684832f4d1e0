package clip

import (
	"testing"

	"github.com/voxfield/meshattr/pkg/math"
	"github.com/voxfield/meshattr/pkg/mesh"
)

func TestPlaneFromPointDistance(t *testing.T) {
	p := PlaneFromPoint(math.Vec3{X: 0, Y: 1, Z: 0}, math.Vec3{X: 0, Y: 2, Z: 0})

	if d := p.DistanceTo(math.Vec3{X: 5, Y: 2, Z: 5}); d != 0 {
		t.Errorf("distance to point on plane = %v, want 0", d)
	}
	if d := p.DistanceTo(math.Vec3{X: 0, Y: 3, Z: 0}); d != 1 {
		t.Errorf("distance above plane = %v, want 1", d)
	}
	if d := p.DistanceTo(math.Vec3{X: 0, Y: 0, Z: 0}); d != -2 {
		t.Errorf("distance below plane = %v, want -2", d)
	}
}

func TestPlaneFromPointsNormal(t *testing.T) {
	// Counter-clockwise triangle in the XY plane faces +Z.
	p := PlaneFromPoints(math.Vec3{X: 0, Y: 0, Z: 0}, math.Vec3{X: 1, Y: 0, Z: 0}, math.Vec3{X: 0, Y: 1, Z: 0})
	want := math.Vec3{X: 0, Y: 0, Z: 1}
	if p.Normal != want {
		t.Errorf("PlaneFromPoints normal = %v, want %v", p.Normal, want)
	}
}

func TestClassify(t *testing.T) {
	p := PlaneFromPoint(math.Vec3{X: 1, Y: 0, Z: 0}, math.Vec3{})

	if s := p.Classify(math.Vec3{X: 1, Y: 0, Z: 0}, DefaultEpsilon); s != Front {
		t.Errorf("Classify(+x) = %v, want front", s)
	}
	if s := p.Classify(math.Vec3{X: -1, Y: 0, Z: 0}, DefaultEpsilon); s != Back {
		t.Errorf("Classify(-x) = %v, want back", s)
	}
	if s := p.Classify(math.Vec3{X: 0, Y: 7, Z: 7}, DefaultEpsilon); s != OnPlane {
		t.Errorf("Classify(on) = %v, want on", s)
	}
}

func TestSplitEdgeMidpoint(t *testing.T) {
	p := PlaneFromPoint(math.Vec3{X: 0, Y: 0, Z: 1}, math.Vec3{})

	var a, b mesh.Vertex
	a.SetPosition(math.Vec3{X: 0, Y: 0, Z: -1})
	b.SetPosition(math.Vec3{X: 0, Y: 0, Z: 1})

	v, ok := SplitEdge(p, a, b)
	if !ok {
		t.Fatal("SplitEdge should find a crossing")
	}
	if got := v.Position(); got != (math.Vec3{X: 0, Y: 0, Z: 0}) {
		t.Errorf("split position = %v, want origin", got)
	}
}

func TestSplitEdgeNoCrossing(t *testing.T) {
	p := PlaneFromPoint(math.Vec3{X: 0, Y: 0, Z: 1}, math.Vec3{})

	var a, b mesh.Vertex
	a.SetPosition(math.Vec3{X: 0, Y: 0, Z: 1})
	b.SetPosition(math.Vec3{X: 0, Y: 0, Z: 2})

	if _, ok := SplitEdge(p, a, b); ok {
		t.Error("SplitEdge found a crossing on a one-sided edge")
	}
}

func TestSplitEdgeAttributeFallback(t *testing.T) {
	// One endpoint carries a color the other lacks; the synthesized vertex
	// must keep it.
	p := PlaneFromPoint(math.Vec3{X: 1, Y: 0, Z: 0}, math.Vec3{})

	var a, b mesh.Vertex
	a.SetPosition(math.Vec3{X: -1, Y: 0, Z: 0})
	a.SetColor(mesh.RGBA{R: 1, G: 0, B: 0, A: 1})
	b.SetPosition(math.Vec3{X: 1, Y: 0, Z: 0})

	v, ok := SplitEdge(p, a, b)
	if !ok {
		t.Fatal("SplitEdge should find a crossing")
	}
	if !v.Has(mesh.Color) || v.Color() != a.Color() {
		t.Errorf("split color = %v, want %v carried from a", v.Color(), a.Color())
	}
}
