package mesh

import (
	"testing"

	"github.com/voxfield/meshattr/pkg/math"
)

func TestZeroVertexHasNothing(t *testing.T) {
	var v Vertex
	if v.Attrs() != AttributesNone {
		t.Errorf("zero Vertex.Attrs() = %v, want none", v.Attrs())
	}
	if v.Has(Position) {
		t.Error("zero vertex should not have a position")
	}
}

func TestSettersMarkPresence(t *testing.T) {
	var v Vertex
	v.SetPosition(math.Vec3{X: 1, Y: 2, Z: 3})
	v.SetColor(RGBA{1, 0, 0, 1})

	if !v.Has(Position | Color) {
		t.Errorf("Attrs() = %v, want position and color present", v.Attrs())
	}
	if v.Has(Normal) {
		t.Error("normal should be absent until set")
	}
	if got := v.Position(); got != (math.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("Position() = %v, want {1 2 3}", got)
	}
}

func TestZeroValueStillPresent(t *testing.T) {
	// Setting a channel to its zero value must still mark it present;
	// presence is tracked separately from the stored value.
	var v Vertex
	v.SetNormal(math.Vec3{})
	if !v.Has(Normal) {
		t.Error("zero-valued normal should still be present")
	}
}

func TestAttributesString(t *testing.T) {
	got := (Position | Normal).String()
	want := "position,normal"
	if got != want {
		t.Errorf("Attributes.String() = %q, want %q", got, want)
	}
	if AttributesNone.String() != "none" {
		t.Errorf("AttributesNone.String() = %q, want %q", AttributesNone.String(), "none")
	}
}

func TestAttributesCount(t *testing.T) {
	if got := AttributesAll.Count(); got != 8 {
		t.Errorf("AttributesAll.Count() = %d, want 8", got)
	}
	if got := (Position | Tangent).Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
}
