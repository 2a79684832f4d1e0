package math

import (
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Lerp(t *testing.T) {
	a := Vec2{0, 0}
	b := Vec2{2, 4}
	got := a.Lerp(b, 0.5)
	want := Vec2{1, 2}
	if got != want {
		t.Errorf("Vec2.Lerp() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
}

func TestVec3LerpEndpoints(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Vec3.Lerp(b, 0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Vec3.Lerp(b, 1) = %v, want %v", got, b)
	}
}

func TestVec3LerpExtrapolates(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{1, 0, 0}
	got := a.Lerp(b, 2)
	want := Vec3{2, 0, 0}
	if got != want {
		t.Errorf("Vec3.Lerp(b, 2) = %v, want %v", got, want)
	}
}

func TestVec4Lerp(t *testing.T) {
	a := Vec4{0, 0, 0, 1}
	b := Vec4{1, 2, 3, 1}
	got := a.Lerp(b, 0.5)
	want := Vec4{0.5, 1, 1.5, 1}
	if got != want {
		t.Errorf("Vec4.Lerp() = %v, want %v", got, want)
	}
}

func TestVec4XYZ(t *testing.T) {
	v := Vec4{1, 2, 3, -1}
	got := v.XYZ()
	want := Vec3{1, 2, 3}
	if got != want {
		t.Errorf("Vec4.XYZ() = %v, want %v", got, want)
	}
}
