package math

import (
	"math"
	"testing"
)

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 2, Y: 0, Z: 0, W: 2}.Normalize()
	l := float32(math.Sqrt(float64(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)))
	if abs(l-1) > 0.0001 {
		t.Errorf("Normalize length = %v, want 1", l)
	}
}

func TestQuatSlerpEndpoints(t *testing.T) {
	a := QuatIdentity()
	b := QuatFromAxisAngle(Vec3{0, 1, 0}, float32(math.Pi/2))

	got := a.Slerp(b, 0)
	if abs(got.X-a.X) > 0.0001 || abs(got.W-a.W) > 0.0001 {
		t.Errorf("Slerp(b, 0) = %v, want %v", got, a)
	}
	got = a.Slerp(b, 1)
	if abs(got.Y-b.Y) > 0.0001 || abs(got.W-b.W) > 0.0001 {
		t.Errorf("Slerp(b, 1) = %v, want %v", got, b)
	}
}

func TestQuatSlerpHalfway(t *testing.T) {
	a := QuatIdentity()
	b := QuatFromAxisAngle(Vec3{0, 1, 0}, float32(math.Pi/2))
	want := QuatFromAxisAngle(Vec3{0, 1, 0}, float32(math.Pi/4))

	got := a.Slerp(b, 0.5)
	if abs(got.X-want.X) > 0.0001 || abs(got.Y-want.Y) > 0.0001 ||
		abs(got.Z-want.Z) > 0.0001 || abs(got.W-want.W) > 0.0001 {
		t.Errorf("Slerp(b, 0.5) = %v, want %v", got, want)
	}
}

func TestQuatSlerpShortestPath(t *testing.T) {
	// A negated quaternion is the same rotation; slerp should not swing
	// the long way around.
	a := QuatFromAxisAngle(Vec3{0, 1, 0}, 0.1)
	b := QuatFromAxisAngle(Vec3{0, 1, 0}, 0.3)
	neg := Quat{X: -b.X, Y: -b.Y, Z: -b.Z, W: -b.W}
	want := QuatFromAxisAngle(Vec3{0, 1, 0}, 0.2)

	got := a.Slerp(neg, 0.5)
	// Compare as rotations: q and -q are equivalent.
	if got.W < 0 {
		got = Quat{X: -got.X, Y: -got.Y, Z: -got.Z, W: -got.W}
	}
	if abs(got.Y-want.Y) > 0.001 || abs(got.W-want.W) > 0.001 {
		t.Errorf("Slerp shortest path = %v, want %v", got, want)
	}
}

func TestQuatLerpNormalized(t *testing.T) {
	a := QuatIdentity()
	b := QuatFromAxisAngle(Vec3{1, 0, 0}, float32(math.Pi/2))

	got := a.Lerp(b, 0.5)
	l := float32(math.Sqrt(float64(got.X*got.X + got.Y*got.Y + got.Z*got.Z + got.W*got.W)))
	if abs(l-1) > 0.0001 {
		t.Errorf("Lerp result length = %v, want 1", l)
	}
}
