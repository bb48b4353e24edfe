package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	if result != m {
		t.Errorf("M * I = %v, want %v", result, m)
	}
}

func TestMulComposesTranslations(t *testing.T) {
	got := Translate(1, 2, 3).Mul(Translate(10, 20, 30))
	want := Translate(11, 22, 33)
	if got != want {
		t.Errorf("T1 * T2 = %v, want %v", got, want)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation lives in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.TransformPoint(Vec3{1, 2, 3})

	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformPoint: got %v, want %v", got, want)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1, 0.1, 100)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1, 1, 100)

	near := m.TransformPoint(Vec3{0, 0, -1})
	far := m.TransformPoint(Vec3{0, 0, -100})
	if abs(near.Z+1) > 0.001 {
		t.Errorf("near plane depth = %v, want -1", near.Z)
	}
	if abs(far.Z-1) > 0.001 {
		t.Errorf("far plane depth = %v, want 1", far.Z)
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 0, 5}
	m := LookAt(eye, Vec3{}, Vec3{0, 1, 0})

	if m[15] != 1 {
		t.Errorf("LookAt [15] should be 1, got %f", m[15])
	}

	// The eye maps to the view-space origin; the target lies straight ahead.
	if got := m.TransformPoint(eye); got.Length() > 0.001 {
		t.Errorf("eye in view space = %v, want origin", got)
	}
	if got := m.TransformPoint(Vec3{}); abs(got.Z+5) > 0.001 || abs(got.X) > 0.001 {
		t.Errorf("center in view space = %v, want (0, 0, -5)", got)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
