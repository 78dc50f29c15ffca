package vector

import "testing"

func TestAddSub(t *testing.T) {
	a := Vector3{1, 2, 3}
	b := Vector3{4, -1, 0.5}
	got := Add(a, b)
	want := Vector3{5, 1, 3.5}
	if got != want {
		t.Errorf("Add(%v, %v) = %v, want %v", a, b, got, want)
	}
	if got := Sub(got, b); got != a {
		t.Errorf("Sub(Add(a,b), b) = %v, want %v", got, a)
	}
}

func TestDotNorm2(t *testing.T) {
	v := Vector3{3, 4, 0}
	if got := Norm2(v); got != 5 {
		t.Errorf("Norm2(%v) = %v, want 5", v, got)
	}
	if got := Dot(v, v); got != 25 {
		t.Errorf("Dot(%v, %v) = %v, want 25", v, v, got)
	}
}

func TestNormalize(t *testing.T) {
	v := Vector3{3, 4, 0}
	u, ok := Normalize(v)
	if !ok {
		t.Fatal("Normalize reported failure on a well-formed vector")
	}
	if got := Norm2(u); got < 0.999999 || got > 1.000001 {
		t.Errorf("Normalize(%v) has norm %v, want 1", v, got)
	}

	uPre, okPre := Normalize(v, 5)
	if !okPre || uPre != u {
		t.Errorf("Normalize with precomputed norm = %v, %v, want %v, true", uPre, okPre, u)
	}
}

func TestNormalizeZero(t *testing.T) {
	if _, ok := Normalize(Vector3{}); ok {
		t.Error("Normalize(zero vector) reported success")
	}
	if _, ok := Normalize(Vector3{1e-13, 0, 0}); ok {
		t.Error("Normalize(near-zero vector) reported success")
	}
}
