package degtrig

import "testing"

func TestSinCos(t *testing.T) {
	if got := Sin(90); got < 0.999999 || got > 1.000001 {
		t.Errorf("Sin(90) = %v, want 1", got)
	}
	if got := Cos(180); got < -1.000001 || got > -0.999999 {
		t.Errorf("Cos(180) = %v, want -1", got)
	}
}

func TestAtan2(t *testing.T) {
	if got := Atan2(1, 1); got < 44.99999 || got > 45.00001 {
		t.Errorf("Atan2(1,1) = %v, want 45", got)
	}
}

func TestNorm360(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{360, 0},
		{-10, 350},
		{725, 5},
	}
	for _, c := range cases {
		if got := Norm360(c.in); got < c.want-1e-9 || got > c.want+1e-9 {
			t.Errorf("Norm360(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
