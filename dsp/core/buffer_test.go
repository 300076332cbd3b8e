package core

import "testing"

func TestEnsureLenReuse(t *testing.T) {
	buf := make([]float64, 4, 8)

	out := EnsureLen(buf, 6)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6", len(out))
	}

	if cap(out) != cap(buf) {
		t.Fatalf("cap = %d, want %d", cap(out), cap(buf))
	}
}

func TestZero(t *testing.T) {
	buf := []float64{1, 2, 3}
	Zero(buf)

	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buf[%d] = %v, want 0", i, v)
		}
	}
}

func TestWidenNarrow(t *testing.T) {
	src := []float32{0.5, -0.25, 1}
	wide := make([]float64, 2)

	if n := Widen(wide, src); n != 2 {
		t.Fatalf("Widen n = %d, want 2", n)
	}
	if wide[0] != 0.5 || wide[1] != -0.25 {
		t.Fatalf("unexpected wide: %v", wide)
	}

	narrow := make([]float32, 3)
	if n := Narrow(narrow, wide); n != 2 {
		t.Fatalf("Narrow n = %d, want 2", n)
	}
	if narrow[0] != 0.5 || narrow[1] != -0.25 || narrow[2] != 0 {
		t.Fatalf("unexpected narrow: %v", narrow)
	}
}
