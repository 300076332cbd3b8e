package delay

import (
	"testing"
)

func TestNewValidation(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Fatal("expected error for size=0")
	}

	if _, err := New(-1); err == nil {
		t.Fatal("expected error for size=-1")
	}
}

func TestNewZeroed(t *testing.T) {
	d, err := New(16)
	if err != nil {
		t.Fatal(err)
	}

	if d.Len() != 16 {
		t.Fatalf("Len: got %d want 16", d.Len())
	}
	if d.SizeBytes() != 128 {
		t.Fatalf("SizeBytes: got %d want 128", d.SizeBytes())
	}
	if d.Position() != 0 {
		t.Fatalf("Position: got %d want 0", d.Position())
	}
	for n := range d.Len() {
		if v := d.Read(n); v != 0 {
			t.Fatalf("Read(%d) = %v on a fresh line", n, v)
		}
	}
}

func TestReadWrite(t *testing.T) {
	d, err := New(8)
	if err != nil {
		t.Fatal(err)
	}

	for i := range 8 {
		d.Write(float64(i + 1))
	}

	// Write position has wrapped to 0; Read(1) is the most recent sample.
	for n := 1; n < 8; n++ {
		want := float64(8 - n + 1)
		if got := d.Read(n); got != want {
			t.Fatalf("Read(%d): got %v want %v", n, got, want)
		}
	}
	if got := d.Read(0); got != 1 {
		t.Fatalf("Read(0): got %v want oldest sample 1", got)
	}
}

func TestPositionWraps(t *testing.T) {
	d, _ := New(3)
	want := []int{1, 2, 0, 1, 2, 0}
	for i, w := range want {
		d.Write(0)
		if d.Position() != w {
			t.Fatalf("after write %d: position %d want %d", i+1, d.Position(), w)
		}
	}
}

func TestReadClampsDelay(t *testing.T) {
	d, _ := New(4)
	for i := range 4 {
		d.Write(float64(i + 1))
	}

	if got, want := d.Read(-3), d.Read(0); got != want {
		t.Fatalf("negative delay: got %v want %v", got, want)
	}
	if got, want := d.Read(100), d.Read(3); got != want {
		t.Fatalf("oversized delay: got %v want %v", got, want)
	}
}

func TestImpulseDelay(t *testing.T) {
	const n = 5
	d, _ := New(16)

	for i := range 20 {
		in := 0.0
		if i == 0 {
			in = 1
		}
		out := d.Read(n)
		d.Write(in)

		want := 0.0
		if i == n {
			want = 1
		}
		if out != want {
			t.Fatalf("sample %d: got %v want %v", i, out, want)
		}
	}
}

func TestReset(t *testing.T) {
	d, _ := New(8)
	for i := range 11 {
		d.Write(float64(i + 1))
	}
	d.Reset()

	if d.Position() != 0 {
		t.Fatalf("position after reset: %d", d.Position())
	}
	for n := range d.Len() {
		if v := d.Read(n); v != 0 {
			t.Fatalf("Read(%d) after reset = %v", n, v)
		}
	}
	if d.Len() != 8 {
		t.Fatalf("reset changed capacity: %d", d.Len())
	}
}

func TestWriteReadZeroAlloc(t *testing.T) {
	d, _ := New(64)
	allocs := testing.AllocsPerRun(100, func() {
		d.Write(d.Read(17) * 0.5)
	})
	if allocs != 0 {
		t.Fatalf("allocs = %v, want 0", allocs)
	}
}

func BenchmarkReadWrite(b *testing.B) {
	d, _ := New(48000)
	x := 0.25
	for b.Loop() {
		y := d.Read(12000)
		d.Write(x + y*0.5)
	}
}
