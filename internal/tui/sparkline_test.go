package tui

import (
	"testing"
)

func TestRingBuffer_PushAndSlice(t *testing.T) {
	rb := NewRingBuffer(3)
	rb.Push(1)
	rb.Push(2)
	rb.Push(3)

	got := rb.Slice()
	want := []float64{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %f, want %f", i, got[i], want[i])
		}
	}
}

func TestRingBuffer_Overflow(t *testing.T) {
	rb := NewRingBuffer(3)
	rb.Push(1)
	rb.Push(2)
	rb.Push(3)
	rb.Push(4) // overwrites 1

	got := rb.Slice()
	want := []float64{2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %f, want %f", i, got[i], want[i])
		}
	}
}

func TestRingBuffer_Last(t *testing.T) {
	rb := NewRingBuffer(5)
	if rb.Last() != 0 {
		t.Error("expected 0 for empty buffer")
	}
	rb.Push(10)
	rb.Push(20)
	rb.Push(30)
	if rb.Last() != 30 {
		t.Errorf("expected 30, got %f", rb.Last())
	}
}

func TestRingBuffer_Last_AfterOverflow(t *testing.T) {
	rb := NewRingBuffer(2)
	rb.Push(10)
	rb.Push(20)
	rb.Push(30) // overwrites 10
	if rb.Last() != 30 {
		t.Errorf("expected 30, got %f", rb.Last())
	}
}

func TestRingBuffer_Resize_Grow(t *testing.T) {
	rb := NewRingBuffer(3)
	rb.Push(1)
	rb.Push(2)
	rb.Push(3)
	rb.Resize(5)

	if rb.Cap() != 5 {
		t.Errorf("expected cap 5, got %d", rb.Cap())
	}
	got := rb.Slice()
	want := []float64{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %f, want %f", i, got[i], want[i])
		}
	}
}

func TestRingBuffer_Resize_Shrink(t *testing.T) {
	rb := NewRingBuffer(5)
	rb.Push(1)
	rb.Push(2)
	rb.Push(3)
	rb.Push(4)
	rb.Push(5)
	rb.Resize(3) // keep most recent: 3, 4, 5

	got := rb.Slice()
	want := []float64{3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %f, want %f", i, got[i], want[i])
		}
	}
}

func TestRingBuffer_ZeroCapacity(t *testing.T) {
	rb := NewRingBuffer(0)
	if rb.Cap() != 1 {
		t.Errorf("expected min cap 1, got %d", rb.Cap())
	}
	rb.Push(42)
	if rb.Last() != 42 {
		t.Errorf("expected 42, got %f", rb.Last())
	}
}

func TestRingBuffer_Resize_SameCapacity(t *testing.T) {
	rb := NewRingBuffer(3)
	rb.Push(1)
	rb.Push(2)
	rb.Resize(3) // no-op

	if rb.Len() != 2 {
		t.Errorf("expected len 2 after same-cap resize, got %d", rb.Len())
	}
}

func TestRingBuffer_Max(t *testing.T) {
	rb := NewRingBuffer(3)
	if rb.Max() != 0 {
		t.Error("expected 0 for empty buffer")
	}
	rb.Push(-2)
	if rb.Max() != -2 {
		t.Errorf("expected -2, got %f", rb.Max())
	}
	rb.Push(7)
	rb.Push(3)
	rb.Push(1) // evicts -2
	if rb.Max() != 7 {
		t.Errorf("expected 7, got %f", rb.Max())
	}
}

func TestRenderSparkline_Empty(t *testing.T) {
	if got := RenderSparkline(nil, 10); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestRenderSparkline_AllZero(t *testing.T) {
	got := RenderSparkline([]float64{0, 0, 0}, 0)
	if got != "▁▁▁" {
		t.Errorf("expected lowest blocks, got %q", got)
	}
}

func TestRenderSparkline_AutoCeiling(t *testing.T) {
	got := []rune(RenderSparkline([]float64{0, 2, 4}, 0))
	if got[0] != '▁' || got[2] != '█' {
		t.Errorf("expected lowest then highest block, got %q", string(got))
	}
	if got[1] != '▄' {
		t.Errorf("expected mid block for half the ceiling, got %q", string(got[1]))
	}
}

func TestRenderSparkline_FixedCeiling(t *testing.T) {
	got := RenderSparkline([]float64{10, 10}, 10)
	if got != "██" {
		t.Errorf("expected full blocks at the ceiling, got %q", got)
	}
	got = RenderSparkline([]float64{5}, 10)
	if got != "▄" {
		t.Errorf("expected mid block, got %q", got)
	}
}

func TestRenderSparkline_Clamping(t *testing.T) {
	got := []rune(RenderSparkline([]float64{-5, 50}, 10))
	if got[0] != '▁' {
		t.Errorf("negative value should clamp to lowest block, got %q", string(got[0]))
	}
	if got[1] != '█' {
		t.Errorf("value above ceiling should clamp to highest block, got %q", string(got[1]))
	}
}
