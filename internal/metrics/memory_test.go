package metrics

import "testing"

func TestRuntimeSampler_Sample(t *testing.T) {
	t.Parallel()

	snap := NewRuntimeSampler().Sample()

	if snap.HeapAlloc == 0 {
		t.Error("HeapAlloc should be > 0")
	}
	if snap.Sys == 0 {
		t.Error("Sys should be > 0")
	}
	if snap.Goroutines < 1 {
		t.Errorf("Goroutines = %d, want >= 1", snap.Goroutines)
	}
}

func TestRuntimeSampler_SysMonotonic(t *testing.T) {
	t.Parallel()

	s := NewRuntimeSampler()
	before := s.Sample()
	_ = make([]byte, 1024*1024)
	after := s.Sample()

	if after.Sys < before.Sys {
		t.Error("Sys should not decrease between samples")
	}
}
