package metrics

import "runtime"

// RuntimeSnapshot is a point-in-time reading of the process footprint.
type RuntimeSnapshot struct {
	HeapAlloc  uint64 // bytes of allocated heap objects
	Sys        uint64 // total bytes obtained from the OS
	NumGC      uint32 // completed GC cycles
	Goroutines int    // live goroutines, including one per live-feed client
}

// RuntimeSampler reads runtime statistics. It is stateless; the type exists
// so callers can hold a sampler and tests can substitute readings.
type RuntimeSampler struct{}

// NewRuntimeSampler creates a RuntimeSampler.
func NewRuntimeSampler() *RuntimeSampler {
	return &RuntimeSampler{}
}

// Sample reads the current statistics.
func (*RuntimeSampler) Sample() RuntimeSnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return RuntimeSnapshot{
		HeapAlloc:  m.HeapAlloc,
		Sys:        m.Sys,
		NumGC:      m.NumGC,
		Goroutines: runtime.NumGoroutine(),
	}
}
