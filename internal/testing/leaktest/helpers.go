// Package leaktest checks that code under test leaves nothing running or
// retained behind it. Formula tests use it to show calls have no side effects.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// settle gives finished goroutines a chance to exit before counting
func settle() {
	runtime.Gosched()
	runtime.GC()
	time.Sleep(20 * time.Millisecond)
}

// Goroutines records the goroutine count so a later Check can compare
type Goroutines struct {
	before int
	t      testing.TB
}

// TrackGoroutines snapshots the current goroutine count
func TrackGoroutines(t testing.TB) *Goroutines {
	t.Helper()
	settle()
	return &Goroutines{before: runtime.NumGoroutine(), t: t}
}

// Check fails the test when more than tolerance goroutines outlived the snapshot
func (g *Goroutines) Check(tolerance int) {
	g.t.Helper()
	settle()

	after := runtime.NumGoroutine()
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("goroutines left running: before=%d after=%d leaked=%d tolerance=%d",
			g.before, after, leaked, tolerance)
	}
}

// Heap records live heap bytes so a later Check can compare
type Heap struct {
	before uint64
	t      testing.TB
}

// TrackHeap snapshots live heap bytes after a collection
func TrackHeap(t testing.TB) *Heap {
	t.Helper()
	return &Heap{before: liveHeap(), t: t}
}

// Check fails the test when the live heap grew by more than maxGrowthKB
func (h *Heap) Check(maxGrowthKB float64) {
	h.t.Helper()

	after := liveHeap()
	growthKB := (float64(after) - float64(h.before)) / 1024
	if growthKB > maxGrowthKB {
		h.t.Errorf("heap retained after call: before=%dB after=%dB growth=%.1fKB max=%.1fKB",
			h.before, after, growthKB, maxGrowthKB)
	}
}

func liveHeap() uint64 {
	settle()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.HeapAlloc
}

// NoSideEffects runs fn and fails when it leaves goroutines running or
// retains more than maxGrowthKB of heap
func NoSideEffects(t testing.TB, maxGrowthKB float64, fn func()) {
	t.Helper()

	goroutines := TrackGoroutines(t)
	heap := TrackHeap(t)
	fn()
	heap.Check(maxGrowthKB)
	goroutines.Check(0)
}
