package main

import (
	"runtime"
	"testing"
	"time"
)

func TestBenchAlg_StopsPolling(t *testing.T) {
	if testing.Short() {
		t.Skip("runs a benchmark per size")
	}
	before := runtime.NumGoroutine()
	benchAlg(func(b *testing.B) {
		for i := b.N; i > 0; i-- {
		}
	})

	/* Give any stray goroutine the length of one polling interval to show up. */
	time.Sleep(20 * time.Millisecond)
	if after := runtime.NumGoroutine(); after > before {
		t.Errorf("%d goroutines before benchAlg, %d after", before, after)
	}
}
