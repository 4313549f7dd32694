package main

import (
	. "fmt"
	"github.com/dterei/gotsc"
	"github.com/minio/sha256-simd"
	"github.com/p7r0x7/iehash"
	"github.com/p7r0x7/iehash/statz"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
	"runtime"
	"sync"
	"testing"
	"time"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

/* Cache keys are short; the largest size stands in for a data: URL. */
var sizes = [...]int{16, 64, 256, 4 << 10}
var bytes, calltime = []byte(nil), gotsc.TSCOverhead()

func BenchmarkIEHash(b *testing.B) {
	b.SetBytes(int64(len(bytes)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		_, _ = iehash.Calculate(bytes, len(bytes))
	}
}

func BenchmarkDigest(b *testing.B) {
	d := iehash.New()
	b.SetBytes(int64(len(bytes)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		d.Write(bytes)
		d.Sum32()
		d.Reset()
	}
}

func BenchmarkXXH3(b *testing.B) {
	b.SetBytes(int64(len(bytes)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		xxh3.Hash(bytes)
	}
}

func BenchmarkSHA256(b *testing.B) {
	b.SetBytes(int64(len(bytes)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		sha256.Sum256(bytes)
	}
}

func BenchmarkBlake3(b *testing.B) {
	b.SetBytes(int64(len(bytes)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		blake3.Sum256(bytes)
	}
}

func benchAlg(alg func(b *testing.B)) {
	const s = len(sizes)
	throughputs, speeds, usages := make([]float64, s), make([]float64, s), make([]float64, s)

	for i, v := range sizes {
		/* Printable, NUL-free input so iehash scans all of it. */
		bytes = make([]byte, v)
		for i2 := range bytes {
			bytes[i2] = 'a' + byte(i2%26)
		}

		totalHz, polls, mut, done := uint64(0), uint64(0), &sync.Mutex{}, make(chan struct{})
		var polling sync.WaitGroup
		if calltime > 0 {
			polling.Add(1)
			go func() {
				defer polling.Done()
				for {
					select {
					case <-done:
						return
					default:
					}
					tsc1 := gotsc.BenchStart()
					time.Sleep(time.Millisecond)
					tsc2 := gotsc.BenchEnd()

					mut.Lock()
					totalHz += tsc2 - tsc1 - calltime
					polls++
					mut.Unlock()

					time.Sleep(time.Millisecond * 9)
				}
			}()
		}
		r := testing.Benchmark(alg)
		close(done)
		polling.Wait()
		mut.Lock()
		totalHz *= 1000

		throughputs[i] = float64(r.Bytes*int64(r.N)) / r.T.Seconds() /* B/s */
		if polls > 0 {
			speeds[i] = float64(totalHz) / float64(polls) / throughputs[i]
		}
		throughputs[i] /= 1e6 /* MB/s */
		usages[i] = float64(r.AllocedBytesPerOp())
		mut.Unlock()
	}

	Println("Speed " + statz.FormatFloats(throughputs...) + "   MB/s")
	if calltime > 0 {
		Println("      " + statz.FormatFloats(speeds...) + "   cpb")
	}
	Println("Usage " + statz.FormatFloats(usages...) + "   B/op\n")
}

func main() {
	Printf("Running Statz on %d CPUs!\n%s/%s\n\n"+
		"             16B        64B       256B        4K\n",
		runtime.NumCPU(), runtime.GOOS, runtime.GOARCH)
	t := time.Now()

	Println("github.com/p7r0x7/iehash")
	benchAlg(BenchmarkIEHash)

	Println("github.com/p7r0x7/iehash (Digest)")
	benchAlg(BenchmarkDigest)

	Println("github.com/zeebo/xxh3")
	benchAlg(BenchmarkXXH3)

	Println("github.com/minio/sha256-simd")
	benchAlg(BenchmarkSHA256)

	Println("github.com/zeebo/blake3")
	benchAlg(BenchmarkBlake3)

	Println("Finished in " + time.Since(t).Truncate(time.Millisecond).String() + ".")
}
