package statz

import (
	"fmt"
	"io"
	"strings"

	"github.com/aead/chacha20/chacha"
	"github.com/minio/sha256-simd"
	"github.com/p7r0x7/iehash"
	"github.com/zeebo/xxh3"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// This package is the hardly-rigorous statistics suite for iehash keys: it generates cache keys
// shaped like the ones found in real index.dat files, then measures mean bias per key bit and
// how evenly the keys spread over a hash table, next to xxh3 as a reference distribution.

const keyBits = 26 /* The six low bits of every key are zero. */

var prefixes = [...]string{"", "Visited: user@", ":2009010120090108: user@", "Cookie:user@"}
var tlds = [...]string{".com", ".org", ".net", ".gov", ".co.uk", ".de"}

// Func computes one key; iehash.Sum is the reference.
type Func func(msg []byte) (uint32, error)

// XXH3 truncates xxh3 to the shape of an iehash key.
func XXH3(msg []byte) (uint32, error) { return uint32(xxh3.Hash(msg)) &^ 0x3f, nil }

type source struct {
	stream *chacha.Cipher
	buf    [64]byte
	used   int
}

func (s *source) next() byte {
	if s.used == len(s.buf) {
		for i := range s.buf {
			s.buf[i] = 0
		}
		s.stream.XORKeyStream(s.buf[:], s.buf[:])
		s.used = 0
	}
	s.used++
	return s.buf[s.used-1]
}

func (s *source) word(b *strings.Builder, lo, hi int) {
	for i := lo + int(s.next())%(hi-lo+1); i > 0; i-- {
		b.WriteByte('a' + s.next()%26)
	}
}

// Corpus returns n synthetic cache keys drawn deterministically from seed.
func Corpus(seed [32]byte, n int) ([][]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("statz: corpus size %d", n)
	}
	stream, err := chacha.NewCipher(make([]byte, chacha.NonceSize), seed[:], 20)
	if err != nil {
		return nil, err
	}
	s := &source{stream: stream, used: 64}

	corpus, b := make([][]byte, n), strings.Builder{}
	for i := range corpus {
		b.Reset()
		b.WriteString(prefixes[s.next()%byte(len(prefixes))])
		if s.next()&1 == 0 {
			b.WriteString("http://")
		} else {
			b.WriteString("https://")
		}
		b.WriteString("www.")
		s.word(&b, 3, 12)
		b.WriteString(tlds[s.next()%byte(len(tlds))])
		for j := s.next() % 4; j > 0; j-- {
			b.WriteByte('/')
			s.word(&b, 1, 10)
		}
		if s.next()&1 == 0 {
			b.WriteByte('/')
		}
		corpus[i] = []byte(b.String())
	}
	return corpus, nil
}

// Fingerprint identifies a corpus so a report can be reproduced and compared.
func Fingerprint(corpus [][]byte) [32]byte {
	h := sha256.New()
	for _, msg := range corpus {
		h.Write(msg)
		h.Write([]byte{0})
	}
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

// Keys applies f to every message of corpus.
func Keys(corpus [][]byte, f Func) ([]uint32, error) {
	keys := make([]uint32, len(corpus))
	for i, msg := range corpus {
		key, err := f(msg)
		if err != nil {
			return nil, fmt.Errorf("statz: key %d: %w", i, err)
		}
		keys[i] = key
	}
	return keys, nil
}

// MeanBias returns the mean distance, in percent, of each significant key bit from being set in
// exactly half of keys; 0 is ideal and 100 means every bit is constant.
func MeanBias(keys []uint32) float64 {
	if len(keys) == 0 {
		return 0
	}
	var tally [keyBits]int
	for _, key := range keys {
		for i := range tally {
			tally[i] += int(key >> (32 - keyBits + i) & 1)
		}
	}
	half, total := float64(len(keys))/2, 0.0
	for _, t := range tally {
		d := float64(t) - half
		if d < 0 {
			d = -d
		}
		total += d
	}
	return total / keyBits / half * 100
}

// Occupancy describes how keys spread over a table of Buckets slots.
type Occupancy struct {
	Buckets, Used, Collisions, MaxLoad int
}

// Buckets places every key into one of n buckets by its significant bits.
func Buckets(keys []uint32, n int) Occupancy {
	if n < 1 {
		n = 1
	}
	o, load := Occupancy{Buckets: n}, make([]int, n)
	for _, key := range keys {
		slot := int((key >> (32 - keyBits)) % uint32(n))
		if load[slot] == 0 {
			o.Used++
		} else {
			o.Collisions++
		}
		if load[slot]++; load[slot] > o.MaxLoad {
			o.MaxLoad = load[slot]
		}
	}
	return o
}

// Report holds the statistics of one key function over one corpus.
type Report struct {
	Name string
	Bias float64
	Occupancy
}

// Run builds a corpus of n keys and reports on iehash and xxh3 over it.
func Run(seed [32]byte, n, buckets int) ([]Report, [32]byte, error) {
	corpus, err := Corpus(seed, n)
	if err != nil {
		return nil, [32]byte{}, err
	}
	funcs := []struct {
		name string
		f    Func
	}{
		{"github.com/p7r0x7/iehash", iehash.Sum},
		{"github.com/zeebo/xxh3", XXH3},
	}

	reports := make([]Report, 0, len(funcs))
	for _, v := range funcs {
		keys, err := Keys(corpus, v.f)
		if err != nil {
			return nil, [32]byte{}, err
		}
		reports = append(reports, Report{v.name, MeanBias(keys), Buckets(keys, buckets)})
	}
	return reports, Fingerprint(corpus), nil
}

// Print writes reports as a table.
func Print(w io.Writer, reports []Report) {
	fmt.Fprintln(w, "                         bias     used  collide  maxload")
	for _, r := range reports {
		fmt.Fprintf(w, "%-24s %s %8d %8d %8d\n",
			r.Name, FormatFloats(r.Bias), r.Used, r.Collisions, r.MaxLoad)
	}
}

// FormatFloats right-aligns each value in eight columns with as much precision as fits.
func FormatFloats(f ...float64) string {
	var str []string
	for _, v := range f {
		var style string
		switch whole := float64(int64(v)) == v; {
		case v > 1e8 || (v < 1e-6 && !whole):
			style = "%8.3g"
		case v <= 1e1 && !whole:
			style = "%8.6f"
		case v <= 1e2 && !whole:
			style = "%8.5f"
		case v <= 1e3 && !whole:
			style = "%8.4f"
		case v <= 1e4 && !whole:
			style = "%8.3f"
		case v <= 1e5 && !whole:
			style = "%8.2f"
		case v <= 1e6 && !whole:
			style = "%8.1f"
		default:
			style = "%8.f"
		}
		str = append(str, fmt.Sprintf(style, v))
	}
	return strings.Join(str, "  ")
}
