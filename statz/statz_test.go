package statz

import (
	"bytes"
	"strings"
	"testing"
)

func TestCorpus(t *testing.T) {
	a, err := Corpus([32]byte{1}, 500)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Corpus([32]byte{1}, 500)
	c, _ := Corpus([32]byte{2}, 500)
	if len(a) != 500 {
		t.Fatalf("len(Corpus()) = %d, want 500", len(a))
	}

	differ := false
	for i := range a {
		if !bytes.Equal(a[i], b[i]) {
			t.Fatalf("key %d differs under the same seed: %q, %q", i, a[i], b[i])
		}
		if !bytes.Equal(a[i], c[i]) {
			differ = true
		}
		if len(a[i]) < 4 || bytes.IndexByte(a[i], 0) >= 0 || !bytes.Contains(a[i], []byte("://www.")) {
			t.Errorf("malformed key %q", a[i])
		}
	}
	if !differ {
		t.Error("different seeds produced the same corpus")
	}
	if Fingerprint(a) != Fingerprint(b) || Fingerprint(a) == Fingerprint(c) {
		t.Error("fingerprints do not follow the corpus")
	}
	if _, err := Corpus([32]byte{}, -1); err == nil {
		t.Error("negative corpus size accepted")
	}
}

func TestMeanBias(t *testing.T) {
	if b := MeanBias([]uint32{0, 0, 0, 0}); b != 100 {
		t.Errorf("constant keys: MeanBias() = %v, want 100", b)
	}
	if b := MeanBias([]uint32{0, 0xffffffc0}); b != 0 {
		t.Errorf("complementary keys: MeanBias() = %v, want 0", b)
	}
	if b := MeanBias(nil); b != 0 {
		t.Errorf("no keys: MeanBias() = %v, want 0", b)
	}
}

func TestBuckets(t *testing.T) {
	keys := []uint32{0 << 6, 1 << 6, 1 << 6, 5 << 6, 2 << 6}
	o := Buckets(keys, 4)
	if want := (Occupancy{Buckets: 4, Used: 3, Collisions: 2, MaxLoad: 3}); o != want {
		t.Errorf("Buckets() = %+v, want %+v", o, want)
	}
}

func TestRun(t *testing.T) {
	reports, sum, err := Run([32]byte{}, 2000, 1024)
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 2 || sum == [32]byte{} {
		t.Fatalf("Run() = %d reports, fingerprint %x", len(reports), sum)
	}
	for _, r := range reports {
		if r.Bias < 0 || r.Bias >= 100 {
			t.Errorf("%s: bias %v out of range", r.Name, r.Bias)
		}
		if r.Used+r.Collisions != 2000 || r.MaxLoad < 2 {
			t.Errorf("%s: occupancy %+v", r.Name, r.Occupancy)
		}
	}

	var b strings.Builder
	Print(&b, reports)
	if !strings.Contains(b.String(), "github.com/p7r0x7/iehash") {
		t.Errorf("Print() = %q", b.String())
	}
}

func TestFormatFloats(t *testing.T) {
	if s := FormatFloats(1.5, 42); s != "1.500000        42" {
		t.Errorf("FormatFloats() = %q", s)
	}
}
