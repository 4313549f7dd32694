package iehash

import (
	"bytes"
	"errors"
	"testing"
)

func TestDigest_Vectors(t *testing.T) {
	for _, v := range vectors {
		if v.ln < len(v.msg) && v.msg[v.ln-1] == '/' {
			/* A digest cannot see past its last byte. */
			continue
		}
		msg := []byte(v.msg)[:v.ln]
		for split := 0; split <= len(msg); split++ {
			d := New()
			d.Write(msg[:split])
			d.Write(msg[split:])
			if key, err := d.Key(); err != nil || key != v.key {
				t.Errorf("%s split at %d: Key() = %#08x, %v, want %#08x", v.name, split, key, err, v.key)
			}
		}

		d := New()
		for _, c := range msg {
			d.Write([]byte{c})
		}
		if d.Sum32() != v.key {
			t.Errorf("%s bytewise: Sum32() = %#08x, want %#08x", v.name, d.Sum32(), v.key)
		}
	}
}

func TestDigest_Sum(t *testing.T) {
	d := New()
	d.WriteString("abcd")
	sum := d.Sum([]byte{0xee})
	if want := []byte{0xee, 0x00, 0x97, 0x2c, 0xa7}; !bytes.Equal(sum, want) {
		t.Errorf("Sum() = %x, want %x", sum, want)
	}
	if !bytes.Equal(d.Sum(nil), sum[1:]) {
		t.Error("Sum() changed the digest state")
	}

	/* A slash is only trailing once nothing follows it. */
	d.WriteString("/")
	if d.Sum32() != 0xa72c9700 {
		t.Errorf("pending slash: Sum32() = %#08x, want 0xa72c9700", d.Sum32())
	}
	d.WriteString("e")
	if d.Sum32() != 0x25049d00 {
		t.Errorf("folded slash: Sum32() = %#08x, want 0x25049d00", d.Sum32())
	}
}

func TestDigest_EndsAtLastByte(t *testing.T) {
	d := New()
	d.WriteString("abcd/")
	want, _ := Calculate([]byte("abcd/e"), 6)
	if d.Write([]byte("e")); d.Sum32() != want {
		t.Errorf("Sum32() = %#08x, want %#08x", d.Sum32(), want)
	}
	d.Reset()
	d.WriteString("abcd/")
	if want, _ := Sum([]byte("abcd/")); d.Sum32() != want || want != 0xa72c9700 {
		t.Errorf("Sum32() = %#08x, Sum() = %#08x, want 0xa72c9700", d.Sum32(), want)
	}
}

func TestDigest_Short(t *testing.T) {
	d := New()
	d.WriteString("abc")
	if _, err := d.Key(); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Key() error = %v, want ErrOutOfBounds", err)
	}
	if d.Sum32() != 0 {
		t.Errorf("Sum32() = %#08x, want 0", d.Sum32())
	}
	if d.Size() != 4 || d.BlockSize() != 1 {
		t.Errorf("Size() = %d, BlockSize() = %d", d.Size(), d.BlockSize())
	}
}

func TestDigest_Reset(t *testing.T) {
	d := New()
	d.WriteString("abcd\x00ignored")
	d.Reset()
	d.WriteString("http://www.example.com/")
	if d.Sum32() != 0xcd8080c0 {
		t.Errorf("Sum32() = %#08x, want 0xcd8080c0", d.Sum32())
	}
}

func FuzzDigest(f *testing.F) {
	for _, v := range vectors {
		f.Add([]byte(v.msg), uint8(v.ln))
	}
	f.Fuzz(func(t *testing.T, msg []byte, split uint8) {
		want, err := Sum(msg)
		if err != nil {
			if len(msg) >= 4 {
				t.Fatalf("Sum(%q) error = %v", msg, err)
			}
			return
		}
		if want&0x3f != 0 {
			t.Fatalf("Sum(%q) = %#08x has flag bits set", msg, want)
		}
		at := int(split)
		if at > len(msg) {
			at = len(msg)
		}
		d := New()
		d.Write(msg[:at])
		d.Write(msg[at:])
		if got := d.Sum32(); got != want {
			t.Fatalf("Digest(%q) = %#08x, Sum() = %#08x", msg, got, want)
		}
	})
}
