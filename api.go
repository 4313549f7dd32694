package iehash

import (
	"fmt"
	"hash"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// This file contains a Go-specific API implementing the standard hash.Hash32 interface.

// Digest computes keys incrementally. Bytes written across any number of Write calls produce the
// same key as one Calculate over their concatenation; its state never grows with the input.
type Digest struct {
	head           [seedSize]byte
	n              int
	l              lanes
	slash, stopped bool
}

var _ hash.Hash32 = (*Digest)(nil)

func New() *Digest { return &Digest{} }

func (d *Digest) Size() int { return 4 }

func (d *Digest) BlockSize() int { return 1 }

func (d *Digest) Write(buf []byte) (int, error) {
	for _, c := range buf {
		if d.stopped {
			/* Anything after the terminator is irrelevant to the key. */
			return len(buf), nil
		}
		if d.n < seedSize {
			d.head[d.n] = c
			d.n++
			if d.n == seedSize {
				d.l = seed(d.head[:])
				for _, c := range d.head[1:] {
					d.scan(c)
				}
			}
			continue
		}
		d.scan(c)
	}
	return len(buf), nil
}

func (d *Digest) WriteString(s string) (int, error) {
	return d.Write(strToBytes(s))
}

func (d *Digest) scan(c byte) {
	if d.stopped {
		return
	}
	if d.slash {
		d.slash = false
		if c == 0 {
			d.stopped = true
			return
		}
		d.l.fold('/')
	}
	switch c {
	case 0:
		d.stopped = true
	case '/':
		/* Deferred until the next byte shows whether this one trails the string. */
		d.slash = true
	default:
		d.l.fold(c)
	}
}

// Key returns the key of everything written so far. A pending '/' is treated as trailing, as it
// would be if the stream ended here.
func (d *Digest) Key() (uint32, error) {
	if d.n < seedSize {
		return 0, fmt.Errorf("%w: %d of %d bytes", ErrOutOfBounds, d.n, seedSize)
	}
	return d.l.key(), nil
}

// Sum32 returns 0 when fewer than four bytes have been written; use Key to tell that case apart.
func (d *Digest) Sum32() uint32 {
	key, _ := d.Key()
	return key
}

// Sum appends the key in the little-endian order index.dat stores it in.
func (d *Digest) Sum(buf []byte) []byte {
	key := d.Sum32()
	return append(buf, byte(key), byte(key>>8), byte(key>>16), byte(key>>24))
}

func (d *Digest) Reset() { *d = Digest{} }
