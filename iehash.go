package iehash

import (
	"errors"
	"fmt"
	"unsafe"
)

// N.B.: Keys must match the ones Internet Explorer wrote, bit for bit.
// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// This file is the reference Go implementation of the key function Internet Explorer applies to
// URLs, filenames and cache keys before placing them into the hash table of an index.dat file.

// ErrOutOfBounds is returned for any input that no key can be computed from: fewer than four
// bytes, or a length the buffer does not hold.
var ErrOutOfBounds = errors.New("iehash: length out of bounds")

const (
	seedSize = 4
	flagMask = 0x3f /* index.dat keeps per-entry flags in these bits of a stored hash. */
	keyMask  = ^uint32(flagMask)
)

type lanes [4]byte

func seed(msg []byte) lanes {
	return lanes{padTable[msg[0]], padTable[msg[1]], padTable[msg[2]], padTable[msg[3]]}
}

func (l *lanes) fold(c byte) {
	l[0] = padTable[l[0]^c]
	l[1] = padTable[l[1]^c]
	l[2] = padTable[l[2]^c]
	l[3] = padTable[l[3]^c]
}

/* Little-endian byte order */
func (l *lanes) key() uint32 {
	return (uint32(l[0]) | uint32(l[1])<<8 | uint32(l[2])<<16 | uint32(l[3])<<24) & keyMask
}

// Calculate returns the key of the first ln bytes of msg. Scanning stops early at a NUL byte, and
// a single '/' directly before a NUL is ignored. The byte after the scanned one is looked at even
// when it lies past ln; only the end of msg itself counts as a NUL, so keys may be passed with or
// without their terminator.
func Calculate(msg []byte, ln int) (uint32, error) {
	if ln < seedSize || ln > len(msg) {
		return 0, fmt.Errorf("%w: %d of %d bytes", ErrOutOfBounds, ln, len(msg))
	}
	l := seed(msg)

	/* Bytes 1 through 3 seeded the lanes and are folded in again regardless. */
	for i := 1; i < ln; i++ {
		c := msg[i]
		if c == 0 {
			break
		}
		if c == '/' && (i+1 == len(msg) || msg[i+1] == 0) {
			break
		}
		l.fold(c)
	}
	return l.key(), nil
}

// Sum is Calculate over all of msg.
func Sum(msg []byte) (uint32, error) { return Calculate(msg, len(msg)) }

// SumString is Sum for strings; s is not copied.
func SumString(s string) (uint32, error) { return Sum(strToBytes(s)) }

// strToBytes views s as a byte slice without allocating; the result must never be written to.
func strToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// Seed returns the masked key the lanes hold before any byte has been folded into them.
func Seed(msg []byte) (uint32, error) {
	if len(msg) < seedSize {
		return 0, fmt.Errorf("%w: %d of %d bytes", ErrOutOfBounds, len(msg), seedSize)
	}
	l := seed(msg)
	return l.key(), nil
}

// Matches reports whether key equals a hash value read from an index.dat hash entry, whose low
// six bits carry flags rather than key material.
func Matches(key, stored uint32) bool { return key&keyMask == stored&keyMask }
