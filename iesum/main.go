package main

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	. "fmt"
	"github.com/p7r0x7/iehash"
	"github.com/p7r0x7/iehash/statz"
	"github.com/p7r0x7/vainpath"
	"github.com/zeebo/blake3"
	"io"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const n = "\n"
const success, failure, invalid = 0, 1, 2

var warnings, mismatches = 0, 0

func main() { os.Exit(program(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)) }

// help prints a usage menu. To consistently render this menu in most terminal windows, its content
// should be no wider than 80 columns.
func help(f interface{ PrintDefaults() }, stderr io.Writer) {
	origin, err := os.Executable()
	if err != nil {
		origin = "iesum" /* Default binary name */
	} else {
		origin = filepath.Base(origin)
	}
	name := vainpath.Trim(origin, "…", 12)
	spaces := strings.Repeat(" ", utf8.RuneCountInString(name)+3)
	Fprint(stderr, yell, "Internet Explorer index.dat hash keys, as IE computes them.", zero, n+n+
		"Usage:"+n+
		"  ", name, " [-h]"+n,
		spaces, "[-bdtx] [-c <uint>] [--quiet|no-codes] [--strict|raw] -|PATH..."+n,
		spaces, "[-bdtx] [-c <uint>] [--quiet|no-codes] [--strict|raw] -s STRING..."+n,
		spaces, "--statz <uint> [--buckets <uint>] [--statz-seed STRING]"+n+n+
			"Options:"+n)
	f.PrintDefaults()
	Fprint(stderr, n+"Keys are computed up to the first NUL byte of each message, and a single `/`"+
		n+"ending a message is ignored. `-` is treated as a reference to ", os.Stdin.Name(), "."+n)
}

// program is the command-line interface for iehash: it keys an unlimited number of files, streams
// or strings and prints one key per argument.
func program(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	warnings, mismatches = 0, 0
	f, err := setup(args, stderr)
	if err != nil {
		return invalid
	}

	if pDebug {
		stop, err := profile()
		if err != nil {
			Fprint(stderr, purp, err, zero, n)
			return invalid
		}
		defer stop()
	}
	if pStatz > 0 {
		return report(stdout, stderr)
	}
	if pHelp || f.NArg() == 0 {
		help(f, stderr)
		return success
	}

	var check uint64
	if pCheck != "" {
		if check, err = strconv.ParseUint(pCheck, 0, 32); err != nil {
			Fprint(stderr, purp, "Invalid --check value: ", pCheck, zero, n)
			return invalid
		}
	}

	d := iehash.New()
	for _, target := range f.Args() {
		d.Reset()
		start, delta := time.Now(), ""

		if err := read(d, target, stdin); err != nil {
			warn(stderr, target, err)
			continue
		}
		key, err := d.Key()
		if err != nil {
			warn(stderr, target, err)
			continue
		}

		if pTime {
			t := time.Since(start)
			if t.Microseconds() > 99 {
				t = t.Truncate(10 * time.Microsecond)
			}
			delta = " (" + t.String() + ")"
		}
		mark := ""
		if pCheck != "" && !iehash.Matches(key, uint32(check)) {
			mismatches++
			mark = " " + purp + "≠ " + pCheck + zero
		}

		if pRaw {
			stdout.Write(d.Sum(nil))
			continue
		}
		str := format(d)
		switch {
		case pQuiet:
			Fprint(stdout, str, n)
		case pString:
			Fprint(stdout, yell, str, zero, `  "`, target, `"`, mark, delta, n)
		case pNoCodes:
			Fprint(stdout, str, `  `, filepath.Clean(target), mark, delta, n)
		default:
			Fprint(stdout, yell, str, zero, `  `, und, vainpath.Simplify(target), zero, mark, delta, n)
		}
	}

	if !(pQuiet || pRaw) {
		if warnings == 1 {
			Fprint(stderr, "1 ", purp, "target is inaccessible or too short to key.", zero, n)
		} else if warnings > 1 {
			Fprint(stderr, warnings, " ", purp, "targets are inaccessible or too short to key.", zero, n)
		}
	}
	if warnings > 0 || mismatches > 0 {
		return failure
	}
	return success
}

// read writes the message named by target into d.
func read(d *iehash.Digest, target string, stdin io.Reader) error {
	var r io.Reader
	switch {
	case pString:
		r = strings.NewReader(target)
	case target == "-" || target == os.Stdin.Name():
		r = stdin
	default:
		file, err := os.Open(target)
		if err != nil {
			return err
		}
		defer file.Close()
		r = file
	}

	if !pHex {
		_, err := io.Copy(d, r)
		return err
	}
	text, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	msg, err := hex.DecodeString(strings.Join(strings.Fields(string(text)), ""))
	if err != nil {
		return err
	}
	_, err = d.Write(msg)
	return err
}

func format(d *iehash.Digest) string {
	switch {
	case pBase64:
		return base64.StdEncoding.EncodeToString(d.Sum(nil))
	case pDecimal:
		return strconv.FormatUint(uint64(d.Sum32()), 10)
	default:
		return Sprintf("%08x", d.Sum32())
	}
}

// report prints statz over a corpus derived from --statz-seed.
func report(stdout, stderr io.Writer) int {
	seed := blake3.Sum256([]byte(pStatzSeed))
	reports, sum, err := statz.Run(seed, int(pStatz), int(pBuckets))
	if err != nil {
		warn(stderr, pStatzSeed, err)
		return failure
	}
	Fprint(stdout, yell, pStatz, " keys", zero, " into ", pBuckets, " buckets, corpus ", und,
		hex.EncodeToString(sum[:8]), zero, n+n)
	statz.Print(stdout, reports)
	return success
}

func profile() (func(), error) {
	cf, err := os.Create("cpu.prof")
	if err != nil {
		return nil, err
	}
	if err = pprof.StartCPUProfile(cf); err != nil {
		cf.Close()
		return nil, err
	}
	return func() {
		pprof.StopCPUProfile()
		cf.Close()
		for _, name := range [...]string{"goroutine", "block", "allocs", "mutex"} {
			if pf, err := os.Create(name + ".prof"); err == nil {
				_ = pprof.Lookup(name).WriteTo(pf, 0)
				pf.Close()
			}
		}
	}, nil
}

func warn(stderr io.Writer, target string, err error) {
	if pStrict {
		panic(err)
	}
	warnings++
	switch {
	case pQuiet:
	case errors.Is(err, iehash.ErrOutOfBounds):
		Fprint(stderr, purp, target, ": fewer than 4 bytes", zero, n)
	default:
		Fprint(stderr, purp, target, ": ", err, zero, n)
	}
}
