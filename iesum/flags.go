package main

import (
	. "github.com/spf13/pflag"
	"io"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var pCheck, pStatzSeed, pNoCodesDefault = "", "", !consoleCodes()
var pStatz, pBuckets uint
var pHelp, pBase64, pDecimal, pHex, pNoCodes, pQuiet, pRaw, pStrict, pString, pTime, pDebug bool
var yell, purp, und, zero string

// setup parses args into the p* options. Formatting options are scanned for first because they
// change how the help text of every other flag renders.
func setup(args []string, stderr io.Writer) (*FlagSet, error) {
	pNoCodes, pQuiet = pNoCodesDefault, false
	yell, purp, und, zero = "\033[33m", "\033[35m", "\033[4m", "\033[0m"
	for _, arg := range args {
		switch arg {
		case "--no-codes=false":
			pNoCodes = false
		case "--quiet", "--quiet=true":
			pNoCodes, pQuiet = true, true
		case "--no-codes", "--no-codes=true":
			pNoCodes = true
		}
	}
	if pNoCodes {
		yell, purp, und, zero = "", "", "", ""
	}
	f := NewFlagSet("iesum", ContinueOnError)
	f.SetOutput(stderr)

	f.BoolVarP(&pHelp, "help", "h", false,
		purp+"print this help menu"+zero+n)

	f.BoolVarP(&pBase64, "base64", "b", false,
		purp+"render keys in base64, little-endian"+zero+" (default hex)")

	f.UintVar(&pBuckets, "buckets", 4096,
		purp+"hash table size assumed by --statz"+zero)

	f.StringVarP(&pCheck, "check", "c", "",
		purp+"compare every key with a hash value read from index.dat,"+zero+
			n+purp+"ignoring its flag bits (base-prefixed or decimal)"+zero)

	f.BoolVarP(&pDecimal, "decimal", "d", false,
		purp+"render keys in decimal"+zero)

	f.BoolVar(&pDebug, "debug", false, "")
	_ = f.MarkHidden("debug")

	f.BoolVarP(&pHex, "hex", "x", false,
		purp+"decode input as hexadecimal first; whitespace is ignored"+zero)

	f.Bool("no-codes", pNoCodesDefault,
		purp+"print to console w/o formatting codes or simplified"+zero+
			n+purp+"filepaths"+zero)

	f.Bool("quiet", false,
		purp+"suppress non-breaking errors and print ONLY keys"+zero+
			n+"(enables --no-codes)")

	f.BoolVar(&pRaw, "raw", false,
		purp+"sequentially return the little-endian bytes of each key"+zero+
			n+"(enables --strict)")

	f.UintVar(&pStatz, "statz", 0,
		purp+"report key statistics over this many generated cache keys"+zero)

	f.StringVar(&pStatzSeed, "statz-seed", "iehash",
		purp+"phrase the --statz corpus is derived from"+zero)

	f.BoolVar(&pStrict, "strict", false,
		purp+"cause iesum to panic on any error"+zero)

	f.BoolVarP(&pString, "string", "s", false,
		purp+"process arguments instead as strings to be keyed"+zero)

	f.BoolVarP(&pTime, "time", "t", false,
		purp+"print time taken to read and key each message"+zero)

	/* Order flags alphabetically except for help, which is hoisted to the top. */
	f.SortFlags = false
	err := f.Parse(args)
	pStrict = pStrict || pRaw || pDebug
	return f, err
}
