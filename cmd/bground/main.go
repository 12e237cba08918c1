// Command bground subtracts a background from a one-dimensional signal.
//
// Usage:
//
//	bground anchor [flags] data.txt
//	bground auto   [flags] data.txt
//	bground trim   [flags] data.txt
//	bground points [flags] data.txt
//
// The anchor command interpolates the points stored in an anchor file
// (data.bkg by default), auto fits an exponential decay, trim shows which
// window the automatic mode would use and points edits an anchor file.
//
// Examples:
//
//	bground points --add 12.5 --add 40 --add 88 --kind cubic ed2.txt
//	bground anchor ed2.txt
//	bground auto --xlsx ed2.xlsx --plot ed2.png ed2.txt
//	bground --config bground.yaml --log-level debug auto ed2.txt
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
