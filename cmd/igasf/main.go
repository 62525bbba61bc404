// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// igasf is the command-line front end of the sum-factorized Galerkin
// assembler (spec.md §6): "generate" writes a problem-description file,
// "run" assembles it into a matrix, "echo" prints a matrix file to the
// console, and "compare" checks two matrix files for near-equality.
// Grounded on original_source/src/bin/{generateTest,runTest,echoMatrix,
// compareMatrices}.cpp, restyled in gofem's main.go flag/io.Pf idiom.
package main

import (
	"os"

	"github.com/cpmech/gosl/io"

	"github.com/IgASF/IgASF/logx"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			logx.Error("\nERROR: %v\n", r)
			os.Exit(1)
		}
	}()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "generate":
		err = cmdGenerate(os.Args[2:])
	case "run":
		err = cmdRun(os.Args[2:])
	case "echo":
		err = cmdEcho(os.Args[2:])
	case "compare":
		err = cmdCompare(os.Args[2:])
	case "-h", "-help", "--help", "help":
		printUsage()
		return
	default:
		logx.Warn("\nUnknown subcommand %q.\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		logx.Error("\nERROR: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	io.PfWhite("\nigasf -- sum-factorized Galerkin matrix assembler\n\n")
	io.Pf("Usage: igasf <subcommand> [options]\n\n")
	io.Pf("  generate   writes a problem-description JSON file to standard output\n")
	io.Pf("  run        assembles a problem-description file into a Galerkin matrix\n")
	io.Pf("  echo       prints a binary matrix file to the console\n")
	io.Pf("  compare    checks two binary matrix files for near-equality\n\n")
	io.Pf("Run \"igasf <subcommand> -h\" for subcommand-specific options.\n")
}
