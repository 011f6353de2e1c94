// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// depthcov calculates the coverage of each contig in a samtools depth file.
package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"

	"github.com/biogo/metatools/depth"
	"github.com/biogo/metatools/xopen"
)

var (
	inf  = flag.String("in", "", "input samtools depth file. Defaults to stdin.")
	outf = flag.String("out", "", "output file name. Defaults to stdout.")
	help = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "depthcov"})

	name := *inf
	if name == "" {
		name = "-"
	}
	in, err := xopen.Open(name)
	if err != nil {
		logger.Fatal("failed to open input", "file", *inf, "err", err)
	}
	defer in.Close()

	cov, err := depth.Summarize(in)
	if err != nil {
		logger.Fatal("failed during read", "err", err)
	}

	var out *os.File
	if *outf == "" {
		out = os.Stdout
	} else if out, err = os.Create(*outf); err != nil {
		logger.Fatal("failed to create output", "file", *outf, "err", err)
	}
	defer out.Close()

	err = depth.Write(out, cov)
	if err != nil {
		logger.Fatal("failed to write coverage", "err", err)
	}
	logger.Info("summarised coverage", "contigs", len(cov))
}
