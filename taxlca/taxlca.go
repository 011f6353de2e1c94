// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// taxlca prints the lineage of taxa or their lowest common ancestor.
//
// Taxids are read from the command line arguments or, if there are none,
// from stdin with one set of white space separated taxids per line. For
// each set, the LCA taxid, its name, rank and root path are printed.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/biogo/metatools/taxonomy"
)

var (
	taxdump = flag.String("taxdump", "", "directory holding names.dmp and nodes.dmp.")
	names   = flag.String("names", "", "names.dmp file name (overrides -taxdump).")
	nodes   = flag.String("nodes", "", "nodes.dmp file name (overrides -taxdump).")
	ids     = flag.Bool("ids", false, "print the root path as taxids instead of names.")
	help    = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -taxdump <dir> [taxid ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *taxdump != "" {
		if *names == "" {
			*names = filepath.Join(*taxdump, "names.dmp")
		}
		if *nodes == "" {
			*nodes = filepath.Join(*taxdump, "nodes.dmp")
		}
	}
	if *names == "" || *nodes == "" {
		flag.Usage()
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "taxlca"})

	tax, err := taxonomy.Load(*names, *nodes)
	if err != nil {
		logger.Fatal("failed to load taxonomy", "err", err)
	}
	cache := taxonomy.NewCache(tax)

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	check := func(err error) {
		var incomplete *taxonomy.IncompletePathError
		if errors.As(err, &incomplete) {
			logger.Warn("incomplete lineage", "err", err)
			return
		}
		if err != nil {
			w.Flush()
			logger.Fatal("failed to resolve taxa", "err", err)
		}
	}

	if flag.NArg() != 0 {
		check(report(w, cache, flag.Args()))
		return
	}

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		f := strings.Fields(sc.Text())
		if len(f) == 0 {
			continue
		}
		check(report(w, cache, f))
	}
	err = sc.Err()
	if err != nil {
		logger.Fatal("failed during read", "err", err)
	}
}

// report writes the LCA of the taxids in f. A returned
// *taxonomy.IncompletePathError is written before it is returned.
func report(w io.Writer, cache *taxonomy.Cache, f []string) error {
	taxa := make([]taxonomy.Taxid, len(f))
	for i, s := range f {
		id, err := taxonomy.ParseTaxid(s)
		if err != nil {
			return err
		}
		taxa[i] = id
	}

	var incomplete *taxonomy.IncompletePathError
	lca, warn := cache.LCA(taxa...)
	if warn != nil && !errors.As(warn, &incomplete) {
		return warn
	}
	p, err := cache.Path(lca)
	if err != nil && !errors.As(err, &incomplete) {
		return err
	}
	if warn == nil {
		warn = err
	}

	name, ok := cache.Name(lca)
	if !ok {
		name = taxonomy.NoName
	}
	rank, ok := cache.Rank(lca)
	if !ok {
		rank = taxonomy.NoName
	}
	path := cache.PathNames(p)
	if *ids {
		path = p.String()
	}
	_, err = fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", lca, name, rank, path)
	if err != nil {
		return err
	}
	return warn
}
