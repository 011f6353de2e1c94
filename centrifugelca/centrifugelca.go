// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// centrifugelca assigns a lowest common ancestor taxon to each contig
// classified by Centrifuge, using the hits scoring within 2% of the best
// hit for the contig, and writes a table of the assigned taxa with their
// superkingdom, phylum, class, order, family and genus.
package main

import (
	"errors"
	"flag"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/cheggaaa/pb.v1"

	"github.com/biogo/metatools/centrifuge"
	"github.com/biogo/metatools/lca"
	"github.com/biogo/metatools/taxonomy"
	"github.com/biogo/metatools/xopen"
)

var (
	in   = flag.String("in", "", "input Centrifuge classification table. Defaults to stdin.")
	outf = flag.String("out", "", "output file name. Defaults to stdout.")

	taxdump  = flag.String("taxdump", "", "directory holding names.dmp and nodes.dmp.")
	names    = flag.String("names", "", "names.dmp file name (overrides -taxdump).")
	nodes    = flag.String("nodes", "", "nodes.dmp file name (overrides -taxdump).")
	validate = flag.Bool("validate", false, "check the taxonomy for missing parents and cycles before use.")

	minScore = flag.Int("min", lca.DefaultMinScore, "minimum hit score considered.")
	fraction = flag.Float64("fraction", lca.DefaultFraction, "fraction of the best score a hit must reach to contribute to the LCA.")
	workers  = flag.Int("workers", 0, "number of concurrent LCA workers. Defaults to GOMAXPROCS.")

	progress = flag.Bool("progress", false, "show LCA assignment progress.")

	conf    = flag.String("config", "", "configuration file (YAML, TOML or JSON). Flags override its values.")
	verbose = flag.Bool("v", false, "print debugging information.")
	help    = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "centrifugelca",
		ReportTimestamp: true,
	})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := loadConfig(*conf)
	if err != nil {
		logger.Fatal("failed to read configuration", "file", *conf, "err", err)
	}
	if cfg.Names == "" || cfg.Nodes == "" {
		flag.Usage()
		os.Exit(1)
	}
	logger.Debug("configuration", "names", cfg.Names, "nodes", cfg.Nodes,
		"min", cfg.MinScore, "fraction", cfg.Fraction, "workers", cfg.Workers)

	start := time.Now()
	tax, err := taxonomy.Load(cfg.Names, cfg.Nodes)
	if err != nil {
		logger.Fatal("failed to load taxonomy", "err", err)
	}
	logger.Info("loaded taxonomy", "taxa", tax.Len(), "elapsed", time.Since(start).Round(time.Millisecond))
	if cfg.Validate {
		err = tax.Validate()
		if err != nil {
			logger.Fatal("taxonomy failed validation", "err", err)
		}
	}

	src := "-"
	if *in != "" {
		src = *in
	}
	r, err := xopen.Open(src)
	if err != nil {
		logger.Fatal("failed to open input", "file", *in, "err", err)
	}
	defer r.Close()

	groups, skipped, err := readGroups(r, logger)
	if err != nil {
		logger.Fatal("failed during read", "err", err)
	}
	logger.Info("read classifications", "contigs", len(groups), "skipped", skipped)

	a := lca.NewAssigner(tax)
	a.MinScore = cfg.MinScore
	a.Fraction = cfg.Fraction
	var bar *pb.ProgressBar
	if *progress {
		bar = pb.New(len(groups))
		bar.Output = os.Stderr
		bar.Start()
		a.Progress = func() { bar.Increment() }
	}
	results, err := a.AssignAll(groups, cfg.Workers)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		logger.Fatal("failed to assign taxa", "err", err)
	}

	var out *os.File
	if *outf == "" {
		out = os.Stdout
	} else if out, err = os.Create(*outf); err != nil {
		logger.Fatal("failed to create output", "file", *outf, "err", err)
	}
	defer out.Close()

	w := lca.NewWriter(out)
	for _, res := range results {
		if res.Warning != nil {
			logger.Warn("incomplete lineage", "contig", res.Contig, "err", res.Warning)
		}
		err = w.Write(res)
		if err != nil {
			logger.Fatal("failed to write result", "contig", res.Contig, "err", err)
		}
	}
	err = w.Flush()
	if err != nil {
		logger.Fatal("failed to write results", "err", err)
	}
	logger.Info("assigned taxa", "contigs", len(results), "unassigned", len(groups)-len(results))
}

// readGroups reads all hits from r grouped by contig. Lines with the wrong
// number of fields are logged and counted.
func readGroups(r io.Reader, logger *log.Logger) (groups []centrifuge.Group, skipped int, err error) {
	cr := centrifuge.NewReader(r)
	g := centrifuge.NewGrouper()
	for {
		h, err := cr.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			var fc *centrifuge.FieldCountError
			if errors.As(err, &fc) {
				logger.Warn("skipping malformed line", "line", fc.Line, "fields", len(fc.Fields))
				skipped++
				continue
			}
			return nil, skipped, err
		}
		g.Add(h)
	}
	return g.Groups(), skipped, nil
}
