// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// gbkorder writes the records of a GenBank file in the order of the
// sequences in a FASTA file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/charmbracelet/log"

	"github.com/biogo/metatools/genbank"
	"github.com/biogo/metatools/xopen"
)

var (
	fna     = flag.String("fna", "", "input FASTA file giving the record order (required).")
	gbk     = flag.String("gbk", "", "input GenBank file (required).")
	prefix  = flag.String("prefix", "", "output prefix. Defaults to the GenBank file name without extension.")
	verbose = flag.Bool("v", false, "print debugging information.")
	help    = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *fna == "" || *gbk == "" {
		flag.Usage()
		os.Exit(1)
	}
	if *prefix == "" {
		base := filepath.Base(*gbk)
		*prefix = strings.TrimSuffix(base, filepath.Ext(base))
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "gbkorder"})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	order, err := seqNames(*fna)
	if err != nil {
		logger.Fatal("failed to read FASTA names", "file", *fna, "err", err)
	}

	records, err := readRecords(*gbk, logger)
	if err != nil {
		logger.Fatal("failed to read GenBank records", "file", *gbk, "err", err)
	}

	outName := *prefix + "_reordered.gbk"
	out, err := os.Create(outName)
	if err != nil {
		logger.Fatal("failed to create output", "file", outName, "err", err)
	}
	err = reorder(out, order, records)
	if err != nil {
		out.Close()
		os.Remove(outName)
		logger.Fatal("failed to reorder records", "file", *gbk, "err", err)
	}
	err = out.Close()
	if err != nil {
		logger.Fatal("failed to write output", "file", outName, "err", err)
	}
	logger.Info("reordered records", "records", len(order), "out", outName)
}

// missingError is returned by reorder when a sequence has no GenBank record.
type missingError struct {
	Name string
}

func (e *missingError) Error() string {
	return fmt.Sprintf("gbkorder: sequence %q not found in GenBank records", e.Name)
}

// reorder writes the records named in order to w.
func reorder(w io.Writer, order []string, records map[string]string) error {
	bw := bufio.NewWriter(w)
	for _, name := range order {
		text, ok := records[name]
		if !ok {
			return &missingError{Name: name}
		}
		_, err := io.WriteString(bw, text)
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// seqNames returns the names of the sequences in the named FASTA file
// in file order.
func seqNames(name string) ([]string, error) {
	f, err := xopen.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var names []string
	sc := seqio.NewScanner(fasta.NewReader(f, linear.NewSeq("", nil, alphabet.DNA)))
	for sc.Next() {
		names = append(names, sc.Seq().Name())
	}
	return names, sc.Error()
}

// readRecords returns the text of each record in the named GenBank file
// keyed by sequence name.
func readRecords(name string, logger *log.Logger) (map[string]string, error) {
	f, err := xopen.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records := make(map[string]string)
	r := genbank.NewReader(f)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		if rec.Unterminated {
			logger.Warn("unterminated GenBank record", "name", rec.Name)
		}
		if _, dup := records[rec.Name]; dup {
			logger.Warn("duplicate GenBank record", "name", rec.Name)
		}
		logger.Debug("parsed record", "name", rec.Name)
		records[rec.Name] = rec.Text
	}
}
