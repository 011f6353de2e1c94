// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// pefish extracts the paired-end reads that align to a set of contigs.
//
// Reads are selected from the forward and reverse FASTQ files when their
// name, without a /1 or /2 mate suffix, is the query name of an alignment
// to one of the contigs in the FASTA file. Alignments are read from SAM or,
// for files named *.bam, BAM.
package main

import (
	"bufio"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/io/seqio/fastq"
	"github.com/biogo/biogo/seq/linear"
	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
	"github.com/charmbracelet/log"

	"github.com/biogo/metatools/xopen"
)

var (
	alignments = flag.String("sam", "", "SAM or BAM file of read alignments to contigs (required).")
	contigs    = flag.String("contigs", "", "FASTA file of the contigs to fish reads for (required).")
	fwd        = flag.String("fwd", "", "forward reads FASTQ file (required).")
	rev        = flag.String("rev", "", "reverse reads FASTQ file (required).")
	prefix     = flag.String("prefix", "extracted_", "prefix added to the FASTQ file names for output.")
	help       = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *alignments == "" || *contigs == "" || *fwd == "" || *rev == "" {
		flag.Usage()
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "pefish"})

	refs, err := contigNames(*contigs)
	if err != nil {
		logger.Fatal("failed to read contigs", "file", *contigs, "err", err)
	}
	logger.Info("read contigs", "contigs", len(refs))

	reads, err := alignedReads(*alignments, refs)
	if err != nil {
		logger.Fatal("failed to read alignments", "file", *alignments, "err", err)
	}
	logger.Info("found aligned reads", "reads", len(reads))

	for _, in := range []string{*fwd, *rev} {
		out := outputName(*prefix, in)
		n, err := extract(in, out, reads)
		if err != nil {
			logger.Fatal("failed to extract reads", "in", in, "out", out, "err", err)
		}
		logger.Info("extracted reads", "in", in, "out", out, "reads", n)
	}
}

// pairName returns the name of a read with any /1 or /2 mate suffix removed.
func pairName(name string) string {
	if strings.HasSuffix(name, "/1") || strings.HasSuffix(name, "/2") {
		return name[:len(name)-2]
	}
	return name
}

// outputName returns the output file name for the FASTQ file in. Output
// is not compressed, so a .gz extension is removed.
func outputName(prefix, in string) string {
	return prefix + strings.TrimSuffix(filepath.Base(in), ".gz")
}

// contigNames returns the set of sequence names in the named FASTA file.
func contigNames(name string) (map[string]bool, error) {
	f, err := xopen.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	names := make(map[string]bool)
	sc := seqio.NewScanner(fasta.NewReader(f, linear.NewSeq("", nil, alphabet.DNA)))
	for sc.Next() {
		names[sc.Seq().Name()] = true
	}
	return names, sc.Error()
}

type samReader interface {
	Read() (*sam.Record, error)
}

// alignedReads returns the set of pair names of reads in the named SAM
// or BAM file that align to a reference in refs.
func alignedReads(name string, refs map[string]bool) (map[string]bool, error) {
	var r samReader
	if strings.EqualFold(filepath.Ext(name), ".bam") {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		br, err := bam.NewReader(f, 0)
		if err != nil {
			return nil, err
		}
		defer br.Close()
		r = br
	} else {
		f, err := xopen.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r, err = sam.NewReader(f)
		if err != nil {
			return nil, err
		}
	}
	return collectReads(r, refs)
}

func collectReads(r samReader, refs map[string]bool) (map[string]bool, error) {
	reads := make(map[string]bool)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return reads, nil
		}
		if err != nil {
			return nil, err
		}
		if rec.Ref == nil || !refs[rec.Ref.Name()] {
			continue
		}
		reads[pairName(rec.Name)] = true
	}
}

// extract writes the reads of the FASTQ file in with pair names in
// reads to a new file, out, returning the number of reads written.
func extract(in, out string, reads map[string]bool) (int, error) {
	f, err := xopen.Open(in)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	o, err := os.Create(out)
	if err != nil {
		return 0, err
	}
	n, err := filter(o, f, reads)
	if err != nil {
		o.Close()
		return n, err
	}
	return n, o.Close()
}

func filter(dst io.Writer, src io.Reader, reads map[string]bool) (int, error) {
	buf := bufio.NewWriter(dst)
	w := fastq.NewWriter(buf)
	sc := seqio.NewScanner(fastq.NewReader(src, linear.NewQSeq("", nil, alphabet.DNA, alphabet.Sanger)))
	var n int
	for sc.Next() {
		s := sc.Seq()
		if !reads[pairName(s.Name())] {
			continue
		}
		_, err := w.Write(s)
		if err != nil {
			return n, err
		}
		n++
	}
	err := sc.Error()
	if err != nil {
		return n, err
	}
	return n, buf.Flush()
}
