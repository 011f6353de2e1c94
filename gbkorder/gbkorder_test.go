// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

const (
	recOne = "LOCUS       contig_1    4 bp    DNA     linear       01-JAN-1980\n" +
		"ORIGIN\n" +
		"        1 acgt\n" +
		"//\n"
	recTwo = "LOCUS       contig_2    4 bp    DNA     linear       01-JAN-1980\n" +
		"ORIGIN\n" +
		"        1 ttga\n" +
		"//\n"
)

func (s *S) TestReorder(c *check.C) {
	dir := c.MkDir()
	fna := filepath.Join(dir, "contigs.fna")
	gbk := filepath.Join(dir, "contigs.gbk")
	c.Assert(os.WriteFile(fna, []byte(">contig_2 second\nTTGA\n>contig_1\nACGT\n"), 0o644), check.Equals, nil)
	c.Assert(os.WriteFile(gbk, []byte(recOne+recTwo), 0o644), check.Equals, nil)

	order, err := seqNames(fna)
	c.Assert(err, check.Equals, nil)
	c.Check(order, check.DeepEquals, []string{"contig_2", "contig_1"})

	records, err := readRecords(gbk, log.New(io.Discard))
	c.Assert(err, check.Equals, nil)
	c.Check(records, check.DeepEquals, map[string]string{"contig_1": recOne, "contig_2": recTwo})

	var buf bytes.Buffer
	c.Assert(reorder(&buf, order, records), check.Equals, nil)
	c.Check(buf.String(), check.Equals, recTwo+recOne)
}

func (s *S) TestReorderMissing(c *check.C) {
	var buf bytes.Buffer
	err := reorder(&buf, []string{"contig_1", "contig_3"}, map[string]string{"contig_1": recOne})
	var missing *missingError
	c.Assert(errors.As(err, &missing), check.Equals, true)
	c.Check(missing.Name, check.Equals, "contig_3")
}
