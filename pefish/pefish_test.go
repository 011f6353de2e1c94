// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/biogo/hts/sam"
	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) TestPairName(c *check.C) {
	for _, test := range []struct {
		name, want string
	}{
		{name: "FCC57ARACXX:1:1103:6389:21631#/2", want: "FCC57ARACXX:1:1103:6389:21631#"},
		{name: "read21/1", want: "read21"},
		{name: "read21", want: "read21"},
		{name: "read/3", want: "read/3"},
		{name: "/1", want: ""},
	} {
		c.Check(pairName(test.name), check.Equals, test.want, check.Commentf("%q", test.name))
	}
}

func (s *S) TestOutputName(c *check.C) {
	c.Check(outputName("extracted_", "/data/run1_R1.fastq"), check.Equals, "extracted_run1_R1.fastq")
	c.Check(outputName("x.", "run1_R2.fq.gz"), check.Equals, "x.run1_R2.fq")
}

const samText = "@HD\tVN:1.0\tSO:unsorted\n" +
	"@SQ\tSN:contig_1\tLN:100\n" +
	"@SQ\tSN:contig_2\tLN:100\n" +
	"r1/1\t0\tcontig_1\t1\t42\t4M\t*\t0\t0\tACGT\tIIII\n" +
	"r2\t0\tcontig_2\t1\t42\t4M\t*\t0\t0\tACGT\tIIII\n" +
	"r3\t4\t*\t0\t0\t*\t*\t0\t0\tACGT\tIIII\n" +
	"r4\t16\tcontig_1\t10\t42\t4M\t*\t0\t0\tACGT\tIIII\n"

func (s *S) TestCollectReads(c *check.C) {
	r, err := sam.NewReader(strings.NewReader(samText))
	c.Assert(err, check.Equals, nil)
	reads, err := collectReads(r, map[string]bool{"contig_1": true})
	c.Assert(err, check.Equals, nil)
	c.Check(reads, check.DeepEquals, map[string]bool{"r1": true, "r4": true})
}

func (s *S) TestFilter(c *check.C) {
	const reads = "@r1/1\nACGT\n+\nIIII\n" +
		"@r2/1\nACGA\n+\nIIII\n" +
		"@r4/1\nACGC\n+\nIIII\n"

	var buf bytes.Buffer
	n, err := filter(&buf, strings.NewReader(reads), map[string]bool{"r1": true, "r4": true})
	c.Assert(err, check.Equals, nil)
	c.Check(n, check.Equals, 2)
	out := buf.String()
	c.Check(strings.Contains(out, "@r1/1"), check.Equals, true)
	c.Check(strings.Contains(out, "@r4/1"), check.Equals, true)
	c.Check(strings.Contains(out, "@r2/1"), check.Equals, false)
}
