// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package genbank

import (
	"io"
	"strings"
	"testing"

	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

const (
	recA = "LOCUS       contig_1    12 bp    DNA     linear       01-JAN-1980\n" +
		"FEATURES             Location/Qualifiers\n" +
		"ORIGIN\n" +
		"        1 acgtacgtac gt\n" +
		"//\n"
	recB = "LOCUS       contig_2    4 bp    DNA     linear       01-JAN-1980\n" +
		"ORIGIN\n" +
		"        1 acgt\n" +
		"//\n"
	openC = "LOCUS       contig_3    4 bp    DNA     linear       01-JAN-1980\n" +
		"ORIGIN\n"
)

func readAll(c *check.C, r *Reader) []Record {
	var recs []Record
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return recs
		}
		c.Assert(err, check.Equals, nil)
		recs = append(recs, rec)
	}
}

func (s *S) TestRead(c *check.C) {
	for _, test := range []struct {
		in   string
		want []Record
	}{
		{
			in: recA + recB,
			want: []Record{
				{Name: "contig_1", Text: recA},
				{Name: "contig_2", Text: recB},
			},
		},
		{
			in: "preamble\n" + recA + "\n" + recB,
			want: []Record{
				{Name: "contig_1", Text: recA},
				{Name: "contig_2", Text: recB},
			},
		},
		{
			in: openC + recA,
			want: []Record{
				{Name: "contig_3", Text: openC, Unterminated: true},
				{Name: "contig_1", Text: recA},
			},
		},
		{
			in: recA + openC,
			want: []Record{
				{Name: "contig_1", Text: recA},
				{Name: "contig_3", Text: openC, Unterminated: true},
			},
		},
		{
			in: strings.TrimSuffix(recB, "\n"),
			want: []Record{
				{Name: "contig_2", Text: strings.TrimSuffix(recB, "\n")},
			},
		},
		{in: "", want: nil},
	} {
		got := readAll(c, NewReader(strings.NewReader(test.in)))
		c.Check(got, check.DeepEquals, test.want, check.Commentf("%q", test.in))
	}
}

func (s *S) TestReadNoName(c *check.C) {
	r := NewReader(strings.NewReader("LOCUS\n//\n"))
	_, err := r.Read()
	c.Check(err, check.Equals, ErrNoName)
}
