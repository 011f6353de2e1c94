// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembly

import (
	"errors"
	"strings"
	"testing"

	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

const report = "#Organism Name\tAssembly\tLevel\tGenBank FTP\tRefSeq FTP\n" +
	"Escherichia coli\tGCA_000005845.2\tComplete\tftp://ftp.ncbi.nlm.nih.gov/genomes/all/GCA/000/005/845/GCA_000005845.2_ASM584v2\t-\n" +
	"\n" +
	"Selenomonas ruminantium\tGCA_000284095.1\tComplete\t-\t-\n"

func (s *S) TestReadReport(c *check.C) {
	asms, err := ReadReport(strings.NewReader(report))
	c.Assert(err, check.Equals, nil)
	c.Check(asms, check.DeepEquals, []Assembly{
		{ID: "GCA_000005845.2", FTP: "ftp://ftp.ncbi.nlm.nih.gov/genomes/all/GCA/000/005/845/GCA_000005845.2_ASM584v2"},
		{ID: "GCA_000284095.1", FTP: "-"},
	})
}

func (s *S) TestReadReportErrors(c *check.C) {
	var dup *DuplicateError
	_, err := ReadReport(strings.NewReader(report + "Escherichia coli\tGCA_000005845.2\tComplete\t-\t-\n"))
	c.Assert(errors.As(err, &dup), check.Equals, true)
	c.Check(dup.ID, check.Equals, "GCA_000005845.2")
	c.Check(dup.Line, check.Equals, 5)

	var col *ColumnError
	_, err = ReadReport(strings.NewReader("Assembly\tRefSeq FTP\n"))
	c.Assert(errors.As(err, &col), check.Equals, true)
	c.Check(col.Column, check.Equals, FTPColumn)

	_, err = ReadReport(strings.NewReader("GenBank FTP\n"))
	c.Assert(errors.As(err, &col), check.Equals, true)
	c.Check(col.Column, check.Equals, AssemblyColumn)

	_, err = ReadReport(strings.NewReader("Assembly\tName\tGenBank FTP\nGCA_1\n"))
	c.Check(err, check.NotNil)

	_, err = ReadReport(strings.NewReader(""))
	c.Check(err, check.NotNil)
}

func (s *S) TestHTTPS(c *check.C) {
	for _, test := range []struct {
		ftp  string
		want string
		err  bool
	}{
		{
			ftp:  "ftp://ftp.ncbi.nlm.nih.gov/genomes/all/GCA/000/005/845/GCA_000005845.2_ASM584v2",
			want: "https://ftp.ncbi.nlm.nih.gov/genomes/all/GCA/000/005/845/GCA_000005845.2_ASM584v2/",
		},
		{
			ftp:  "https://ftp.ncbi.nlm.nih.gov/genomes/all/GCA/000/005/845/GCA_000005845.2_ASM584v2/",
			want: "https://ftp.ncbi.nlm.nih.gov/genomes/all/GCA/000/005/845/GCA_000005845.2_ASM584v2/",
		},
		{ftp: "-", err: true},
		{ftp: "", err: true},
		{ftp: "file:///genomes", err: true},
	} {
		u, err := Assembly{FTP: test.ftp}.HTTPS()
		if test.err {
			c.Check(err, check.NotNil, check.Commentf("%q", test.ftp))
			continue
		}
		c.Assert(err, check.Equals, nil)
		c.Check(u.String(), check.Equals, test.want)
	}
}

func (s *S) TestListing(c *check.C) {
	const page = `<html><body><h1>Index of /genomes/all/GCA/000/005/845/GCA_000005845.2_ASM584v2</h1>
<pre>Name Last modified Size
<a href="?C=N;O=D">Name</a>
<a href="/genomes/all/GCA/000/005/845/">Parent Directory</a>
<a href="GCA_000005845.2_ASM584v2_assembly_stats.txt">GCA_000005845.2_ASM584v2_assembly_stats.txt</a>
<a href="GCA_000005845.2_ASM584v2_genomic.fna.gz">GCA_000005845.2_ASM584v2_genomic.fna.gz</a>
<A HREF="md5checksums.txt">md5checksums.txt</A>
<a href="GCA_000005845.2_ASM584v2_assembly_structure/">GCA_000005845.2_ASM584v2_assembly_structure/</a>
<a href="https://www.ncbi.nlm.nih.gov/">NCBI</a>
</pre></body></html>`

	files, err := Listing(strings.NewReader(page))
	c.Assert(err, check.Equals, nil)
	c.Check(files, check.DeepEquals, []string{
		"GCA_000005845.2_ASM584v2_assembly_stats.txt",
		"GCA_000005845.2_ASM584v2_genomic.fna.gz",
		"md5checksums.txt",
	})
}
