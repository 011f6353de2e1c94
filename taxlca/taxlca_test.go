// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"testing"

	"gopkg.in/check.v1"

	"github.com/biogo/metatools/taxonomy"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func store() *taxonomy.Cache {
	return taxonomy.NewCache(taxonomy.NewStore(
		taxonomy.Taxon{ID: 1, Parent: 1, Name: "root", Rank: taxonomy.NoRank},
		taxonomy.Taxon{ID: 2, Parent: 1, Name: "Bacteria", Rank: taxonomy.Superkingdom},
		taxonomy.Taxon{ID: 3, Parent: 2, Name: "Escherichia", Rank: taxonomy.Genus},
		taxonomy.Taxon{ID: 4, Parent: 2, Name: "Salmonella", Rank: taxonomy.Genus},
		taxonomy.Taxon{ID: 5, Parent: 99, Name: "orphan", Rank: taxonomy.Genus},
	))
}

func (s *S) TestReport(c *check.C) {
	cache := store()
	for _, test := range []struct {
		taxa []string
		want string
	}{
		{taxa: []string{"3"}, want: "3\tEscherichia\tgenus\troot;Bacteria;Escherichia;\n"},
		{taxa: []string{"3", "4"}, want: "2\tBacteria\tsuperkingdom\troot;Bacteria;\n"},
		{taxa: []string{"1"}, want: "1\troot\tno rank\troot;\n"},
	} {
		var buf bytes.Buffer
		err := report(&buf, cache, test.taxa)
		c.Check(err, check.Equals, nil)
		c.Check(buf.String(), check.Equals, test.want, check.Commentf("%v", test.taxa))
	}
}

func (s *S) TestReportErrors(c *check.C) {
	cache := store()

	var buf bytes.Buffer
	err := report(&buf, cache, []string{"5"})
	var incomplete *taxonomy.IncompletePathError
	c.Check(errors.As(err, &incomplete), check.Equals, true)
	c.Check(buf.String(), check.Equals, "5\torphan\tgenus\tNone;orphan;\n")

	buf.Reset()
	err = report(&buf, cache, []string{"999"})
	c.Check(errors.As(err, &incomplete), check.Equals, true)
	c.Check(buf.String(), check.Equals, "999\tNone\tNone\tNone;\n")

	buf.Reset()
	err = report(&buf, cache, []string{"three"})
	var invalid *taxonomy.InvalidTaxidError
	c.Check(errors.As(err, &invalid), check.Equals, true)
	c.Check(buf.Len(), check.Equals, 0)

	err = report(&buf, cache, []string{"3", "5"})
	var disjoint *taxonomy.DisjointPathError
	c.Check(errors.As(err, &disjoint), check.Equals, true)
}
