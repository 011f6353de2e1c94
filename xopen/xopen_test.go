// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xopen

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/pgzip"
	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

const text = "1\t|\troot\t|\t\t|\tscientific name\t|\n"

func gzipped(c *check.C, s string) []byte {
	var buf bytes.Buffer
	w := pgzip.NewWriter(&buf)
	_, err := io.WriteString(w, s)
	c.Assert(err, check.Equals, nil)
	c.Assert(w.Close(), check.Equals, nil)
	return buf.Bytes()
}

func (s *S) TestReader(c *check.C) {
	for _, test := range []struct {
		name string
		in   []byte
		want string
	}{
		{name: "plain", in: []byte(text), want: text},
		{name: "gzip", in: gzipped(c, text), want: text},
		{name: "empty", in: nil, want: ""},
		{name: "short", in: []byte{0x1f}, want: "\x1f"},
	} {
		r, err := Reader(bytes.NewReader(test.in))
		c.Assert(err, check.Equals, nil, check.Commentf("%s", test.name))
		got, err := io.ReadAll(r)
		c.Check(err, check.Equals, nil, check.Commentf("%s", test.name))
		c.Check(string(got), check.Equals, test.want, check.Commentf("%s", test.name))
		c.Check(r.Close(), check.Equals, nil)
	}
}

func (s *S) TestOpen(c *check.C) {
	dir := c.MkDir()
	plain := filepath.Join(dir, "names.dmp")
	c.Assert(os.WriteFile(plain, []byte(text), 0o644), check.Equals, nil)
	compressed := filepath.Join(dir, "names.dmp.gz")
	c.Assert(os.WriteFile(compressed, gzipped(c, strings.Repeat(text, 3)), 0o644), check.Equals, nil)

	for name, want := range map[string]string{
		plain:      text,
		compressed: strings.Repeat(text, 3),
	} {
		f, err := Open(name)
		c.Assert(err, check.Equals, nil)
		got, err := io.ReadAll(f)
		c.Check(err, check.Equals, nil)
		c.Check(string(got), check.Equals, want)
		c.Check(f.Close(), check.Equals, nil)
	}

	_, err := Open(filepath.Join(dir, "missing.dmp"))
	c.Check(os.IsNotExist(err), check.Equals, true)
}
