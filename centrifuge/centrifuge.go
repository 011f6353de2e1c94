// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package centrifuge reads the tabular classification output of the
// Centrifuge metagenomic classifier.
//
// Each line of the table holds seven tab separated fields:
//
//	readID uniqueID taxID score secBestScore hitLength numMatches
package centrifuge

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/biogo/metatools/taxonomy"
)

const (
	fields = 7
	header = "readID"
)

// Hit is a single classification record.
type Hit struct {
	ReadID       string
	UniqueID     string
	Taxid        taxonomy.Taxid
	Score        int
	SecBestScore int
	HitLength    int
	NumMatches   int
}

func (h Hit) String() string {
	return fmt.Sprintf("%s\t%s\t%d\t%d\t%d\t%d\t%d",
		h.ReadID, h.UniqueID, h.Taxid, h.Score, h.SecBestScore, h.HitLength, h.NumMatches)
}

// FieldCountError is returned by Reader.Read for a line that does not hold
// seven fields. The line is consumed, so reading may continue.
type FieldCountError struct {
	Line   int
	Fields []string
}

func (e *FieldCountError) Error() string {
	return fmt.Sprintf("centrifuge: line %d has %d fields, expected %d", e.Line, len(e.Fields), fields)
}

// ParseError is returned by Reader.Read for a line holding a field that
// cannot be parsed.
type ParseError struct {
	Line  int
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("centrifuge: line %d: invalid %s: %v", e.Line, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Reader reads Centrifuge records.
type Reader struct {
	r    *bufio.Reader
	line int
}

// NewReader returns a new Reader reading from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Read returns the next hit from the underlying reader. Header lines and
// lines starting with white space are skipped. At the end of input Read
// returns io.EOF.
func (r *Reader) Read() (Hit, error) {
	for {
		text, err := r.r.ReadString('\n')
		if text == "" && err != nil {
			return Hit{}, err
		}
		r.line++
		if err != nil && err != io.EOF {
			return Hit{}, err
		}
		if skip(text) {
			continue
		}
		f := strings.Split(strings.TrimSpace(text), "\t")
		if len(f) != fields {
			return Hit{}, &FieldCountError{Line: r.line, Fields: f}
		}
		return r.parse(f)
	}
}

func skip(line string) bool {
	if strings.HasPrefix(line, header) {
		return true
	}
	switch line[0] {
	case '\n', '\r', ' ', '\t':
		return true
	}
	return false
}

func (r *Reader) parse(f []string) (Hit, error) {
	h := Hit{ReadID: f[0], UniqueID: f[1]}
	var err error
	h.Taxid, err = taxonomy.ParseTaxid(f[2])
	if err != nil {
		return Hit{}, &ParseError{Line: r.line, Field: "taxID", Err: err}
	}
	for _, v := range []struct {
		name string
		dst  *int
		src  string
	}{
		{name: "score", dst: &h.Score, src: f[3]},
		{name: "secBestScore", dst: &h.SecBestScore, src: f[4]},
		{name: "hitLength", dst: &h.HitLength, src: f[5]},
		{name: "numMatches", dst: &h.NumMatches, src: f[6]},
	} {
		*v.dst, err = strconv.Atoi(v.src)
		if err != nil {
			return Hit{}, &ParseError{Line: r.line, Field: v.name, Err: err}
		}
	}
	return h, nil
}
