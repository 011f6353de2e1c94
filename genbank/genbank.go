// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package genbank splits GenBank flat files into their records without
// parsing record content.
package genbank

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

const (
	locus      = "LOCUS"
	terminator = "//"
)

// ErrNoName is returned for a LOCUS line that does not hold a name.
var ErrNoName = errors.New("genbank: LOCUS line has no sequence name")

// Record is a single GenBank record.
type Record struct {
	// Name is the sequence name from the LOCUS line.
	Name string
	// Text is the complete record text including the LOCUS
	// and terminating lines.
	Text string
	// Unterminated is true if the record ended at the start of
	// the next record or at the end of input without a "//" line.
	Unterminated bool
}

// Reader reads GenBank records.
type Reader struct {
	r    *bufio.Reader
	next string // LOCUS line read ahead of the current record
}

// NewReader returns a new Reader reading from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Read returns the next record. Lines outside records are ignored. At the
// end of input Read returns io.EOF.
func (r *Reader) Read() (Record, error) {
	var (
		rec Record
		b   strings.Builder
		in  bool
	)
	start := func(line string) error {
		f := strings.Fields(line)
		if len(f) < 2 {
			return ErrNoName
		}
		rec.Name = f[1]
		b.WriteString(line)
		in = true
		return nil
	}

	if r.next != "" {
		err := start(r.next)
		r.next = ""
		if err != nil {
			return Record{}, err
		}
	}
	for {
		line, err := r.r.ReadString('\n')
		if line == "" && err != nil {
			if err == io.EOF && in {
				rec.Text = b.String()
				rec.Unterminated = true
				return rec, nil
			}
			return Record{}, err
		}
		if err != nil && err != io.EOF {
			return Record{}, err
		}

		switch {
		case strings.HasPrefix(line, locus):
			if in {
				r.next = line
				rec.Text = b.String()
				rec.Unterminated = true
				return rec, nil
			}
			err = start(line)
			if err != nil {
				return Record{}, err
			}
		case strings.HasPrefix(line, terminator):
			if in {
				b.WriteString(line)
				rec.Text = b.String()
				return rec, nil
			}
		default:
			if in {
				b.WriteString(line)
			}
		}
	}
}
