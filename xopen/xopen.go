// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xopen opens plain or gzip compressed input files.
package xopen

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/klauspost/pgzip"
)

var gzipMagic = []byte{0x1f, 0x8b}

// Open opens the named file for reading. If the file content begins with the
// gzip magic number, the returned reader decompresses it. The name "-" opens
// stdin.
func Open(name string) (io.ReadCloser, error) {
	var f *os.File
	if name == "-" {
		f = os.Stdin
	} else {
		var err error
		f, err = os.Open(name)
		if err != nil {
			return nil, err
		}
	}
	r, err := Reader(f)
	if err != nil {
		if f != os.Stdin {
			f.Close()
		}
		return nil, err
	}
	rc := &readCloser{Reader: r, closers: []io.Closer{r}}
	if f != os.Stdin {
		rc.closers = append(rc.closers, f)
	}
	return rc, nil
}

// Reader returns a reader that decompresses r if it is gzip compressed.
// The returned reader must be closed to release decompression resources;
// closing it does not close r.
func Reader(r io.Reader) (io.ReadCloser, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(len(gzipMagic))
	if err != nil && err != io.EOF {
		return nil, err
	}
	if !bytes.Equal(magic, gzipMagic) {
		return io.NopCloser(br), nil
	}
	return pgzip.NewReader(br)
}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var err error
	for _, c := range r.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
