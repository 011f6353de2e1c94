// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lca

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Header is the header line of the LCA table.
const Header = "#ContigID\tLCA_TaxID\tLCA_SciName\tLCA_Rank\tLCA_Path\tMaxScore\tSuperkingdom\tphylum\tclass\torder\tfamily\tgenus"

// Writer writes LCA results as a tab separated table.
type Writer struct {
	w      *bufio.Writer
	header bool
}

// NewWriter returns a Writer that writes to w. The header line is written
// before the first result.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write writes a single result row.
func (w *Writer) Write(r Result) error {
	err := w.writeHeader()
	if err != nil {
		return err
	}
	f := append([]string{
		r.Contig,
		strconv.Itoa(int(r.Taxid)),
		r.Name,
		r.Rank,
		r.PathName,
		strconv.Itoa(r.MaxScore),
	}, r.Lineage...)
	_, err = w.w.WriteString(strings.Join(f, "\t") + "\n")
	return err
}

func (w *Writer) writeHeader() error {
	if w.header {
		return nil
	}
	w.header = true
	_, err := w.w.WriteString(Header + "\n")
	return err
}

// Flush writes any buffered data, including the header if no result has
// been written, to the underlying writer.
func (w *Writer) Flush() error {
	err := w.writeHeader()
	if err != nil {
		return err
	}
	return w.w.Flush()
}
