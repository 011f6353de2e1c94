// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package taxonomy

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyInput is returned by LCA when no taxids are given.
var ErrEmptyInput = errors.New("taxonomy: no taxids given")

// DataLoadError is returned when a names or nodes dump cannot be read.
type DataLoadError struct {
	File string // name of the dump being read
	Line int    // 1-based line number, zero if the error is not line specific
	Err  error
}

func (e *DataLoadError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("taxonomy: failed to load %s: %v", e.File, e.Err)
	}
	return fmt.Sprintf("taxonomy: failed to load %s line %d: %v", e.File, e.Line, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// InvalidTaxidError is returned when a value cannot be interpreted as a taxid.
type InvalidTaxidError struct {
	Value string
}

func (e *InvalidTaxidError) Error() string {
	return fmt.Sprintf("taxonomy: invalid taxid %q", e.Value)
}

// IncompletePathError is returned alongside a partial path when walking
// parent links from a taxid does not reach the root. Cycle is true if the
// walk stopped because it revisited a taxid, otherwise the walk stopped at
// a taxid with no parent in the store.
type IncompletePathError struct {
	Taxid Taxid
	Stop  Taxid
	Cycle bool
}

func (e *IncompletePathError) Error() string {
	if e.Cycle {
		return fmt.Sprintf("taxonomy: path from %d enters a cycle at %d", e.Taxid, e.Stop)
	}
	return fmt.Sprintf("taxonomy: path from %d does not reach the root: no parent for %d", e.Taxid, e.Stop)
}

// DisjointPathError is returned when two taxa share no ancestor.
type DisjointPathError struct {
	A, B Path
}

func (e *DisjointPathError) Error() string {
	return fmt.Sprintf("taxonomy: %v and %v do not share an ancestor", e.A, e.B)
}

// ValidationError describes structural problems found by Store.Validate.
type ValidationError struct {
	Dangling map[Taxid]Taxid // child to missing parent
	Cycles   [][]Taxid
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Dangling) != 0 {
		parts = append(parts, fmt.Sprintf("%d taxa with missing parents", len(e.Dangling)))
	}
	if len(e.Cycles) != 0 {
		parts = append(parts, fmt.Sprintf("%d parent cycles", len(e.Cycles)))
	}
	return "taxonomy: invalid tree: " + strings.Join(parts, ", ")
}
