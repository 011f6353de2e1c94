// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package taxonomy

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	fieldSep = "\t|\t"

	// ScientificName is the name class retained from names dumps.
	ScientificName = "scientific name"
)

// splitDump splits a taxdump line into its fields. The trailing "\t|"
// terminator and line ending are removed first.
func splitDump(line string) []string {
	return strings.Split(strings.TrimRight(line, "\t|\r\n"), fieldSep)
}

// readDump calls fn with the fields of each non-empty line read from r.
// Lines with fewer than min fields are reported as a *DataLoadError
// naming file.
func readDump(r io.Reader, file string, min int, fn func(fields []string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), 1<<20)
	var line int
	for sc.Scan() {
		line++
		text := sc.Text()
		if text == "" {
			continue
		}
		fields := splitDump(text)
		if len(fields) < min {
			return &DataLoadError{
				File: file, Line: line,
				Err: fmt.Errorf("found %d fields, expected at least %d", len(fields), min),
			}
		}
		err := fn(fields)
		if err != nil {
			return &DataLoadError{File: file, Line: line, Err: err}
		}
	}
	err := sc.Err()
	if err != nil {
		return &DataLoadError{File: file, Err: err}
	}
	return nil
}
