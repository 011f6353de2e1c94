// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assembly reads NCBI genome assembly reports and resolves the
// download locations of the listed assemblies.
package assembly

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"
)

// Report column names.
const (
	AssemblyColumn = "Assembly"
	FTPColumn      = "GenBank FTP"
)

// Assembly is a single assembly report entry.
type Assembly struct {
	ID  string
	FTP string
}

// ErrNoLocation is returned by HTTPS for an assembly without a download
// location.
var ErrNoLocation = errors.New("assembly: no download location")

// ColumnError is returned when a report header lacks a required column.
type ColumnError struct {
	Column string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("assembly: no %q column in report header", e.Column)
}

// DuplicateError is returned when an assembly occurs more than once in a
// report.
type DuplicateError struct {
	ID   string
	Line int
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("assembly: repeated assembly %s at line %d", e.ID, e.Line)
}

// ReadReport returns the assemblies listed in the tab-delimited report
// read from r in report order. The first line of the report is its header.
func ReadReport(r io.Reader) ([]Assembly, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, 1<<20)
	if !sc.Scan() {
		err := sc.Err()
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	idIdx, ftpIdx := -1, -1
	for i, h := range strings.Split(strings.TrimSpace(sc.Text()), "\t") {
		switch strings.TrimSpace(strings.TrimPrefix(h, "#")) {
		case AssemblyColumn:
			idIdx = i
		case FTPColumn:
			ftpIdx = i
		}
	}
	if idIdx < 0 {
		return nil, &ColumnError{Column: AssemblyColumn}
	}
	if ftpIdx < 0 {
		return nil, &ColumnError{Column: FTPColumn}
	}

	var (
		asms []Assembly
		seen = make(map[string]bool)
		line = 1
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		f := strings.Split(text, "\t")
		if len(f) <= idIdx || len(f) <= ftpIdx {
			return nil, fmt.Errorf("assembly: line %d has %d fields", line, len(f))
		}
		a := Assembly{ID: strings.TrimSpace(f[idIdx]), FTP: strings.TrimSpace(f[ftpIdx])}
		if seen[a.ID] {
			return nil, &DuplicateError{ID: a.ID, Line: line}
		}
		seen[a.ID] = true
		asms = append(asms, a)
	}
	return asms, sc.Err()
}

// HTTPS returns the HTTPS URL of the assembly directory. FTP locations
// are rewritten to the equivalent HTTPS location on the same host.
func (a Assembly) HTTPS() (*url.URL, error) {
	if a.FTP == "" || a.FTP == "-" || a.FTP == "na" {
		return nil, ErrNoLocation
	}
	u, err := url.Parse(a.FTP)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "ftp", "http":
		u.Scheme = "https"
	case "https":
	default:
		return nil, fmt.Errorf("assembly: unsupported location %q", a.FTP)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u, nil
}

var href = regexp.MustCompile(`(?i)<a\s[^>]*href="([^"]+)"`)

// Listing returns the names of the files linked from an HTML directory
// listing read from r. Links to directories and to other locations are
// ignored.
func Listing(r io.Reader) ([]string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var files []string
	seen := make(map[string]bool)
	for _, m := range href.FindAllSubmatch(b, -1) {
		l, err := url.Parse(string(m[1]))
		if err != nil || l.IsAbs() || l.RawQuery != "" || l.Fragment != "" {
			continue
		}
		name := l.Path
		if name == "" || strings.Contains(name, "/") || seen[name] {
			continue
		}
		seen[name] = true
		files = append(files, name)
	}
	return files, nil
}
