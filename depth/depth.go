// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package depth summarises per-base read depth tables as produced by
// samtools depth into per-reference coverage statistics.
package depth

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Header is the header line of a coverage summary table.
const Header = "#Name\tSumCov\tAvgCov\tRefLen\tEffCov\tEffLen\tCovPct"

// Coverage is the coverage summary of a single reference sequence.
type Coverage struct {
	Name string

	// Sum is the total depth over all positions.
	Sum int
	// Length is the last position reported for the reference.
	Length int
	// Effective is the number of positions with a depth of at least one.
	Effective int
}

// Mean returns the mean depth over the reference length.
func (c Coverage) Mean() float64 {
	if c.Length == 0 {
		return 0
	}
	return float64(c.Sum) / float64(c.Length)
}

// EffectiveMean returns the mean depth over the covered positions.
func (c Coverage) EffectiveMean() float64 {
	if c.Effective == 0 {
		return 0
	}
	return float64(c.Sum) / float64(c.Effective)
}

// Percent returns the percentage of the reference that is covered.
func (c Coverage) Percent() float64 {
	if c.Length == 0 {
		return 0
	}
	return 100 * float64(c.Effective) / float64(c.Length)
}

func (c Coverage) String() string {
	return fmt.Sprintf("%s\t%d\t%.2f\t%d\t%.2f\t%d\t%.2f",
		c.Name, c.Sum, c.Mean(), c.Length, c.EffectiveMean(), c.Effective, c.Percent())
}

// Summarize reads a depth table of reference name, 1-based position and
// depth columns from r and returns the coverage of each reference in the
// order references first appear.
func Summarize(r io.Reader) ([]Coverage, error) {
	var (
		index = make(map[string]int)
		cov   []Coverage
		line  int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		f := strings.Split(text, "\t")
		if len(f) < 3 {
			return nil, fmt.Errorf("depth: line %d has %d fields, expected 3", line, len(f))
		}
		pos, err := strconv.Atoi(f[1])
		if err != nil {
			return nil, fmt.Errorf("depth: line %d: invalid position: %w", line, err)
		}
		d, err := strconv.Atoi(f[2])
		if err != nil {
			return nil, fmt.Errorf("depth: line %d: invalid depth: %w", line, err)
		}

		i, ok := index[f[0]]
		if !ok {
			i = len(cov)
			index[f[0]] = i
			cov = append(cov, Coverage{Name: f[0]})
		}
		c := &cov[i]
		c.Sum += d
		c.Length = pos
		if d >= 1 {
			c.Effective++
		}
	}
	return cov, sc.Err()
}

// Write writes the coverage table, including its header, to w.
func Write(w io.Writer, cov []Coverage) error {
	bw := bufio.NewWriter(w)
	_, err := fmt.Fprintln(bw, Header)
	if err != nil {
		return err
	}
	for _, c := range cov {
		_, err = fmt.Fprintln(bw, c)
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}
