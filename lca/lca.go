// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lca assigns a single taxonomic call to each contig from its
// classifier hits by taking the lowest common ancestor of the taxa of the
// near-best hits.
package lca

import (
	"errors"
	"math"
	"runtime"
	"sync"

	"github.com/biogo/metatools/centrifuge"
	"github.com/biogo/metatools/taxonomy"
)

const (
	// DefaultMinScore is the lowest hit score considered.
	DefaultMinScore = 100

	// DefaultFraction is the fraction of the best hit score a hit must
	// reach to contribute to the LCA.
	DefaultFraction = 0.98
)

// Ranks are the ranks reported for each contig, in output column order.
var Ranks = []string{
	taxonomy.Superkingdom,
	taxonomy.Phylum,
	taxonomy.Class,
	taxonomy.Order,
	taxonomy.Family,
	taxonomy.Genus,
}

// fallback holds the ranks tried when a rank is absent from a path.
var fallback = map[string][]string{
	taxonomy.Class: {taxonomy.Subclass},
}

// Result is the taxonomic call for a single contig.
type Result struct {
	Contig   string
	Taxid    taxonomy.Taxid
	Name     string
	Rank     string
	Path     taxonomy.Path
	PathName string
	MaxScore int

	// Lineage holds the name of the taxon at each of Ranks,
	// or taxonomy.NoName.
	Lineage []string

	// Warning is a non-nil *taxonomy.IncompletePathError if
	// any path used for the call did not reach the root.
	Warning error
}

// Assigner makes taxonomic calls against a taxonomy.
type Assigner struct {
	tax *taxonomy.Cache

	// MinScore is the lowest hit score considered.
	MinScore int
	// Fraction is the fraction of the best score a hit must reach.
	Fraction float64

	// Progress, if not nil, is called by AssignAll as each group
	// is completed. It may be called concurrently.
	Progress func()
}

// NewAssigner returns an Assigner using the default thresholds. Paths
// resolved from tax are cached for the lifetime of the Assigner.
func NewAssigner(tax *taxonomy.Store) *Assigner {
	return &Assigner{
		tax:      taxonomy.NewCache(tax),
		MinScore: DefaultMinScore,
		Fraction: DefaultFraction,
	}
}

// Cutoff returns the lowest score admitted given the best score.
func (a *Assigner) Cutoff(best int) int {
	return int(math.Floor(a.Fraction * float64(best)))
}

// Assign returns the taxonomic call for g. Hits that are unclassified or
// score below MinScore are ignored, and if no hit remains ok is false.
// The taxa of hits scoring at least Cutoff of the best remaining score are
// combined by taxonomy.LCA.
func (a *Assigner) Assign(g centrifuge.Group) (res Result, ok bool, err error) {
	var (
		hits = make([]centrifuge.Hit, 0, len(g.Hits))
		best int
	)
	for _, h := range g.Hits {
		if h.Taxid == taxonomy.Unclassified || h.Score < a.MinScore {
			continue
		}
		if len(hits) == 0 || h.Score > best {
			best = h.Score
		}
		hits = append(hits, h)
	}
	if len(hits) == 0 {
		return Result{}, false, nil
	}

	cutoff := a.Cutoff(best)
	ids := make([]taxonomy.Taxid, 0, len(hits))
	for _, h := range hits {
		if h.Score >= cutoff {
			ids = append(ids, h.Taxid)
		}
	}

	var incomplete *taxonomy.IncompletePathError
	id, err := a.tax.LCA(ids...)
	if err != nil && !errors.As(err, &incomplete) {
		return Result{}, false, err
	}
	warn := err
	path, err := a.tax.Path(id)
	if err != nil {
		if !errors.As(err, &incomplete) {
			return Result{}, false, err
		}
		if warn == nil {
			warn = err
		}
	}

	res = Result{
		Contig:   g.ID,
		Taxid:    id,
		Name:     taxonomy.NoName,
		Rank:     taxonomy.NoName,
		Path:     path,
		PathName: a.tax.PathNames(path),
		MaxScore: best,
		Lineage:  make([]string, len(Ranks)),
		Warning:  warn,
	}
	if t, ok := a.tax.Taxon(id); ok {
		res.Name = t.Name
		res.Rank = t.Rank
	}
	for i, r := range Ranks {
		res.Lineage[i] = a.tax.NameAtRank(path, r, fallback[r]...)
	}
	return res, true, nil
}

// AssignAll returns the taxonomic calls for groups, in the order of groups,
// omitting groups with no eligible hits. Groups are processed by up to
// workers goroutines; if workers is less than one, GOMAXPROCS is used.
// The first fatal error encountered is returned.
func (a *Assigner) AssignAll(groups []centrifuge.Group, workers int) ([]Result, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	type slot struct {
		res Result
		ok  bool
		err error
	}
	slots := make([]slot, len(groups))

	wg := &sync.WaitGroup{}
	q := make(chan struct{}, workers)
	for i := range groups {
		wg.Add(1)
		q <- struct{}{}
		go func(i int) {
			defer func() { <-q; wg.Done() }()
			s := &slots[i]
			s.res, s.ok, s.err = a.Assign(groups[i])
			if a.Progress != nil {
				a.Progress()
			}
		}(i)
	}
	wg.Wait()

	results := make([]Result, 0, len(groups))
	for _, s := range slots {
		if s.err != nil {
			return nil, s.err
		}
		if s.ok {
			results = append(results, s.res)
		}
	}
	return results, nil
}
