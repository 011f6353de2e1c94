// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package taxonomy

// Common rank names used in NCBI taxonomy dumps.
const (
	Superkingdom = "superkingdom"
	Phylum       = "phylum"
	Class        = "class"
	Subclass     = "subclass"
	Order        = "order"
	Family       = "family"
	Genus        = "genus"
	Species      = "species"
	NoRank       = "no rank"
)

// AtRank returns the first taxid in p, searching from the root, with the
// given rank. If no taxon in p has that rank, each of the fallback ranks is
// tried in turn.
func (s *Store) AtRank(p Path, rank string, fallback ...string) (Taxid, bool) {
	if id, ok := s.atRank(p, rank); ok {
		return id, true
	}
	for _, r := range fallback {
		if id, ok := s.atRank(p, r); ok {
			return id, true
		}
	}
	return 0, false
}

func (s *Store) atRank(p Path, rank string) (Taxid, bool) {
	for _, id := range p {
		if r, ok := s.Rank(id); ok && r == rank {
			return id, true
		}
	}
	return 0, false
}

// NameAtRank is like AtRank but returns the scientific name of the taxon
// found, or NoName if there is none.
func (s *Store) NameAtRank(p Path, rank string, fallback ...string) string {
	id, ok := s.AtRank(p, rank, fallback...)
	if !ok {
		return NoName
	}
	name, ok := s.Name(id)
	if !ok {
		return NoName
	}
	return name
}
