// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package taxonomy provides an in-memory NCBI taxonomy built from the
// names.dmp and nodes.dmp files of a taxdump, with ancestor path, lowest
// common ancestor and rank queries.
package taxonomy

import (
	"io"

	"github.com/biogo/metatools/xopen"
)

// NoName is the name given to taxa that have no scientific name in the
// names dump.
const NoName = "None"

// Taxon is a single node of the taxonomy.
type Taxon struct {
	ID     Taxid
	Parent Taxid
	Name   string
	Rank   string
}

// Store holds a taxonomy. A Store is not modified after it is loaded and
// is safe for concurrent use.
type Store struct {
	taxa map[Taxid]Taxon
}

// Load reads the names and nodes dumps at the given paths. Gzip compressed
// dumps are decompressed. Failures are returned as a *DataLoadError.
func Load(namesPath, nodesPath string) (*Store, error) {
	names, err := xopen.Open(namesPath)
	if err != nil {
		return nil, &DataLoadError{File: namesPath, Err: err}
	}
	defer names.Close()
	nodes, err := xopen.Open(nodesPath)
	if err != nil {
		return nil, &DataLoadError{File: nodesPath, Err: err}
	}
	defer nodes.Close()
	return read(names, namesPath, nodes, nodesPath)
}

// Read reads a taxonomy from names and nodes dump streams.
func Read(names, nodes io.Reader) (*Store, error) {
	return read(names, "names", nodes, "nodes")
}

func read(names io.Reader, namesFile string, nodes io.Reader, nodesFile string) (*Store, error) {
	sciNames := make(map[Taxid]string)
	err := readDump(names, namesFile, 4, func(f []string) error {
		if f[3] != ScientificName {
			return nil
		}
		id, err := ParseTaxid(f[0])
		if err != nil {
			return err
		}
		sciNames[id] = f[1]
		return nil
	})
	if err != nil {
		return nil, err
	}

	s := &Store{taxa: make(map[Taxid]Taxon, len(sciNames))}
	err = readDump(nodes, nodesFile, 3, func(f []string) error {
		id, err := ParseTaxid(f[0])
		if err != nil {
			return err
		}
		parent, err := ParseTaxid(f[1])
		if err != nil {
			return err
		}
		name, ok := sciNames[id]
		if !ok {
			name = NoName
		}
		s.taxa[id] = Taxon{ID: id, Parent: parent, Name: name, Rank: f[2]}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// NewStore returns a Store holding the given taxa. Later taxa replace
// earlier taxa with the same ID.
func NewStore(taxa ...Taxon) *Store {
	s := &Store{taxa: make(map[Taxid]Taxon, len(taxa))}
	for _, t := range taxa {
		s.taxa[t.ID] = t
	}
	return s
}

// Len returns the number of taxa in the store.
func (s *Store) Len() int { return len(s.taxa) }

// Taxon returns the taxon with the given id.
func (s *Store) Taxon(id Taxid) (Taxon, bool) {
	t, ok := s.taxa[id]
	return t, ok
}

// Parent returns the parent of id. The parent of the root is the root.
func (s *Store) Parent(id Taxid) (Taxid, bool) {
	t, ok := s.taxa[id]
	return t.Parent, ok
}

// Name returns the scientific name of id.
func (s *Store) Name(id Taxid) (string, bool) {
	t, ok := s.taxa[id]
	return t.Name, ok
}

// Rank returns the rank of id.
func (s *Store) Rank(id Taxid) (string, bool) {
	t, ok := s.taxa[id]
	return t.Rank, ok
}

// Do calls fn for each taxon in the store in no particular order.
func (s *Store) Do(fn func(Taxon)) {
	for _, t := range s.taxa {
		fn(t)
	}
}
