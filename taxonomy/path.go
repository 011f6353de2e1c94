// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package taxonomy

import (
	"strconv"
	"strings"
)

// Path is a sequence of taxids ordered from the root to a leaf.
type Path []Taxid

// Leaf returns the last taxid of the path, or zero for an empty path.
func (p Path) Leaf() Taxid {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1]
}

// Contains returns whether t is in the path.
func (p Path) Contains(t Taxid) bool {
	for _, v := range p {
		if v == t {
			return true
		}
	}
	return false
}

// String returns the path as semicolon separated taxids.
func (p Path) String() string {
	var b strings.Builder
	for i, t := range p {
		if i != 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Itoa(int(t)))
	}
	return b.String()
}

// Pather is the interface implemented by types that can resolve the path
// from the root to a taxon.
type Pather interface {
	Path(Taxid) (Path, error)
}

// Path returns the path from the root to id. If the root cannot be
// reached, the partial path ending at id is returned along with an
// *IncompletePathError.
func (s *Store) Path(id Taxid) (Path, error) {
	if id == Root {
		return Path{Root}, nil
	}
	p := Path{id}
	seen := map[Taxid]bool{id: true}
	for cur := id; cur != Root; {
		parent, ok := s.Parent(cur)
		if !ok {
			reverse(p)
			return p, &IncompletePathError{Taxid: id, Stop: cur}
		}
		if seen[parent] {
			reverse(p)
			return p, &IncompletePathError{Taxid: id, Stop: parent, Cycle: true}
		}
		seen[parent] = true
		p = append(p, parent)
		cur = parent
	}
	reverse(p)
	return p, nil
}

func reverse(p Path) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}

// PathNames returns the scientific names of the taxa in p joined by
// semicolons, with a trailing semicolon. Unknown taxa are given NoName.
func (s *Store) PathNames(p Path) string {
	var b strings.Builder
	for _, t := range p {
		name, ok := s.Name(t)
		if !ok {
			name = NoName
		}
		b.WriteString(name)
		b.WriteByte(';')
	}
	return b.String()
}
