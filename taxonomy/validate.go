// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package taxonomy

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Validate checks that every parent link in s refers to a taxon in s and
// that no chain of parent links forms a cycle other than the root's link
// to itself. Problems are reported in a *ValidationError.
func (s *Store) Validate() error {
	var (
		g        = simple.NewDirectedGraph()
		dangling = make(map[Taxid]Taxid)
		cycles   [][]Taxid
	)
	for id, t := range s.taxa {
		if g.Node(int64(id)) == nil {
			g.AddNode(simple.Node(id))
		}
		switch {
		case t.Parent == id:
			if id != Root {
				cycles = append(cycles, []Taxid{id})
			}
		case s.has(t.Parent):
			g.SetEdge(g.NewEdge(simple.Node(id), simple.Node(t.Parent)))
		default:
			dangling[id] = t.Parent
		}
	}

	_, err := topo.Sort(g)
	if err != nil {
		var u topo.Unorderable
		if !errors.As(err, &u) {
			return err
		}
		for _, c := range u {
			cycle := make([]Taxid, len(c))
			for i, n := range c {
				cycle[i] = Taxid(n.ID())
			}
			sort.Slice(cycle, func(i, j int) bool { return cycle[i] < cycle[j] })
			cycles = append(cycles, cycle)
		}
	}

	if len(dangling) == 0 && len(cycles) == 0 {
		return nil
	}
	sort.Slice(cycles, func(i, j int) bool { return cycles[i][0] < cycles[j][0] })
	return &ValidationError{Dangling: dangling, Cycles: cycles}
}

func (s *Store) has(id Taxid) bool {
	_, ok := s.taxa[id]
	return ok
}
