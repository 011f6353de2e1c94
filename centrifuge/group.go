// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package centrifuge

// Group is the set of hits sharing a read or contig ID.
type Group struct {
	ID   string
	Hits []Hit
}

// Grouper collects hits into groups by ReadID, keeping groups in the order
// their IDs were first added.
type Grouper struct {
	index  map[string]int
	groups []Group
}

// NewGrouper returns a new empty Grouper.
func NewGrouper() *Grouper {
	return &Grouper{index: make(map[string]int)}
}

// Add adds h to the group for h.ReadID.
func (g *Grouper) Add(h Hit) {
	i, ok := g.index[h.ReadID]
	if !ok {
		i = len(g.groups)
		g.index[h.ReadID] = i
		g.groups = append(g.groups, Group{ID: h.ReadID})
	}
	g.groups[i].Hits = append(g.groups[i].Hits, h)
}

// Len returns the number of groups.
func (g *Grouper) Len() int { return len(g.groups) }

// Groups returns the collected groups in first seen order.
func (g *Grouper) Groups() []Group { return g.groups }
