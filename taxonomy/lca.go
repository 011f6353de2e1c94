// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package taxonomy

import "errors"

// CommonAncestor returns the deepest taxid shared by the paths of a and b.
//
// The shorter of the two paths is walked from its leaf towards the root
// until a taxid present in the longer path is found. When the paths are the
// same length, the path of a is treated as the shorter. If either path is
// incomplete, the ancestor is still computed from the partial paths and the
// *IncompletePathError is returned with it. Paths without a shared taxid
// return a *DisjointPathError.
func CommonAncestor(p Pather, a, b Taxid) (Taxid, error) {
	pa, warn, err := path(p, a, nil)
	if err != nil {
		return 0, err
	}
	pb, warn, err := path(p, b, warn)
	if err != nil {
		return 0, err
	}

	shorter, longer := pa, pb
	if len(pa) > len(pb) {
		shorter, longer = pb, pa
	}
	if len(shorter) == 0 && len(longer) != 0 {
		return longer.Leaf(), warn
	}
	for i := len(shorter) - 1; i >= 0; i-- {
		if longer.Contains(shorter[i]) {
			return shorter[i], warn
		}
	}
	return 0, &DisjointPathError{A: pa, B: pb}
}

// LCA returns the lowest common ancestor of ids by folding CommonAncestor
// over ids from left to right. A single taxid is its own LCA. An empty ids
// returns ErrEmptyInput.
//
// As with CommonAncestor, a non-nil *IncompletePathError is returned with
// a valid result; any other error is fatal.
func LCA(p Pather, ids ...Taxid) (Taxid, error) {
	switch len(ids) {
	case 0:
		return 0, ErrEmptyInput
	case 1:
		pa, err := p.Path(ids[0])
		if len(pa) == 0 {
			return 0, err
		}
		return pa.Leaf(), err
	}

	var warn error
	lca := ids[0]
	for _, id := range ids[1:] {
		var err error
		lca, err = CommonAncestor(p, lca, id)
		if err != nil {
			var incomplete *IncompletePathError
			if !errors.As(err, &incomplete) {
				return 0, err
			}
			if warn == nil {
				warn = err
			}
		}
	}
	return lca, warn
}

// LCA returns the lowest common ancestor of ids in s.
func (s *Store) LCA(ids ...Taxid) (Taxid, error) { return LCA(s, ids...) }

// path returns the path to id and the first incomplete path warning seen,
// given a previous warning.
func path(p Pather, id Taxid, prev error) (pa Path, warn, err error) {
	warn = prev
	pa, err = p.Path(id)
	if err != nil {
		var incomplete *IncompletePathError
		if !errors.As(err, &incomplete) {
			return nil, warn, err
		}
		if warn == nil {
			warn = err
		}
	}
	return pa, warn, nil
}
