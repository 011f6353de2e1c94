// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package taxonomy

import "sync"

// Cache memoizes root paths resolved from a Store. It is safe for
// concurrent use. Paths returned by a Cache are shared and must not be
// modified.
type Cache struct {
	*Store

	mu    sync.RWMutex
	paths map[Taxid]cachedPath
}

type cachedPath struct {
	path Path
	err  error
}

// NewCache returns a Cache over s.
func NewCache(s *Store) *Cache {
	return &Cache{Store: s, paths: make(map[Taxid]cachedPath)}
}

// Path returns the path from the root to id, as Store.Path.
func (c *Cache) Path(id Taxid) (Path, error) {
	c.mu.RLock()
	cp, ok := c.paths[id]
	c.mu.RUnlock()
	if ok {
		return cp.path, cp.err
	}

	p, err := c.Store.Path(id)
	c.mu.Lock()
	c.paths[id] = cachedPath{path: p, err: err}
	c.mu.Unlock()
	return p, err
}

// LCA returns the lowest common ancestor of ids using cached paths.
func (c *Cache) LCA(ids ...Taxid) (Taxid, error) { return LCA(c, ids...) }

// Cached returns the number of cached paths.
func (c *Cache) Cached() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.paths)
}
