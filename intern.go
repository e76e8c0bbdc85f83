// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package srcmap

import "strings"

// noString marks a source slot whose document entry was null.
const noString = -1

// stringTable owns the interned sources and names of a document.  Mapping
// entries reference strings only by positional index, never by copy; the
// backing pool deduplicates storage while the index tables preserve document
// order, so duplicate entries (common in concatenated bundles) cost one
// string.  Source paths are sourceRoot-joined once here, not per query.
type stringTable struct {
	pool    []string
	poolIdx map[string]int
	sources []int // pool offsets, noString for null entries
	names   []int // pool offsets
}

func newStringTable(root string, sources []*string, names []string) *stringTable {
	t := &stringTable{
		poolIdx: make(map[string]int, len(sources)+len(names)),
		sources: make([]int, 0, len(sources)),
		names:   make([]int, 0, len(names)),
	}
	for _, s := range sources {
		if s == nil {
			t.sources = append(t.sources, noString)
			continue
		}
		t.sources = append(t.sources, t.intern(joinSourceRoot(root, *s)))
	}
	for _, n := range names {
		t.names = append(t.names, t.intern(n))
	}
	return t
}

func (t *stringTable) intern(s string) int {
	if off, ok := t.poolIdx[s]; ok {
		return off
	}
	off := len(t.pool)
	t.pool = append(t.pool, s)
	t.poolIdx[s] = off
	return off
}

func (t *stringTable) sourceCount() int { return len(t.sources) }
func (t *stringTable) nameCount() int   { return len(t.names) }

// source returns the resolved source path for a zero-based index.  ok is
// false when the index is out of range or the document recorded null for
// that slot.
func (t *stringTable) source(i uint32) (string, bool) {
	if uint64(i) >= uint64(len(t.sources)) || t.sources[i] == noString {
		return "", false
	}
	return t.pool[t.sources[i]], true
}

// name returns the name for a zero-based index.
func (t *stringTable) name(i uint32) (string, bool) {
	if uint64(i) >= uint64(len(t.names)) {
		return "", false
	}
	return t.pool[t.names[i]], true
}

// sourceList returns the resolved sources in document order.  Null slots are
// empty strings.
func (t *stringTable) sourceList() []string {
	out := make([]string, len(t.sources))
	for i, off := range t.sources {
		if off != noString {
			out[i] = t.pool[off]
		}
	}
	return out
}

// joinSourceRoot prepends root to source with exactly one separating slash.
// An empty root or an absolute source URL leaves source untouched.
func joinSourceRoot(root, source string) string {
	if root == "" || strings.Contains(source, "://") {
		return source
	}
	rootSlash := strings.HasSuffix(root, "/")
	sourceSlash := strings.HasPrefix(source, "/")
	switch {
	case rootSlash && sourceSlash:
		return root + source[1:]
	case rootSlash || sourceSlash:
		return root + source
	default:
		return root + "/" + source
	}
}
