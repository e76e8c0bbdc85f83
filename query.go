// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package srcmap

import "sort"

// Cache is the immutable result of consuming a source map.  It owns the
// per-line mapping index, the interned source and name tables, and the
// document's file metadata.  A Cache is never mutated after construction and
// may be queried from any number of goroutines without locking.
type Cache struct {
	index   *lineIndex
	table   *stringTable
	file    string
	root    string
	content []*string
}

// CodePosition is a position in a text file: 1-based line, 0-based column.
type CodePosition struct {
	Line   uint32
	Column uint32
}

// Mapping relates a generated position to the original position that
// produced it.  Original is nil for generated regions with no recorded
// original side.  Source is the sourceRoot-joined source path, empty when
// the entry has no original side or the document recorded null for that
// source.  Name is empty when the entry carries no name.
type Mapping struct {
	Generated CodePosition
	Original  *CodePosition
	Source    string
	Name      string
}

// File returns the document's file field, if any.
func (c *Cache) File() string {
	return c.file
}

// SourceRoot returns the document's raw sourceRoot field, if any.
func (c *Cache) SourceRoot() string {
	return c.root
}

// Sources returns the resolved, root-joined sources in document order.
// Null entries are empty strings.
func (c *Cache) Sources() []string {
	return c.table.sourceList()
}

// SourceContent returns the embedded content for a zero-based source index.
// ok is false when the document embeds no content for that source.  The
// content is pass-through data; nothing is decoded or validated here.
func (c *Cache) SourceContent(index uint32) (string, bool) {
	if uint64(index) >= uint64(len(c.content)) || c.content[index] == nil {
		return "", false
	}
	return *c.content[index], true
}

// MappingForGeneratedPosition returns the mapping in effect at a generated
// position: the entry with the greatest generated position not exceeding
// (line, column).  The query line is searched first; if it has no entry at
// or before column, preceding lines are scanned backward for their last
// entry.  ok is false when no mapping exists at or before the position
// anywhere in the document, which is a normal outcome, not an error.
//
// Lines are 1-based, columns 0-based.  The method never fails and never
// mutates the Cache; all fallibility was resolved during Consume.
func (c *Cache) MappingForGeneratedPosition(line, column uint32) (Mapping, bool) {
	if line == 0 {
		return Mapping{}, false
	}
	// int64 so the query line survives 32-bit int platforms.
	queryLine := int64(line) - 1
	start := queryLine
	if last := int64(c.index.lineCount()) - 1; start > last {
		start = last
	}

	for l := start; l >= 0; l-- {
		entries := c.index.entries(int(l))
		if len(entries) == 0 {
			continue
		}
		if l == queryLine {
			if e, ok := lastAtOrBefore(entries, column); ok {
				return c.resolve(e, int(l)), true
			}
			// The line's first entry is already past the column.
			continue
		}
		// A preceding line: its last entry holds the greatest generated
		// position not exceeding the query.
		return c.resolve(entries[len(entries)-1], int(l)), true
	}
	return Mapping{}, false
}

// lastAtOrBefore returns the rightmost entry whose generated column is at or
// before column.  Entries are in the payload's emission order; if a document
// violates the ascending-column convention, which of several tied or
// inverted entries wins is unspecified, but the search stays in bounds.
func lastAtOrBefore(entries []mappingEntry, column uint32) (mappingEntry, bool) {
	i := sort.Search(len(entries), func(i int) bool {
		return entries[i].generatedColumn > column
	})
	if i == 0 {
		return mappingEntry{}, false
	}
	return entries[i-1], true
}

// resolve turns an internal 0-based entry into a public Mapping.
func (c *Cache) resolve(e mappingEntry, line int) Mapping {
	m := Mapping{
		Generated: CodePosition{Line: uint32(line) + 1, Column: e.generatedColumn},
	}
	if !e.hasMapping {
		return m
	}
	m.Original = &CodePosition{Line: e.originalLine + 1, Column: e.originalColumn}
	if s, ok := c.table.source(e.sourceIndex); ok {
		m.Source = s
	}
	if e.hasName {
		if n, ok := c.table.name(e.nameIndex); ok {
			m.Name = n
		}
	}
	return m
}
