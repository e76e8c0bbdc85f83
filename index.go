// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package srcmap

// mappingEntry is one decoded segment with absolute positions, all 0-based.
// The original side is present as a whole or not at all: sourceIndex,
// originalLine and originalColumn are meaningful only when hasMapping is set,
// and nameIndex only when hasName is set.  hasName implies hasMapping.
type mappingEntry struct {
	generatedColumn uint32
	sourceIndex     uint32
	originalLine    uint32
	originalColumn  uint32
	nameIndex       uint32
	hasMapping      bool
	hasName         bool
}

// lineIndex stores mapping entries grouped by generated line in a dense
// table, so line lookup is a slice index.  The line count is bounded by the
// number of ';' delimiters in the payload, hence by input size.  Entries
// keep the assembler's emission order; the builder does not re-sort, per the
// format's ascending-column convention.
type lineIndex struct {
	lines [][]mappingEntry
}

func newLineIndex() *lineIndex {
	return &lineIndex{lines: make([][]mappingEntry, 1)}
}

// nextLine starts a new generated line.  Called once per ';' so that empty
// lines still occupy a slot and later line numbers do not skew.
func (x *lineIndex) nextLine() {
	x.lines = append(x.lines, nil)
}

// add appends an entry to the current (last) generated line.
func (x *lineIndex) add(e mappingEntry) {
	n := len(x.lines) - 1
	x.lines[n] = append(x.lines[n], e)
}

// entries returns the entries for a zero-based generated line, nil when the
// line is out of range or has none.
func (x *lineIndex) entries(line int) []mappingEntry {
	if line < 0 || line >= len(x.lines) {
		return nil
	}
	return x.lines[line]
}

func (x *lineIndex) lineCount() int {
	return len(x.lines)
}
