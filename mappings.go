// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package srcmap

import (
	"math"

	"fortio.org/safecast"
)

// The mappings payload is generated lines separated by ';', segments within
// a line separated by ','.  A segment is 1, 4 or 5 VLQ fields:
//
//	generatedColumn [, source, originalLine, originalColumn [, name]]
//
// Every field is a delta against running state.  Source, original line,
// original column and name accumulate over the whole document; generated
// column resets at each ';'.  Decoding is therefore one forward pass: no
// field can be interpreted without all prior state.
const maxSegmentFields = 5

// parseMappings decodes the payload into a per-line index.  table supplies
// the bounds for source and name references, so that every index stored in
// an entry is known resolvable and queries never fail.
func parseMappings(payload []byte, table *stringTable) (*lineIndex, error) {
	idx := newLineIndex()

	// Cumulative over the whole document.
	var srcIndex, origLine, origCol, nameIndex int64
	// Per generated line.
	var genCol int64

	pos := 0
	lineNo := 0
	segNo := 0

	for pos < len(payload) {
		switch payload[pos] {
		case ';':
			idx.nextLine()
			pos++
			lineNo++
			segNo = 0
			genCol = 0
			// Public line numbers are 1-based uint32.
			if int64(lineNo) >= math.MaxUint32 {
				return nil, atPos(ErrVLQOverflow, lineNo, segNo)
			}
			continue
		case ',':
			// Empty segments are valid and produce nothing.
			pos++
			segNo++
			continue
		}

		var fields [maxSegmentFields]int32
		nFields := 0
		for pos < len(payload) && payload[pos] != ';' && payload[pos] != ',' {
			if nFields == maxSegmentFields {
				return nil, atPos(ErrMalformedSegment, lineNo, segNo)
			}
			v, next, err := decodeVLQ(payload, pos)
			if err != nil {
				return nil, atPos(err, lineNo, segNo)
			}
			fields[nFields] = v
			nFields++
			pos = next
		}

		switch nFields {
		case 1, 4, 5:
		default:
			return nil, atPos(ErrMalformedSegment, lineNo, segNo)
		}

		var entry mappingEntry
		var err error

		genCol += int64(fields[0])
		entry.generatedColumn, err = absolutePosition(genCol)
		if err != nil {
			return nil, atPos(err, lineNo, segNo)
		}

		if nFields > 1 {
			entry.hasMapping = true

			srcIndex += int64(fields[1])
			entry.sourceIndex, err = absolutePosition(srcIndex)
			if err != nil {
				return nil, atPos(err, lineNo, segNo)
			}
			if srcIndex >= int64(table.sourceCount()) {
				return nil, atPos(ErrSourceOutOfRange, lineNo, segNo)
			}

			origLine += int64(fields[2])
			entry.originalLine, err = absolutePosition(origLine)
			if err != nil {
				return nil, atPos(err, lineNo, segNo)
			}

			origCol += int64(fields[3])
			entry.originalColumn, err = absolutePosition(origCol)
			if err != nil {
				return nil, atPos(err, lineNo, segNo)
			}
		}

		if nFields > 4 {
			entry.hasName = true

			nameIndex += int64(fields[4])
			entry.nameIndex, err = absolutePosition(nameIndex)
			if err != nil {
				return nil, atPos(err, lineNo, segNo)
			}
			if nameIndex >= int64(table.nameCount()) {
				return nil, atPos(ErrNameOutOfRange, lineNo, segNo)
			}
		}

		idx.add(entry)
	}

	return idx, nil
}

// absolutePosition narrows an accumulated position or index to uint32.
// Negative accumulations are rejected, never wrapped; accumulations past 32
// bits report ErrVLQOverflow.
func absolutePosition(v int64) (uint32, error) {
	if v < 0 {
		return 0, ErrNegativePosition
	}
	u, err := safecast.Conv[uint32](v)
	if err != nil {
		return 0, ErrVLQOverflow
	}
	return u, nil
}
