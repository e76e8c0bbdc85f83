// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package srcmap

import "math"

// A base64 VLQ value is a little-endian sequence of 5-bit groups, one base64
// digit each.  Bit 5 of every digit is a continuation flag ("more groups
// follow"); the remaining bits are payload.  After reassembly, bit 0 of the
// whole value is the sign and the rest is the magnitude:
//
//	Continuation
//	|    Sign
//	|    |
//	V    V
//	101011
const (
	vlqBaseShift       = 5
	vlqBase            = 1 << vlqBaseShift
	vlqBaseMask        = vlqBase - 1
	vlqContinuationBit = vlqBase

	// vlqMaxShift bounds continuation chains.  Past this shift no further
	// group can contribute to a value whose magnitude fits in 32 bits, so a
	// still-set continuation flag is an adversarial encoding, not data.
	vlqMaxShift = 35
)

// decodeVLQ decodes one signed VLQ value from payload starting at pos and
// returns the value and the cursor position just past it.  On failure the
// cursor is meaningless and the caller must abandon the whole decode: a
// malformed field cannot be skipped because every later field's meaning
// depends on it.
func decodeVLQ(payload []byte, pos int) (value int32, next int, err error) {
	var result uint64
	shift := uint(0)
	for {
		if pos >= len(payload) || payload[pos] == ';' || payload[pos] == ',' {
			// String end and segment/line boundaries terminate a value
			// the same way.
			return 0, pos, ErrTruncatedVLQ
		}
		digit := decodeBase64(payload[pos])
		if digit == invalidBase64 {
			return 0, pos, ErrInvalidVLQChar
		}
		pos++
		continuation := digit&vlqContinuationBit != 0
		result |= uint64(digit&vlqBaseMask) << shift
		shift += vlqBaseShift
		if !continuation {
			break
		}
		if shift > vlqMaxShift {
			return 0, pos, ErrVLQOverflow
		}
	}

	// Move the sign out of bit 0: 2 is 1, 3 is -1, 4 is 2, 5 is -2, ...
	magnitude := result >> 1
	if magnitude > math.MaxInt32 {
		return 0, pos, ErrVLQOverflow
	}
	if result&1 != 0 {
		return -int32(magnitude), pos, nil
	}
	return int32(magnitude), pos, nil
}
