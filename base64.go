// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package srcmap

// The mappings payload uses the standard base64 alphabet, one character per
// 6-bit digit: A-Z is 0-25, a-z is 26-51, 0-9 is 52-61, then '+' is 62 and
// '/' is 63.  Decoding is a table lookup; the table is read-only,
// process-wide data with no lifecycle concerns.

const invalidBase64 = -1

// base64Table maps a byte to its 6-bit digit value, or invalidBase64 for
// bytes outside the alphabet.
var base64Table = buildBase64Table()

func buildBase64Table() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = invalidBase64
	}
	for ch := byte('A'); ch <= 'Z'; ch++ {
		t[ch] = int8(ch - 'A')
	}
	for ch := byte('a'); ch <= 'z'; ch++ {
		t[ch] = int8(ch - 'a' + 26)
	}
	for ch := byte('0'); ch <= '9'; ch++ {
		t[ch] = int8(ch - '0' + 52)
	}
	t['+'] = 62
	t['/'] = 63
	return t
}

// decodeBase64 returns the 6-bit value of a single base64 digit, or
// invalidBase64 if ch is not in the alphabet.
func decodeBase64(ch byte) int8 {
	return base64Table[ch]
}
