// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package srcmap

import (
	"errors"
	"testing"
)

// vlqCorpus pairs known encodings with their values.
var vlqCorpus = []struct {
	encoded string
	value   int32
}{
	{"hkh9B", -1000000},
	{"ruyH", -124133},
	{"5iY", -12332},
	{"9qE", -2222},
	{"3iD", -1579},
	{"jE", -65},
	{"zB", -25},
	{"pB", -20},
	{"X", -11},
	{"T", -9},
	{"F", -2},
	{"D", -1},
	{"A", 0},
	{"C", 1},
	{"O", 7},
	{"e", 15},
	{"uB", 23},
	{"wF", 88},
	{"suC", 1254},
	{"67E", 2493},
	{"+1uB", 23903},
	{"u28H", 129383},
	{"k1mS", 298322},
	{"gkh9B", 1000000},
}

func TestDecodeVLQ_Corpus(t *testing.T) {
	t.Parallel()

	for _, c := range vlqCorpus {
		v, next, err := decodeVLQ([]byte(c.encoded), 0)
		if err != nil {
			t.Errorf("decodeVLQ(%q): unexpected error: %v", c.encoded, err)
			continue
		}
		if v != c.value {
			t.Errorf("decodeVLQ(%q): got %d, want %d", c.encoded, v, c.value)
		}
		if next != len(c.encoded) {
			t.Errorf("decodeVLQ(%q): cursor at %d, want %d", c.encoded, next, len(c.encoded))
		}
	}
}

func TestDecodeVLQ_CursorAdvance(t *testing.T) {
	t.Parallel()

	// "ABCDE" is five single-digit values; each decode consumes one byte.
	payload := []byte("ABCDE")
	want := []int32{0, 0, 1, -1, 2}
	for pos, w := range want {
		v, next, err := decodeVLQ(payload, pos)
		if err != nil {
			t.Fatalf("decodeVLQ at %d: unexpected error: %v", pos, err)
		}
		if v != w {
			t.Errorf("decodeVLQ at %d: got %d, want %d", pos, v, w)
		}
		if next != pos+1 {
			t.Errorf("decodeVLQ at %d: cursor at %d, want %d", pos, next, pos+1)
		}
	}
}

func TestDecodeVLQ_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		label   string
		encoded string
		wantErr error
	}{
		{"empty input", "", ErrTruncatedVLQ},
		{"continuation at end", "g", ErrTruncatedVLQ},
		{"long continuation at end", "ggg", ErrTruncatedVLQ},
		{"invalid character", "@", ErrInvalidVLQChar},
		{"invalid character mid-value", "g@", ErrInvalidVLQChar},
		{"boundary mid-value", "g;AAAA", ErrTruncatedVLQ},
		{"comma boundary mid-value", "g,C", ErrTruncatedVLQ},
		{"unterminated chain", "gggggggg", ErrVLQOverflow},
		{"magnitude past 32 bits", "///////B", ErrVLQOverflow},
	}

	for _, c := range cases {
		c := c
		t.Run(c.label, func(t *testing.T) {
			t.Parallel()
			_, _, err := decodeVLQ([]byte(c.encoded), 0)
			if !errors.Is(err, c.wantErr) {
				t.Errorf("decodeVLQ(%q): got %v, want %v", c.encoded, err, c.wantErr)
			}
		})
	}
}

func TestDecodeVLQ_RandomBytesNeverPanic(t *testing.T) {
	t.Parallel()

	// Deterministic xorshift; decoding must error or succeed, never abort.
	state := uint64(0x9E3779B97F4A7C15)
	next := func() uint64 {
		state ^= state << 13
		state ^= state >> 7
		state ^= state << 17
		return state
	}

	buf := make([]byte, 32)
	for i := 0; i < 4096; i++ {
		n := int(next()%uint64(len(buf))) + 1
		for j := 0; j < n; j++ {
			buf[j] = byte(next())
		}
		_, _, _ = decodeVLQ(buf[:n], 0)
	}
}
