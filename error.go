// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package srcmap

import (
	"errors"
	"fmt"
)

// Errors returned by Consume.  All are detected during construction; queries
// on a built Cache never fail.  Each may be wrapped with positional context,
// so callers should match with errors.Is.
var (
	// ErrMalformedJSON indicates the outer JSON envelope could not be
	// parsed.  The underlying decoder error is wrapped for detail.
	ErrMalformedJSON = errors.New("malformed source map JSON")

	// ErrUnsupportedVersion indicates the document's version field is not 3.
	ErrUnsupportedVersion = errors.New("only source map version 3 is supported")

	// ErrMissingMappings indicates the required mappings field is absent.
	// Other fields may default to empty; mappings may not.
	ErrMissingMappings = errors.New("source map has no mappings field")

	// ErrInvalidVLQChar indicates a character outside the base64 VLQ
	// alphabet in the mappings payload.
	ErrInvalidVLQChar = errors.New("invalid character in VLQ mapping field")

	// ErrTruncatedVLQ indicates the payload ended mid-value, with a
	// continuation bit still pending.
	ErrTruncatedVLQ = errors.New("truncated VLQ mapping field")

	// ErrVLQOverflow indicates a value outside the representable range,
	// either from an over-long continuation chain or from cumulative
	// positions exceeding 32 bits.
	ErrVLQOverflow = errors.New("VLQ value out of range")

	// ErrMalformedSegment indicates a segment with a field count other than
	// 1, 4 or 5.
	ErrMalformedSegment = errors.New("mapping segment must have 1, 4 or 5 fields")

	// ErrNegativePosition indicates a cumulative position or index went
	// negative.
	ErrNegativePosition = errors.New("mapping position is negative")

	// ErrSourceOutOfRange indicates a mapping references a source index not
	// present in the sources list.
	ErrSourceOutOfRange = errors.New("source index out of range")

	// ErrNameOutOfRange indicates a mapping references a name index not
	// present in the names list.
	ErrNameOutOfRange = errors.New("name index out of range")
)

// atPos wraps err with the zero-based generated line and segment ordinal at
// which decoding failed.  Payload positions, not query positions: these count
// ';' and ',' delimiters in the mappings string.
func atPos(err error, line, segment int) error {
	return fmt.Errorf("mappings line %d, segment %d: %w", line, segment, err)
}
