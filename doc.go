// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package srcmap is a hardened consumer for revision 3 source maps.  It
// decodes the base64-VLQ mapping payload of a source map document into an
// immutable, queryable Cache that resolves generated (line, column) positions
// back to original source positions.  Decoding is a single forward pass over
// the payload with no I/O; once built, a Cache is safe for concurrent
// read-only queries without locking.
//
// Input is untrusted.  Every malformed document -- bad JSON envelope, wrong
// version, invalid or truncated VLQ sequences, over-long continuation chains,
// negative cumulative positions, dangling source or name indices -- is
// reported as a typed error from Consume.  No input, however adversarial, may
// panic; several of the guards here exist because fuzzing found panics in a
// prior implementation of this decoder.
//
// Coordinates
//
// Query arguments and Mapping fields use 1-based lines and 0-based columns,
// the convention of deployed source-map consumers.  A query positioned
// before every mapping in the document returns ok == false, which is a
// normal outcome rather than an error.
//
// Testing
//
// The VLQ decoder is tested against a fixture corpus of known encodings, the
// consumer against regression documents for historical decoder bugs, and the
// whole pipeline against randomized payloads and a go-fuzz harness under
// testdata/fuzzing that feeds arbitrary bytes as the mappings field of an
// otherwise valid envelope.
package srcmap
