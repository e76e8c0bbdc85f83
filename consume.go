// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package srcmap

import (
	"fmt"

	"github.com/segmentio/encoding/json"
)

const supportedVersion = 3

// rawSourceMap is the decoded JSON envelope.  Sources entries may be null,
// which is a valid "no source" slot, and mappings must be distinguishable
// from an empty string, hence the pointers.  Unrecognized fields are
// ignored; sourcesContent is carried through without processing.
type rawSourceMap struct {
	Version        int       `json:"version"`
	File           string    `json:"file"`
	SourceRoot     string    `json:"sourceRoot"`
	Sources        []*string `json:"sources"`
	Names          []string  `json:"names"`
	Mappings       *string   `json:"mappings"`
	SourcesContent []*string `json:"sourcesContent"`
}

// Consume parses a version 3 source map document and builds the queryable
// Cache.  It validates the envelope, decodes the mappings payload and builds
// the per-line index in a single pass proportional to input size.  Malformed
// input of any kind returns a typed error; no partial Cache is ever
// returned and no input may panic.
func Consume(data []byte) (*Cache, error) {
	var raw rawSourceMap
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	if raw.Version != supportedVersion {
		return nil, fmt.Errorf("%w: got version %d", ErrUnsupportedVersion, raw.Version)
	}
	if raw.Mappings == nil {
		return nil, ErrMissingMappings
	}

	table := newStringTable(raw.SourceRoot, raw.Sources, raw.Names)
	index, err := parseMappings([]byte(*raw.Mappings), table)
	if err != nil {
		return nil, err
	}

	return &Cache{
		index:   index,
		table:   table,
		file:    raw.File,
		root:    raw.SourceRoot,
		content: raw.SourcesContent,
	}, nil
}

// ConsumeString is Consume for string input.
func ConsumeString(s string) (*Cache, error) {
	return Consume([]byte(s))
}
