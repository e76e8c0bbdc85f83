// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// srcmapperf measures consume and query throughput against a real source
// map file, e.g. the minified-bundle map of a large web application.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/xdg-go/srcmap"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: srcmapperf <file.map>")
	}
	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}

	benchEnvelopeOnly(data)
	cache := benchConsume(data)
	benchQueries(cache)
}

// benchEnvelopeOnly decodes just the JSON envelope, the floor below which
// full consumption cannot go.
func benchEnvelopeOnly(input []byte) {
	start := time.Now()
	var envelope map[string]interface{}
	if err := json.Unmarshal(input, &envelope); err != nil {
		log.Fatal(err)
	}
	reportThroughput("envelope only", len(input), time.Since(start))
}

func benchConsume(input []byte) *srcmap.Cache {
	start := time.Now()
	cache, err := srcmap.Consume(input)
	if err != nil {
		log.Fatal(err)
	}
	reportThroughput("full consume", len(input), time.Since(start))
	return cache
}

func benchQueries(cache *srcmap.Cache) {
	const queries = 1_000_000
	hits := 0
	start := time.Now()
	for i := 0; i < queries; i++ {
		line := uint32(i%10_000) + 1
		column := uint32(i % 200)
		if _, ok := cache.MappingForGeneratedPosition(line, column); ok {
			hits++
		}
	}
	elapsed := time.Since(start)
	fmt.Printf("%15s %.0f ns/op (%d/%d hits)\n",
		"query", float64(elapsed.Nanoseconds())/float64(queries), hits, queries)
}

func reportThroughput(label string, size int, elapsed time.Duration) {
	throughput := float64(size) / float64(elapsed.Microseconds())
	fmt.Printf("%15s %.2f MB/s\n", label, throughput)
}
