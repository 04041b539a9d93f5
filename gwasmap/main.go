// Copyright 2025 The Figtools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gwasmap draws the global distribution of cumulative GWAS
// sample sizes by country: a categorical choropleth built from the
// GWAS Diversity Monitor export joined onto the Natural Earth
// country outlines, written as PNG.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"

	"github.com/gxe-review/figtools/internal/gwas"
	"github.com/gxe-review/figtools/internal/worldmap"
)

func main() {
	log.SetPrefix("gwasmap: ")
	log.SetFlags(0)

	var (
		flagData  = flag.String("data", "GWASmonitor_Data.csv", "read the monitor export from `file`")
		flagWorld = flag.String("world", "countries.geojson", "read country outlines from `file`")
		flagOut   = flag.String("o", "gwas_sample_size_map.png", "write PNG output to `file`")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	dataFile, err := os.Open(*flagData)
	if err != nil {
		log.Fatal(err)
	}
	obs, err := gwas.ReadObservations(dataFile)
	dataFile.Close()
	if err != nil {
		log.Fatal(err)
	}

	worldFile, err := os.Open(*flagWorld)
	if err != nil {
		log.Fatal(err)
	}
	regions, err := worldmap.LoadRegions(worldFile)
	worldFile.Close()
	if err != nil {
		log.Fatal(err)
	}

	categories := make(map[string]gwas.Category)
	for name, total := range gwas.Aggregate(obs) {
		categories[name] = gwas.Categorize(total)
	}
	byRegion := worldmap.Join(categories, regions)

	f, err := os.Create(*flagOut)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, render(regions, byRegion)); err != nil {
		log.Fatal(err)
	}
}
