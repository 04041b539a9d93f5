// Copyright 2025 The Figtools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command citetrend plots log-transformed PubMed citation counts for
// the manuscript's three research topics alongside the NHGRI
// sequencing cost per megabase, 2000-2023.
//
// Citation counts are scraped live from PubMed, one query per year
// per topic, strictly in sequence. The cost series is read from the
// CSV export of the NHGRI cost table given with -cost. The chart is
// written as SVG with a citations panel and a cost panel sharing the
// year axis.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aclements/go-gg/table"

	"github.com/gxe-review/figtools/internal/pubmed"
	"github.com/gxe-review/figtools/internal/trend"
)

// The published figure covers 2000-2023.
const (
	firstYear = 2000
	lastYear  = 2023
)

func main() {
	log.SetPrefix("citetrend: ")
	log.SetFlags(0)

	var (
		flagCost   = flag.String("cost", "Sequencing_Cost_Data_Table.csv", "read NHGRI cost data from `file`")
		flagOut    = flag.String("o", "citation_cost_trend.svg", "write SVG output to `file`")
		flagPubmed = flag.String("pubmed", pubmed.DefaultBaseURL, "query the search index at `url`")
		flagTable  = flag.Bool("table", false, "print the series as a table instead of plotting")
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

	years := make([]int, 0, lastYear-firstYear+1)
	for year := firstYear; year <= lastYear; year++ {
		years = append(years, year)
	}

	src := &pubmed.Client{BaseURL: *flagPubmed}
	topics := []pubmed.Topic{pubmed.MultiOmics, pubmed.PersonalizedMedicine, pubmed.GxE}
	citations := make([]trend.Series, len(topics))
	for i, topic := range topics {
		fmt.Println("fetching", topic.Name, "counts")
		citations[i] = trend.BuildSeries(src, years, topic)
	}

	costFile, err := os.Open(*flagCost)
	if err != nil {
		log.Fatal(err)
	}
	cost, err := trend.LoadCostSeries(costFile)
	costFile.Close()
	if err != nil {
		log.Fatal(err)
	}

	tab := seriesTable(topics, citations, cost)

	f, err := os.Create(*flagOut)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	if *flagTable {
		table.Fprint(f, tab)
		return
	}
	if err := plot(tab).WriteSVG(f, 1000, 700); err != nil {
		log.Fatal(err)
	}
}
