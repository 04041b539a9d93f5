// Copyright 2025 The Figtools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"

	"github.com/gxe-review/figtools/internal/pubmed"
	"github.com/gxe-review/figtools/internal/trend"
)

// Panel names. The facet column is ordered so citations render above
// cost, mirroring the primary/secondary axes of the original figure.
const (
	measureCitations = "log10(citations)"
	measureCost      = "log10(cost per Mb, $)"
)

// seriesTable lays every series out long-form: one row per (year,
// series) with the measure column naming the panel it belongs to.
func seriesTable(topics []pubmed.Topic, citations []trend.Series, cost trend.Series) *table.Table {
	var (
		years    []int
		values   []float64
		series   []string
		measures []string
	)
	add := func(name, measure string, s trend.Series) {
		for i, year := range s.Years {
			years = append(years, year)
			values = append(values, s.Values[i])
			series = append(series, name)
			measures = append(measures, measure)
		}
	}
	for i, topic := range topics {
		add(topic.Name, measureCitations, citations[i])
	}
	add("Cost per Mb", measureCost, cost)

	return new(table.Builder).
		Add("year", years).
		Add("value", values).
		Add("series", series).
		Add("measure", measures).
		Done()
}

// plot renders the two-panel trend chart. Each panel gets its own Y
// scale; the year axis is shared and snapped to whole-year ticks.
func plot(tab *table.Table) *gg.Plot {
	var yearFloats []float64
	for _, year := range tab.MustColumn("year").([]int) {
		yearFloats = append(yearFloats, float64(year))
	}
	xticks := trend.ComputeTicks(yearFloats, 1)

	p := gg.NewPlot(tab)
	p.SortBy("year")
	p.SetScale("x", gg.NewLinearScaler().
		SetMin(xticks[0]).
		SetMax(xticks[len(xticks)-1]))
	p.SetScale("y", gg.NewLinearScaler().Include(0))
	p.Add(gg.FacetY{Col: "measure", SplitYScales: true})
	p.Add(gg.LayerLines{X: "year", Y: "value", Color: "series"})
	p.Add(gg.LayerPoints{X: "year", Y: "value", Color: "series"})
	p.Add(gg.Title("Log-Transformed Trends in PubMed Citations and Sequencing Cost (2000-2023)"))
	p.Add(gg.AxisLabel("x", "year"))
	return p
}
