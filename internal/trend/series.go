// Copyright 2025 The Figtools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trend builds the log-transformed yearly series behind the
// citation/cost trend figure: per-topic PubMed citation counts and
// the NHGRI per-megabase sequencing cost.
package trend

import (
	"math"

	"github.com/gxe-review/figtools/internal/pubmed"
)

// A Series is an ordered year->value mapping. Years is ascending and
// Values is parallel to it.
type Series struct {
	Years  []int
	Values []float64
}

// LogCount maps a citation count to its log10 value, flooring zero
// counts at 0. A count of 0 and a count of 1 therefore plot at the
// same height; the published figure's shape depends on this floor,
// so it is kept as is.
func LogCount(count int) float64 {
	if count > 0 {
		return math.Log10(float64(count))
	}
	return 0
}

// BuildSeries fetches the count for topic in each of years, strictly
// in order and one call at a time, and returns the log-transformed
// series in the same year order.
func BuildSeries(src pubmed.CountSource, years []int, topic pubmed.Topic) Series {
	s := Series{
		Years:  append([]int(nil), years...),
		Values: make([]float64, len(years)),
	}
	for i, year := range years {
		s.Values[i] = LogCount(src.FetchCount(year, topic))
	}
	return s
}
