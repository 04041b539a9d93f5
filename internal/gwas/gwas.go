// Copyright 2025 The Figtools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gwas aggregates GWAS Diversity Monitor observations into
// per-country cumulative sample sizes and legend categories.
package gwas

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// An Observation is one row of the monitor export: a country's total
// sample size for one time period.
type Observation struct {
	Country string
	N       float64
	Period  string
}

// ReadObservations reads the monitor CSV export. The header must
// contain an "index" column (country name) and an "N" column (sample
// size); a "Year" column, if present, is kept as the opaque period.
// Countries repeat across periods.
func ReadObservations(r io.Reader) ([]Observation, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading monitor header: %w", err)
	}
	countryCol, nCol, periodCol := -1, -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "index":
			countryCol = i
		case "N":
			nCol = i
		case "Year":
			periodCol = i
		}
	}
	if countryCol < 0 || nCol < 0 {
		return nil, fmt.Errorf("monitor export must have index and N columns, got %q", header)
	}

	var obs []Observation
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading monitor export: %w", err)
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(rec[nCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("bad sample size %q for %q", rec[nCol], rec[countryCol])
		}
		o := Observation{Country: rec[countryCol], N: n}
		if periodCol >= 0 {
			o.Period = rec[periodCol]
		}
		obs = append(obs, o)
	}
	return obs, nil
}

// Aggregate sums sample sizes per canonical country name. Countries
// with no observations are absent from the result; absence and an
// observed total of zero are distinct downstream (No Data versus the
// literal "0" band).
func Aggregate(obs []Observation) map[string]float64 {
	totals := make(map[string]float64)
	for _, o := range obs {
		totals[NormalizeName(o.Country)] += o.N
	}
	return totals
}
