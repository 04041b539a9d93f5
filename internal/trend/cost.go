// Copyright 2025 The Figtools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trend

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/aclements/go-moremath/stats"
)

// costDateLayouts covers the date formats the NHGRI cost table has
// shipped with across releases.
var costDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"1/2/2006",
	"Jan-06",
	"Jan-2006",
}

// LoadCostSeries reads a CSV export of the NHGRI sequencing-cost
// table, which must carry Date and "Cost per Mb" columns, and
// returns the log10 of the mean cost per year, ascending by year.
//
// Rows whose date does not parse are dropped without comment, same
// as the published figure's preprocessing. A cost that is zero or
// negative is an error: its log is undefined and a malformed table
// should fail the run rather than skew the figure.
func LoadCostSeries(r io.Reader) (Series, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return Series{}, fmt.Errorf("reading cost table header: %w", err)
	}
	dateCol, costCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "Date":
			dateCol = i
		case "Cost per Mb":
			costCol = i
		}
	}
	if dateCol < 0 || costCol < 0 {
		return Series{}, fmt.Errorf("cost table must have Date and Cost per Mb columns, got %q", header)
	}

	byYear := make(map[int][]float64)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Series{}, fmt.Errorf("reading cost table: %w", err)
		}
		year, ok := parseYear(rec[dateCol])
		if !ok {
			continue
		}
		cost, err := strconv.ParseFloat(strings.TrimSpace(rec[costCol]), 64)
		if err != nil {
			return Series{}, fmt.Errorf("bad cost %q for date %q", rec[costCol], rec[dateCol])
		}
		if cost <= 0 {
			return Series{}, fmt.Errorf("non-positive cost %v for date %q", cost, rec[dateCol])
		}
		byYear[year] = append(byYear[year], cost)
	}

	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Ints(years)

	s := Series{Years: years, Values: make([]float64, len(years))}
	for i, year := range years {
		s.Values[i] = math.Log10(stats.Mean(byYear[year]))
	}
	return s, nil
}

func parseYear(s string) (int, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range costDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Year(), true
		}
	}
	return 0, false
}
