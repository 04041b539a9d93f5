// Copyright 2025 The Figtools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gwas

// A Category is one band of the sample-size legend. Values are
// ordered from the largest band down to the literal-zero band, with
// NoData last; the legend renders them in this order.
type Category int

const (
	Over1M Category = iota
	From100KTo1M
	From5KTo100K
	From501To5K
	From101To500
	From1To100
	Zero
	NoData
)

var categoryLabels = [...]string{
	Over1M:       ">1 million",
	From100KTo1M: "100k-1M",
	From5KTo100K: "5k-100k",
	From501To5K:  "501-5k",
	From101To500: "101-500",
	From1To100:   "1-100",
	Zero:         "0",
	NoData:       "No Data",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryLabels) {
		return "unknown"
	}
	return categoryLabels[c]
}

// Categories returns all bands in legend order.
func Categories() []Category {
	return []Category{Over1M, From100KTo1M, From5KTo100K, From501To5K, From101To500, From1To100, Zero, NoData}
}

// sizeBands is the ordered threshold table for Categorize. The first
// band whose threshold the total strictly exceeds wins.
var sizeBands = []struct {
	min float64
	cat Category
}{
	{1e6, Over1M},
	{1e5, From100KTo1M},
	{5e3, From5KTo100K},
	{500, From501To5K},
	{100, From101To500},
	{0, From1To100},
}

// Categorize maps a cumulative sample size to its legend band.
// Boundaries are strict: exactly 100000 falls in the 5k-100k band,
// not 100k-1M. A total of exactly zero gets the literal "0" band.
// Absence of a total is only observable at the join, which assigns
// NoData there.
func Categorize(total float64) Category {
	for _, b := range sizeBands {
		if total > b.min {
			return b.cat
		}
	}
	return Zero
}
