// Copyright 2025 The Figtools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gwas

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "South Korea", NormalizeName("Korea, South"))
	assert.Equal(t, "United States of America", NormalizeName("United States"))
	assert.Equal(t, "France", NormalizeName("France"), "uncovered names pass through")
	assert.Equal(t, "korea, south", NormalizeName("korea, south"), "the table is case-exact")
}

func TestReadObservations(t *testing.T) {
	in := strings.Join([]string{
		"index,Year,N",
		"France,2018,100",
		"France,2019,50",
		"Germany,2019,0",
	}, "\n")

	obs, err := ReadObservations(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, obs, 3)
	assert.Equal(t, Observation{Country: "France", N: 100, Period: "2018"}, obs[0])
	assert.Equal(t, Observation{Country: "Germany", N: 0, Period: "2019"}, obs[2])
}

func TestReadObservationsBadInput(t *testing.T) {
	_, err := ReadObservations(strings.NewReader("country,total\nFrance,1\n"))
	assert.Error(t, err, "missing required columns")

	_, err = ReadObservations(strings.NewReader("index,N\nFrance,lots\n"))
	assert.Error(t, err, "non-numeric sample size")
}

func TestAggregate(t *testing.T) {
	obs := []Observation{
		{Country: "France", N: 100},
		{Country: "France", N: 50},
		{Country: "Germany", N: 0},
	}
	totals := Aggregate(obs)
	assert.Equal(t, map[string]float64{"France": 150, "Germany": 0}, totals)
	_, present := totals["Mali"]
	assert.False(t, present, "a country with no observations is absent, not zero")
}

func TestAggregateNormalizes(t *testing.T) {
	obs := []Observation{
		{Country: "Korea, South", N: 10},
		{Country: "South Korea", N: 5},
		{Country: "United States", N: 1},
	}
	totals := Aggregate(obs)
	assert.Equal(t, 15.0, totals["South Korea"], "variant spellings sum under one key")
	assert.Equal(t, 1.0, totals["United States of America"])
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		total float64
		want  Category
	}{
		{0, Zero},
		{0.5, From1To100},
		{1, From1To100},
		{100, From1To100}, // strict > at every boundary
		{101, From101To500},
		{500, From101To500},
		{501, From501To5K},
		{5000, From501To5K},
		{5001, From5KTo100K},
		{100000, From5KTo100K},
		{100001, From100KTo1M},
		{1000000, From100KTo1M},
		{1000001, Over1M},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Categorize(tt.total), "total %v", tt.total)
	}
}

func TestCategoryOrder(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 8)
	assert.Equal(t, ">1 million", cats[0].String())
	assert.Equal(t, "No Data", cats[len(cats)-1].String())
	for i := 1; i < len(cats); i++ {
		assert.True(t, cats[i-1] < cats[i], "legend order follows the enum order")
	}
}
