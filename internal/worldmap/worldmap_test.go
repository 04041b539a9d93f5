// Copyright 2025 The Figtools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package worldmap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gxe-review/figtools/internal/gwas"
)

const worldFixture = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"name": "France", "continent": "Europe"},
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[0, 0], [2, 0], [2, 2], [0, 2], [0, 0]]]
      }
    },
    {
      "type": "Feature",
      "properties": {"name": "Indonesia", "continent": "Asia"},
      "geometry": {
        "type": "MultiPolygon",
        "coordinates": [
          [[[10, 0], [11, 0], [11, 1], [10, 0]]],
          [[[12, 0], [13, 0], [13, 1], [12, 0]]]
        ]
      }
    },
    {
      "type": "Feature",
      "properties": {"name": "Antarctica", "continent": "Antarctica"},
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[-180, -90], [180, -90], [0, -60], [-180, -90]]]
      }
    }
  ]
}`

func TestLoadRegions(t *testing.T) {
	regions, err := LoadRegions(strings.NewReader(worldFixture))
	require.NoError(t, err)

	require.Len(t, regions, 2, "Antarctica is excluded")
	assert.Equal(t, "France", regions[0].Name)
	assert.Equal(t, "Europe", regions[0].Continent)
	require.Len(t, regions[0].Polygons, 1)
	assert.Equal(t, Point{Lon: 2, Lat: 2}, regions[0].Polygons[0][0][2])

	assert.Equal(t, "Indonesia", regions[1].Name)
	assert.Len(t, regions[1].Polygons, 2)
}

func TestLoadRegionsBadGeometry(t *testing.T) {
	in := `{"features":[{"properties":{"name":"X","continent":"Europe"},
		"geometry":{"type":"Point","coordinates":[0,0]}}]}`
	_, err := LoadRegions(strings.NewReader(in))
	assert.Error(t, err)
}

func TestJoin(t *testing.T) {
	regions := []Region{{Name: "France"}, {Name: "Germany"}, {Name: "Mali"}}
	categories := map[string]gwas.Category{
		"France":  gwas.From101To500,
		"Germany": gwas.Zero,
	}

	joined := Join(categories, regions)
	assert.Equal(t, map[string]gwas.Category{
		"France":  gwas.From101To500,
		"Germany": gwas.Zero,
		"Mali":    gwas.NoData,
	}, joined, "unmatched regions get an explicit No Data, never a missing entry")
}
