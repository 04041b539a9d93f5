// Copyright 2025 The Figtools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package worldmap loads the reference country outlines and joins
// per-country categories onto them by name.
//
// The reference dataset is the Natural Earth low-resolution country
// set as a GeoJSON FeatureCollection. Only the name and continent
// properties and the polygon rings are consumed.
package worldmap

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gxe-review/figtools/internal/gwas"
)

// A Point is a longitude/latitude coordinate in degrees.
type Point struct {
	Lon, Lat float64
}

// A Region is one named country outline. Polygons holds one or more
// polygons of one or more rings each (outer ring first, holes
// after), GeoJSON-style.
type Region struct {
	Name      string
	Continent string
	Polygons  [][][]Point
}

type featureCollection struct {
	Features []feature `json:"features"`
}

type feature struct {
	Properties struct {
		Name      string `json:"name"`
		Continent string `json:"continent"`
	} `json:"properties"`
	Geometry struct {
		Type        string          `json:"type"`
		Coordinates json.RawMessage `json:"coordinates"`
	} `json:"geometry"`
}

// LoadRegions decodes a GeoJSON FeatureCollection of countries.
// Antarctica is excluded: it is not part of the join universe for
// the sample-size map.
func LoadRegions(r io.Reader) ([]Region, error) {
	var fc featureCollection
	if err := json.NewDecoder(r).Decode(&fc); err != nil {
		return nil, fmt.Errorf("decoding world geometry: %w", err)
	}

	var regions []Region
	for _, f := range fc.Features {
		if f.Properties.Continent == "Antarctica" {
			continue
		}
		reg := Region{Name: f.Properties.Name, Continent: f.Properties.Continent}
		switch f.Geometry.Type {
		case "Polygon":
			var rings [][][]float64
			if err := json.Unmarshal(f.Geometry.Coordinates, &rings); err != nil {
				return nil, fmt.Errorf("region %q: %w", reg.Name, err)
			}
			poly, err := toPolygon(rings)
			if err != nil {
				return nil, fmt.Errorf("region %q: %w", reg.Name, err)
			}
			reg.Polygons = [][][]Point{poly}
		case "MultiPolygon":
			var polys [][][][]float64
			if err := json.Unmarshal(f.Geometry.Coordinates, &polys); err != nil {
				return nil, fmt.Errorf("region %q: %w", reg.Name, err)
			}
			for _, rings := range polys {
				poly, err := toPolygon(rings)
				if err != nil {
					return nil, fmt.Errorf("region %q: %w", reg.Name, err)
				}
				reg.Polygons = append(reg.Polygons, poly)
			}
		default:
			return nil, fmt.Errorf("region %q: unsupported geometry type %q", reg.Name, f.Geometry.Type)
		}
		regions = append(regions, reg)
	}
	return regions, nil
}

func toPolygon(rings [][][]float64) ([][]Point, error) {
	poly := make([][]Point, len(rings))
	for i, ring := range rings {
		poly[i] = make([]Point, len(ring))
		for j, pos := range ring {
			if len(pos) < 2 {
				return nil, fmt.Errorf("position %d of ring %d has %d coordinates", j, i, len(pos))
			}
			poly[i][j] = Point{Lon: pos[0], Lat: pos[1]}
		}
	}
	return poly, nil
}

// Join assigns a category to every region: the category aggregated
// under the region's name, or NoData for regions absent from
// categories. The result always has exactly one entry per region.
func Join(categories map[string]gwas.Category, regions []Region) map[string]gwas.Category {
	joined := make(map[string]gwas.Category, len(regions))
	for _, reg := range regions {
		cat, ok := categories[reg.Name]
		if !ok {
			cat = gwas.NoData
		}
		joined[reg.Name] = cat
	}
	return joined
}
