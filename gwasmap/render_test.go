// Copyright 2025 The Figtools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gxe-review/figtools/internal/gwas"
	"github.com/gxe-review/figtools/internal/worldmap"
)

func square(name string, lon, lat, size float64) worldmap.Region {
	return worldmap.Region{
		Name: name,
		Polygons: [][][]worldmap.Point{{{
			{Lon: lon, Lat: lat},
			{Lon: lon + size, Lat: lat},
			{Lon: lon + size, Lat: lat + size},
			{Lon: lon, Lat: lat + size},
			{Lon: lon, Lat: lat},
		}}},
	}
}

func TestProjection(t *testing.T) {
	regions := []worldmap.Region{square("A", -10, 0, 10), square("B", 0, 0, 10)}
	proj, height := newProjection(regions, 100)

	assert.Equal(t, 50, height, "height follows the lat extent at the lon scale")

	x, y := proj.point(worldmap.Point{Lon: -10, Lat: 10})
	assert.Equal(t, float32(0), x, "west edge maps to x=0")
	assert.Equal(t, float32(0), y, "north edge maps to y=0")

	x, y = proj.point(worldmap.Point{Lon: 10, Lat: 0})
	assert.Equal(t, float32(100), x)
	assert.Equal(t, float32(50), y)
}

func TestRenderFillsCategories(t *testing.T) {
	regions := []worldmap.Region{square("A", 0, 0, 10), square("B", 10, 0, 10)}
	byRegion := map[string]gwas.Category{
		"A": gwas.Over1M,
		"B": gwas.NoData,
	}

	img := render(regions, byRegion)
	require.NotNil(t, img)

	// Interior of A carries the darkest ramp color; B stays white.
	proj, _ := newProjection(regions, mapWidth)
	ax, ay := proj.point(worldmap.Point{Lon: 5, Lat: 5})
	bx, by := proj.point(worldmap.Point{Lon: 15, Lat: 5})

	want := categoryColors[gwas.Over1M]
	got := color.NRGBAModel.Convert(img.At(int(ax), int(ay))).(color.NRGBA)
	assert.Equal(t, want, got)

	gotB := color.NRGBAModel.Convert(img.At(int(bx), int(by))).(color.NRGBA)
	assert.Equal(t, color.NRGBA{0xff, 0xff, 0xff, 0xff}, gotB)
}
