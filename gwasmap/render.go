// Copyright 2025 The Figtools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gxe-review/figtools/internal/gwas"
	"github.com/gxe-review/figtools/internal/worldmap"
)

const (
	mapWidth     = 1500
	legendHeight = 56
)

// categoryColors is the manuscript's blue ramp, darkest for the
// largest samples. No Data renders white, same as a literal zero;
// the legend is what tells them apart.
var categoryColors = map[gwas.Category]color.NRGBA{
	gwas.Over1M:       {0x04, 0x20, 0x37, 0xff},
	gwas.From100KTo1M: {0x08, 0x45, 0x94, 0xff},
	gwas.From5KTo100K: {0x6b, 0xae, 0xd6, 0xff},
	gwas.From501To5K:  {0xbf, 0xd3, 0xe6, 0xff},
	gwas.From101To500: {0xd9, 0xe2, 0xf8, 0xff},
	gwas.From1To100:   {0xf0, 0xf5, 0xfc, 0xff},
	gwas.Zero:         {0xff, 0xff, 0xff, 0xff},
	gwas.NoData:       {0xff, 0xff, 0xff, 0xff},
}

// A projection maps lon/lat onto image pixels: plate carrée fitted
// to the dataset's bounding box, with Y flipped for raster
// coordinates.
type projection struct {
	minLon, maxLat float64
	scale          float64
}

func newProjection(regions []worldmap.Region, width int) (projection, int) {
	minLon, minLat := math.Inf(1), math.Inf(1)
	maxLon, maxLat := math.Inf(-1), math.Inf(-1)
	for _, reg := range regions {
		for _, poly := range reg.Polygons {
			for _, ring := range poly {
				for _, pt := range ring {
					minLon = math.Min(minLon, pt.Lon)
					maxLon = math.Max(maxLon, pt.Lon)
					minLat = math.Min(minLat, pt.Lat)
					maxLat = math.Max(maxLat, pt.Lat)
				}
			}
		}
	}
	p := projection{minLon: minLon, maxLat: maxLat, scale: float64(width) / (maxLon - minLon)}
	height := int(math.Ceil((maxLat - minLat) * p.scale))
	return p, height
}

func (p projection) point(pt worldmap.Point) (x, y float32) {
	return float32((pt.Lon - p.minLon) * p.scale), float32((p.maxLat - pt.Lat) * p.scale)
}

// render rasterizes the choropleth: white background, one fill per
// region in its category color, hairline black boundaries, and the
// categorical legend below the map.
func render(regions []worldmap.Region, byRegion map[string]gwas.Category) *image.RGBA {
	proj, mapHeight := newProjection(regions, mapWidth)

	img := image.NewRGBA(image.Rect(0, 0, mapWidth, mapHeight+legendHeight))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	for _, reg := range regions {
		fillRegion(img, proj, reg, categoryColors[byRegion[reg.Name]])
	}
	for _, reg := range regions {
		strokeRegion(img, proj, reg)
	}
	drawLegend(img, mapHeight)
	return img
}

// fillRegion fills each of the region's polygons. Holes are interior
// rings wound opposite to the outer ring, so the rasterizer's
// winding rule subtracts them.
func fillRegion(img *image.RGBA, proj projection, reg worldmap.Region, col color.NRGBA) {
	for _, poly := range reg.Polygons {
		r := vector.NewRasterizer(img.Bounds().Dx(), img.Bounds().Dy())
		for _, ring := range poly {
			if len(ring) == 0 {
				continue
			}
			for i, pt := range ring {
				x, y := proj.point(pt)
				if i == 0 {
					r.MoveTo(x, y)
				} else {
					r.LineTo(x, y)
				}
			}
			r.ClosePath()
		}
		r.Draw(img, img.Bounds(), image.NewUniform(col), image.Point{})
	}
}

func strokeRegion(img *image.RGBA, proj projection, reg worldmap.Region) {
	black := color.NRGBA{0, 0, 0, 0xff}
	for _, poly := range reg.Polygons {
		for _, ring := range poly {
			for i := range ring {
				x0, y0 := proj.point(ring[i])
				x1, y1 := proj.point(ring[(i+1)%len(ring)])
				drawLine(img, x0, y0, x1, y1, black)
			}
		}
	}
}

// drawLine draws a 1px line. Country borders only need hairlines, so
// plain point sampling along the segment is enough.
func drawLine(img *image.RGBA, x0, y0, x1, y1 float32, col color.Color) {
	steps := int(math.Hypot(float64(x1-x0), float64(y1-y0))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(float64(x0) + t*float64(x1-x0))
		y := int(float64(y0) + t*float64(y1-y0))
		img.Set(x, y, col)
	}
}

func drawLegend(img *image.RGBA, top int) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: basicfont.Face7x13,
	}
	d.Dot = fixed.P(10, top+18)
	d.DrawString("GWAS Sample Size:")

	x := 10 + int(d.MeasureString("GWAS Sample Size:")>>6) + 16
	const swatch = 12
	for _, cat := range gwas.Categories() {
		rect := image.Rect(x, top+8, x+swatch, top+8+swatch)
		draw.Draw(img, rect, image.NewUniform(categoryColors[cat]), image.Point{}, draw.Src)
		drawRectOutline(img, rect, color.NRGBA{0, 0, 0, 0xff})

		label := cat.String()
		d.Dot = fixed.P(x+swatch+4, top+18)
		d.DrawString(label)
		x += swatch + 8 + int(d.MeasureString(label)>>6) + 16
	}
}

func drawRectOutline(img *image.RGBA, r image.Rectangle, col color.Color) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, col)
		img.Set(x, r.Max.Y-1, col)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.Set(r.Min.X, y, col)
		img.Set(r.Max.X-1, y, col)
	}
}
