// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/gogpu/gg"

	stripemap "github.com/Hazanko38/stripe-map"
	"github.com/Hazanko38/stripe-map/internal/geom"
)

const imageSize = 1_000

// renderWorld draws the whole world to a PNG: all entities as dots,
// the probe's scan window as a vertical band and the candidates it
// collides with highlighted.
func renderWorld(path string, rects []geom.Rect, probe *geom.Rect, smap *stripemap.Map[*geom.Rect]) error {
	scale := float64(imageSize) / float64(mapWidth)

	dc := gg.NewContext(imageSize, imageSize)

	dc.SetRGB(0.08, 0.08, 0.10)
	dc.DrawRectangle(0, 0, imageSize, imageSize)
	if err := dc.Fill(); err != nil {
		return err
	}

	// scan window of the probe, one band across the depth axis
	lo, hi := scanLo(probe.X), scanHi(probe.X)
	dc.SetRGB(0.15, 0.25, 0.35)
	dc.DrawRectangle(float64(lo)*scale, 0, float64(hi-lo)*scale, imageSize)
	if err := dc.Fill(); err != nil {
		return err
	}

	dc.SetRGB(0.75, 0.75, 0.75)
	for i := range rects {
		drawEntity(dc, &rects[i], scale)
	}
	if err := dc.Fill(); err != nil {
		return err
	}

	dc.SetRGB(0.85, 0.25, 0.20)
	for _, other := range smap.Between(lo, hi) {
		if other != probe && geom.InsideRadiusQuick(*probe, *other) {
			drawEntity(dc, other, scale)
		}
	}
	if err := dc.Fill(); err != nil {
		return err
	}

	dc.SetRGB(0.95, 0.85, 0.25)
	drawEntity(dc, probe, scale)
	if err := dc.Fill(); err != nil {
		return err
	}

	return dc.SavePNG(path)
}

// drawEntity adds one rectangle to the current path, at least one
// pixel wide so far-zoomed-out entities stay visible.
func drawEntity(dc *gg.Context, r *geom.Rect, scale float64) {
	w := float64(r.W) * scale
	if w < 1 {
		w = 1
	}
	h := float64(r.H) * scale
	if h < 1 {
		h = 1
	}

	dc.DrawRectangle(float64(r.X)*scale, float64(r.Y)*scale, w, h)
}
