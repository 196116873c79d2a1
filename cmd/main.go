// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Demo and benchmark harness: scatter rectangles over a large 2D
// world, index them by their X coordinate and run broad-phase
// neighbor scans with a ±window around every entity, narrowing with
// the quick-then-exact distance checks. Optionally renders the world
// and one probe window to a PNG.
package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"time"

	stripemap "github.com/Hazanko38/stripe-map"
	"github.com/Hazanko38/stripe-map/internal/geom"
)

const (
	totalAmount = 5_000
	checkRounds = 10

	mapWidth  = 500_000
	mapHeight = 500_000

	rectSize  = 350
	scanReach = 1_000
)

func main() {
	pngPath := flag.String("png", "", "render the world and one probe window to this file")
	flag.Parse()

	log.SetFlags(log.Lmicroseconds)

	prng := rand.New(rand.NewPCG(42, 42))

	ts := time.Now()
	rects := buildWorld(prng)
	log.Printf("built %d entities: %v", len(rects), time.Since(ts))

	smap := stripemap.NewWith[*geom.Rect](mapWidth, 1_000, 8)

	var checked, checkedTotal, collisions int

	ts = time.Now()
	for range checkRounds {
		smap.Reset()

		load := time.Now()
		for i := range rects {
			smap.Add(uint(rects[i].X), &rects[i])
		}
		smap.Shrink()
		log.Printf("loaded %d entities into %d slots: %v", smap.Size(), smap.Slots(), time.Since(load))

		for i := range rects {
			self := &rects[i]

			for _, other := range smap.Between(scanLo(self.X), scanHi(self.X)) {
				if other == self {
					continue
				}

				// broad-phase reject on the depth axis alone
				if dist := abs(self.X-other.X) - scanReach; dist >= 0 {
					continue
				}

				if geom.InsideRadiusQuick(*self, *other) {
					collisions++
				}

				checkedTotal++
			}

			checked++
		}
	}
	log.Printf("distance checks: %v", time.Since(ts))

	log.Printf("entities probed: %d", checked)
	log.Printf("candidates checked: %d", checkedTotal)
	log.Printf("collisions: %d", collisions)

	if *pngPath != "" {
		probe := &rects[0]
		if err := renderWorld(*pngPath, rects, probe, smap); err != nil {
			log.Fatalf("render: %v", err)
		}
		log.Printf("world rendered to %s", *pngPath)
	}
}

// buildWorld scatters entities over the map on a coarse grid, the
// same distribution the index is tuned for: coordinates in
// [0, mapWidth) at a granularity of mapWidth/1000.
func buildWorld(prng *rand.Rand) []geom.Rect {
	rects := make([]geom.Rect, totalAmount)

	for i := range rects {
		rects[i] = geom.Rect{
			X: int(prng.Uint64N(1_000)) * (mapWidth / 1_000),
			Y: int(prng.Uint64N(1_000)) * (mapHeight / 1_000),
			W: rectSize,
			H: rectSize,
		}
	}

	return rects
}

func scanLo(x int) uint {
	if x > scanReach {
		return uint(x - scanReach)
	}
	return 0
}

func scanHi(x int) uint {
	if x < mapWidth-scanReach {
		return uint(x + scanReach)
	}
	return mapWidth - 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
