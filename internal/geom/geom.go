// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package geom holds the small geometry helpers of the demo client:
// axis-aligned rectangles, distance estimates and overlap checks for
// the narrow phase after a broad-phase stripe scan.
package geom

import (
	"math"

	"github.com/chewxy/math32"
)

// Rect is an axis-aligned rectangle: top-left corner and extent.
type Rect struct {
	X, Y int
	W, H int
}

// quickFactor scales a manhattan distance down to approximate the
// euclidean distance, overestimating short diagonals slightly.
var quickFactor = 1 - 1/(math32.Sqrt(2)*3.14)

// Distance returns the euclidean length of (dx, dy), truncated.
// The squares are taken in 64 bits, large world coordinates do not
// overflow.
func Distance(dx, dy int) int {
	xs := int64(dx) * int64(dx)
	ys := int64(dy) * int64(dy)

	return int(math.Sqrt(float64(xs + ys)))
}

// Distance32 returns the euclidean length of (dx, dy) in float32
// precision, for small distances where the doubled mantissa of
// Distance is not worth the conversion.
func Distance32(dx, dy float32) int {
	return int(math32.Sqrt(dx*dx + dy*dy))
}

// QuickDistance approximates Distance from the manhattan distance,
// cheaper and accurate enough to reject far-apart candidates before
// an exact check.
func QuickDistance(dx, dy int) int {
	ds := abs(dx) + abs(dy)

	return int(float32(ds) * quickFactor)
}

// InsideSquare reports whether the rectangles overlap, treating X/Y
// as center points and W/H as full extents.
func InsideSquare(self, target Rect) bool {
	halfW := self.W/2 + target.W/2
	halfH := self.H/2 + target.H/2

	dx := abs(target.X-self.X) - halfW
	dy := abs(target.Y-self.Y) - halfH

	return dx < 0 && dy < 0
}

// InsideRadius reports whether the center distance is at most the sum
// of both half widths, an exact circle check.
func InsideRadius(self, target Rect) bool {
	dx := target.X - self.X
	dy := target.Y - self.Y

	return Distance(dx, dy) <= self.W/2+target.W/2
}

// InsideRadiusQuick is InsideRadius behind a cheap reject: the quick
// distance is checked against the sum of both full widths first, the
// exact distance only runs for near candidates.
func InsideRadiusQuick(self, target Rect) bool {
	dx := target.X - self.X
	dy := target.Y - self.Y

	if QuickDistance(dx, dy) > self.W+target.W {
		return false
	}

	return Distance(dx, dy) <= self.W/2+target.W/2
}

// GridLoc returns the grid cell of loc on an axis of totalSize split
// into cells of gridSize.
func GridLoc(loc, totalSize, gridSize int) int {
	return (totalSize - (totalSize - loc)) / gridSize
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
