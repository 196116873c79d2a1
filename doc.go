// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package stripemap provides a one-dimensional striped spatial index
// for broad-phase neighbor queries.
//
// A Map partitions an integer key range, the depth axis, into
// contiguous buckets called stripes and stores all (key, value)
// entries in a single flat backing slice, striped by bucket. Queries
// over a half-open depth window [lo, hi) touch only the entries whose
// keys fall inside the window, which makes the Map a good broad phase
// for neighbor search in a large 2D world where only entries within
// ±W of a probe point need be examined.
//
// The Map trades ordering for locality and constant-time routing:
//
//   - Add routes a key to its stripe by integer division, O(1)
//   - entries are unsorted within a stripe, erase is swap-remove
//   - a full stripe triggers a re-stripe, growing every bucket that
//     is at least half full and relocating all live entries
//   - Shrink compacts the backing slice to a gap-free array for the
//     fastest possible iteration until the next mutation
//
// The Map is not safe for concurrent use. A common pattern is to
// populate it in a single producer phase, Shrink it, and then scan
// from multiple readers under a read lock.
package stripemap
