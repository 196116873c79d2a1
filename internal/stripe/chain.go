// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package stripe

// Chain is the ordered list of stripes of one container, ascending by
// depth floor. Neighbors are the adjacent slice elements, the slice
// index is the chain order.
//
// Two index spaces meet here:
//
//   - raw:    position in the backing slice, including unused tails
//   - packed: position among live entries only, stripes walked in
//     order and tails skipped
//
// Both coincide after the container has been shrunk.
type Chain []Stripe

// Make builds the initial chain: count stripes of width slots each,
// windows laid out back to back, floors rising by depth per stripe.
func Make(count, width int, depth uint) Chain {
	c := make(Chain, count)

	for i := range c {
		c[i] = Stripe{
			Start: width * i,
			Pos:   width * i,
			End:   width * (i + 1),
			Floor: depth * uint(i),
		}
	}

	return c
}

// Live returns the total number of live entries across the chain.
func (c Chain) Live() int {
	n := 0
	for i := range c {
		n += c[i].Used()
	}
	return n
}

// DepthMatch reports whether stripe i covers depth key d.
// The last stripe absorbs every key at or above its floor.
func (c Chain) DepthMatch(i int, d uint) bool {
	if i == len(c)-1 {
		return true
	}

	return d >= c[i].Floor && d < c[i+1].Floor
}

// LocateDepthScan returns the first stripe covering d by linear scan,
// or -1 on an empty chain.
func (c Chain) LocateDepthScan(d uint) int {
	for i := range c {
		if c.DepthMatch(i, d) {
			return i
		}
	}
	return -1
}

// LocateDepthJump returns the stripe covering d in O(1). The chain is
// an equal-width partition, so the stripe is the integer quotient of
// d and the per-stripe depth, clamped into the chain; the last stripe
// absorbs the remainder past count*depth.
func (c Chain) LocateDepthJump(d uint) int {
	if len(c) == 1 {
		return 0
	}

	depth := c[1].Floor
	i := int(d / depth)
	if i >= len(c) {
		i = len(c) - 1
	}

	return i
}

// FindPacked translates packed index p into its stripe and raw index.
// It walks the chain accumulating used counts; ok is false if p is at
// or past the live entry count.
func (c Chain) FindPacked(p int) (si, raw int, ok bool) {
	rest := p
	for i := range c {
		used := c[i].Used()
		if used == 0 {
			continue
		}

		if rest < used {
			return i, c[i].Start + rest, true
		}

		rest -= used
	}

	return 0, 0, false
}

// RawOfPacked returns only the raw index for packed index p,
// or 0 if p is out of range.
func (c Chain) RawOfPacked(p int) int {
	_, raw, ok := c.FindPacked(p)
	if !ok {
		return 0
	}
	return raw
}

// PackedOfRaw is the inverse of RawOfPacked: it returns the packed
// index of live raw index i, or 0 if no stripe holds i.
func (c Chain) PackedOfRaw(i int) int {
	packed := 0
	for si := range c {
		if c[si].Empty() {
			continue
		}

		if c[si].IndexMatch(i) {
			return packed + (i - c[si].Start)
		}

		packed += c[si].Used()
	}

	return 0
}

// FindContig translates packed index p while the chain is shrunk:
// every window is exactly its live range and the windows abut, so the
// raw index is p itself and only the owning stripe is searched.
func (c Chain) FindContig(p int) (si, raw int, ok bool) {
	for i := range c {
		if c[i].Empty() {
			continue
		}

		if c[i].IndexMatch(p) {
			return i, p, true
		}
	}

	return 0, 0, false
}

// PackedStartAtDepth returns the packed index of the first slot of
// the stripe covering d, the sum of used counts before it.
func (c Chain) PackedStartAtDepth(d uint) int {
	packed := 0
	for i := range c {
		if c.DepthMatch(i, d) {
			return packed
		}

		packed += c[i].Used()
	}

	return packed
}

// PackedEndAtDepth returns the packed index one past the last live
// slot of the stripe covering d. An empty covering stripe yields the
// same value as PackedStartAtDepth, an empty range.
func (c Chain) PackedEndAtDepth(d uint) int {
	packed := 0
	for i := range c {
		packed += c[i].Used()

		if c.DepthMatch(i, d) {
			return packed
		}
	}

	return packed
}

// Rebalance builds the successor chain for a re-stripe. Floors and
// counters carry over; every stripe at or above half capacity has its
// width doubled from its used count, empty stripes fall back to
// initWidth, the rest keep their width. Windows are re-laid back to
// back; the returned slots is the required backing length.
//
// The stripe that made the caller re-stripe had Used == Width. If that
// is zero (an empty window trimmed by shrink) it gets initWidth,
// otherwise its new width is at least Used+1; the retried add succeeds.
func (c Chain) Rebalance(initWidth int) (next Chain, slots int) {
	next = make(Chain, len(c))

	for i := range c {
		used := c[i].Used()
		width := c[i].Width()

		switch {
		case used == 0:
			width = initWidth
		case used >= (width+1)/2:
			width = used * extendFactor
		}

		next[i] = Stripe{
			Start: slots,
			Pos:   slots + used,
			End:   slots + width,
			Floor: c[i].Floor,
			Count: c[i].Count,
		}

		slots += width
	}

	return next, slots
}

// extendFactor is the growth multiplier for overfull stripes.
const extendFactor = 2
